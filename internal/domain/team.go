package domain

type TeamMember struct {
	FullName    string   `json:"full_name" validate:"required"`
	Role        string   `json:"role" validate:"required"`
	Type        string   `json:"type" validate:"required"`
	Specialties []string `json:"specialties" validate:"required"`
	Photo       *string  `json:"photo"`
}

type Team struct {
	SchemaVersion string       `json:"schema_version" validate:"required"`
	EntityType    string       `json:"entity_type" validate:"eq=team"`
	Members       []TeamMember `json:"members" validate:"required,dive"`
	Notes         []string     `json:"notes,omitempty"`
}
