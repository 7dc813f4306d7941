package domain

// LegalStatusDraft marks legal content whose required fields are still being collected.
const LegalStatusDraft = "draft_placeholders"

type LegalInfo struct {
	SchemaVersion string `json:"schema_version" validate:"required"`
	EntityType    string `json:"entity_type" validate:"eq=legal"`
	Status        string `json:"status" validate:"required"`
	// a nil value means the field has not been supplied yet
	RequiredFieldsToFill map[string]*string `json:"required_fields_to_fill" validate:"required"`
	Notes                []string           `json:"notes,omitempty"`
}
