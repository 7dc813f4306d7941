package domain

type FaqItem struct {
	Q string `json:"q" validate:"required"`
	A string `json:"a" validate:"required"`
}

type Faq struct {
	SchemaVersion string    `json:"schema_version" validate:"required"`
	EntityType    string    `json:"entity_type" validate:"eq=faq"`
	Disclaimer    string    `json:"disclaimer,omitempty"`
	Items         []FaqItem `json:"items" validate:"required,dive"`
}
