package domain

type BookingChannel struct {
	Type  string `json:"type" validate:"required"`
	URL   string `json:"url,omitempty" validate:"omitempty,url"`
	Value string `json:"value,omitempty"`
}

type Booking struct {
	PrimaryCTALabel string           `json:"primary_cta_label" validate:"required"`
	Channels        []BookingChannel `json:"channels" validate:"required,dive"`
}

type Service struct {
	Slug             string    `json:"slug" validate:"required"`
	Name             string    `json:"name" validate:"required"`
	Category         string    `json:"category" validate:"required"`
	ShortPromise     string    `json:"short_promise" validate:"required"`
	Description      string    `json:"description" validate:"required"`
	DurationRangeMin []float64 `json:"duration_range_min" validate:"required,len=2"`
	WhatToBring      []string  `json:"what_to_bring" validate:"required"`
	Booking          Booking   `json:"booking"`
	SafetyNotice     string    `json:"safety_notice,omitempty"`
}

type ServicesCatalog struct {
	SchemaVersion string    `json:"schema_version" validate:"required"`
	EntityType    string    `json:"entity_type" validate:"eq=services_catalog"`
	Services      []Service `json:"services" validate:"required,dive"`
	Notes         []string  `json:"notes,omitempty"`
}
