package domain

type PostalAddress struct {
	Type            string `json:"@type" validate:"required"`
	StreetAddress   string `json:"streetAddress" validate:"required"`
	PostalCode      string `json:"postalCode" validate:"required"`
	AddressLocality string `json:"addressLocality" validate:"required"`
	AddressCountry  string `json:"addressCountry" validate:"required"`
}

type OpeningHoursSpecification struct {
	Type      string `json:"@type" validate:"required"`
	DayOfWeek string `json:"dayOfWeek" validate:"required"`
	Opens     string `json:"opens" validate:"required,hhmm"`
	Closes    string `json:"closes" validate:"required,hhmm"`
}

// LocalBusinessRecord is the schema.org record embedded as JSON-LD in every page.
type LocalBusinessRecord struct {
	Context                   string                      `json:"@context" validate:"required"`
	Type                      string                      `json:"@type" validate:"required"`
	Name                      string                      `json:"name" validate:"required"`
	Address                   PostalAddress               `json:"address"`
	Telephone                 string                      `json:"telephone" validate:"required"`
	OpeningHoursSpecification []OpeningHoursSpecification `json:"openingHoursSpecification" validate:"required,dive"`
	SameAs                    []string                    `json:"sameAs,omitempty" validate:"omitempty,dive,url"`
}
