package domain

// Weekdays lists the keys allowed in OpeningHours, Monday first.
var Weekdays = []string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"}

type OpeningSlot struct {
	Opens  string `json:"opens" validate:"required,hhmm"`
	Closes string `json:"closes" validate:"required,hhmm"`
}

// OpeningHours maps a lower-case weekday name to its slots. A missing or empty
// day means closed all day.
type OpeningHours map[string][]OpeningSlot

type PharmacyIdentity struct {
	DisplayName  string `json:"display_name" validate:"required"`
	City         string `json:"city" validate:"required"`
	PostalCode   string `json:"postal_code" validate:"required"`
	AddressLine1 string `json:"address_line_1" validate:"required"`
	Country      string `json:"country" validate:"required"`
	Timezone     string `json:"timezone" validate:"required,timezone"`
}

type PharmacyContact struct {
	Phone string  `json:"phone" validate:"required"`
	Fax   *string `json:"fax"`
	Email *string `json:"email"`
	Notes string  `json:"notes,omitempty"`
}

type SocialLinks struct {
	Facebook  string `json:"facebook,omitempty" validate:"omitempty,url"`
	Instagram string `json:"instagram,omitempty" validate:"omitempty,url"`
}

type PublicLinks struct {
	MyPharmactivListing string `json:"mypharmactiv_listing,omitempty" validate:"omitempty,url"`
	ExistingWebsite     string `json:"existing_website,omitempty" validate:"omitempty,url"`
	Doctolib            string `json:"doctolib,omitempty" validate:"omitempty,url"`
}

type NoteToConfirm struct {
	Field string `json:"field" validate:"required"`
	Why   string `json:"why" validate:"required"`
}

type PharmacyProfile struct {
	SchemaVersion   string           `json:"schema_version" validate:"required"`
	EntityType      string           `json:"entity_type" validate:"eq=pharmacy_profile"`
	Identity        PharmacyIdentity `json:"identity"`
	Contact         PharmacyContact  `json:"contact"`
	LanguagesSpoken []string         `json:"languages_spoken" validate:"required"`
	OpeningHours    OpeningHours     `json:"opening_hours" validate:"required,dive,keys,oneof=monday tuesday wednesday thursday friday saturday sunday,endkeys,dive"`
	Social          SocialLinks      `json:"social"`
	PublicLinks     PublicLinks      `json:"public_links"`
	NotesToConfirm  []NoteToConfirm  `json:"notes_to_confirm,omitempty" validate:"omitempty,dive"`
}
