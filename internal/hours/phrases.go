package hours

import (
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Phrases holds the wording of a status. The format strings take the "HH:MM"
// time, and OpensOnAt takes the weekday name first.
type Phrases struct {
	Tag             language.Tag
	Open            string
	Closed          string
	ClosesAt        string
	OpensAt         string
	OpensTomorrowAt string
	OpensOnAt       string
	// indexed by time.Weekday
	Weekdays [7]string
}

var English = Phrases{
	Tag:             language.English,
	Open:            "Open",
	Closed:          "Closed",
	ClosesAt:        "Closes at %s",
	OpensAt:         "Opens at %s",
	OpensTomorrowAt: "Opens tomorrow at %s",
	OpensOnAt:       "Opens %s at %s",
	Weekdays:        [7]string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"},
}

var French = Phrases{
	Tag:             language.French,
	Open:            "Ouvert",
	Closed:          "Fermé",
	ClosesAt:        "Ferme à %s",
	OpensAt:         "Ouvre à %s",
	OpensTomorrowAt: "Ouvre demain à %s",
	OpensOnAt:       "Ouvre %s à %s",
	Weekdays:        [7]string{"dimanche", "lundi", "mardi", "mercredi", "jeudi", "vendredi", "samedi"},
}

// PhrasesFor returns English for "en" and French for anything else.
func PhrasesFor(locale string) Phrases {
	if locale == "en" {
		return English
	}
	return French
}

// DayLabel is the weekday name as it heads a line of the weekly schedule.
func (p Phrases) DayLabel(day time.Weekday) string {
	return cases.Title(p.Tag).String(p.Weekdays[day])
}
