package hours

import (
	"fmt"
	"time"

	"github.com/pharmacie-tassigny/site/backend/internal/domain"
)

// dayKeys maps time.Weekday to the keys used in domain.OpeningHours.
var dayKeys = [7]string{"sunday", "monday", "tuesday", "wednesday", "thursday", "friday", "saturday"}

type Status struct {
	IsOpen  bool   `json:"isOpen"`
	Message string `json:"message"`
	// nil when no day of the coming week has opening hours
	NextChange *string `json:"nextChange"`
}

// Evaluate reports whether the pharmacy is open at now, read as wall-clock time
// in loc (UTC when loc is nil). Slots are expected sorted and non-overlapping.
func Evaluate(schedule domain.OpeningHours, now time.Time, loc *time.Location, p Phrases) Status {
	if loc == nil {
		loc = time.UTC
	}
	now = now.In(loc)
	today := now.Weekday()
	clock := now.Format("15:04")

	closed := Status{IsOpen: false, Message: p.Closed}

	for _, slot := range schedule[dayKeys[today]] {
		if clock >= slot.Opens && clock < slot.Closes {
			return Status{IsOpen: true, Message: p.Open, NextChange: phrase(p.ClosesAt, slot.Closes)}
		}
		if clock < slot.Opens {
			closed.NextChange = phrase(p.OpensAt, slot.Opens)
			return closed
		}
	}

	closed.NextChange = nextOpening(schedule, today, p)
	return closed
}

// nextOpening looks up to a week ahead, wrapping back to today's weekday.
func nextOpening(schedule domain.OpeningHours, today time.Weekday, p Phrases) *string {
	for offset := 1; offset <= 7; offset++ {
		day := time.Weekday((int(today) + offset) % 7)
		slots := schedule[dayKeys[day]]
		if len(slots) == 0 {
			continue
		}

		if offset == 1 {
			return phrase(p.OpensTomorrowAt, slots[0].Opens)
		}
		s := fmt.Sprintf(p.OpensOnAt, p.Weekdays[day], slots[0].Opens)
		return &s
	}

	return nil
}

func phrase(format, clock string) *string {
	s := fmt.Sprintf(format, clock)
	return &s
}

// Day is one line of the weekly schedule.
type Day struct {
	Key    string               `json:"key"`
	Label  string               `json:"label"`
	Closed bool                 `json:"closed"`
	Slots  []domain.OpeningSlot `json:"slots"`
}

// Week lists the seven days Monday first. Slots is never nil so closed days
// encode as an empty list.
func Week(schedule domain.OpeningHours, p Phrases) []Day {
	week := make([]Day, 0, len(dayKeys))
	for i := range dayKeys {
		day := time.Weekday((i + 1) % 7)
		slots := schedule[dayKeys[day]]
		if slots == nil {
			slots = []domain.OpeningSlot{}
		}

		week = append(week, Day{
			Key:    dayKeys[day],
			Label:  p.DayLabel(day),
			Closed: len(slots) == 0,
			Slots:  slots,
		})
	}
	return week
}
