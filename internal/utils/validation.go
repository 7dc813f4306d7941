package utils

import (
	"fmt"

	"github.com/pharmacie-tassigny/site/backend/internal/domain"
)

// ValidateOpeningHours checks what struct tags cannot: every slot must close after
// it opens, and the slots of a day must be sorted and must not overlap.
func ValidateOpeningHours(hours domain.OpeningHours) []string {
	var violations []string

	for _, day := range domain.Weekdays {
		slots := hours[day]
		// malformed bounds are already reported by the hhmm tag
		if !wellFormed(slots) {
			continue
		}

		for i, slot := range slots {
			if slot.Opens >= slot.Closes {
				violations = append(violations, fmt.Sprintf("opening_hours.%s[%d]: opens (%s) must be before closes (%s)", day, i, slot.Opens, slot.Closes))
			}
		}

		for i := 1; i < len(slots); i++ {
			prev, cur := slots[i-1], slots[i]
			if cur.Opens < prev.Closes {
				violations = append(violations, fmt.Sprintf("opening_hours.%s[%d]: slot %s-%s overlaps or precedes slot %s-%s", day, i, cur.Opens, cur.Closes, prev.Opens, prev.Closes))
			}
		}
	}

	return violations
}

func wellFormed(slots []domain.OpeningSlot) bool {
	for _, slot := range slots {
		if !IsClockTime(slot.Opens) || !IsClockTime(slot.Closes) {
			return false
		}
	}
	return true
}

// ValidateServiceCatalog checks slug uniqueness and duration ranges.
func ValidateServiceCatalog(catalog *domain.ServicesCatalog) []string {
	var violations []string

	seen := make(map[string]int, len(catalog.Services))
	for i, service := range catalog.Services {
		if service.Slug != "" {
			if first, dup := seen[service.Slug]; dup {
				violations = append(violations, fmt.Sprintf("services[%d].slug: %q already used by services[%d]", i, service.Slug, first))
			} else {
				seen[service.Slug] = i
			}
		}

		if len(service.DurationRangeMin) == 2 && service.DurationRangeMin[0] > service.DurationRangeMin[1] {
			violations = append(violations, fmt.Sprintf("services[%d].duration_range_min: min %v is greater than max %v", i, service.DurationRangeMin[0], service.DurationRangeMin[1]))
		}
	}

	return violations
}
