package utils

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/pharmacie-tassigny/site/backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateOpeningHours(t *testing.T) {
	valid := domain.OpeningHours{
		"monday":   {{Opens: "08:30", Closes: "20:00"}},
		"saturday": {{Opens: "08:30", Closes: "12:30"}, {Opens: "12:30", Closes: "19:00"}},
		"sunday":   {},
	}
	assert.Empty(t, ValidateOpeningHours(valid))

	invalid := domain.OpeningHours{
		"monday":    {{Opens: "20:00", Closes: "20:00"}},
		"tuesday":   {{Opens: "14:00", Closes: "19:00"}, {Opens: "08:30", Closes: "12:00"}},
		"wednesday": {{Opens: "9h", Closes: "12:00"}, {Opens: "08:00", Closes: "07:00"}},
	}
	violations := ValidateOpeningHours(invalid)
	require.Len(t, violations, 2)
	assert.Contains(t, violations[0], "opening_hours.monday[0]")
	assert.Contains(t, violations[1], "opening_hours.tuesday[1]")
}

func TestValidateServiceCatalog(t *testing.T) {
	catalog := &domain.ServicesCatalog{Services: []domain.Service{
		{Slug: "vaccination", DurationRangeMin: []float64{10, 15}},
		{Slug: "depistage", DurationRangeMin: []float64{20, 10}},
		{Slug: "vaccination", DurationRangeMin: []float64{5, 5}},
	}}

	violations := ValidateServiceCatalog(catalog)
	require.Len(t, violations, 2)
	assert.Equal(t, "services[1].duration_range_min: min 20 is greater than max 10", violations[0])
	assert.Equal(t, `services[2].slug: "vaccination" already used by services[0]`, violations[1])
}

func TestIsClockTime(t *testing.T) {
	for _, s := range []string{"00:00", "08:30", "23:59"} {
		assert.True(t, IsClockTime(s), s)
	}
	for _, s := range []string{"8:30", "24:00", "12:60", "0830", "08:30:00", ""} {
		assert.False(t, IsClockTime(s), s)
	}
}

func TestNewValidator(t *testing.T) {
	tests := []struct {
		locale string
		value  any
		want   string
	}{
		{"en", domain.ChatMessage{Role: "system", Content: "hi"}, "role must be one of [user assistant]"},
		{"en", domain.OpeningSlot{Opens: "8h30", Closes: "12:00"}, "opens must be a time formatted as HH:MM"},
		{"fr", domain.OpeningSlot{Opens: "08:30", Closes: "midi"}, "closes doit être une heure au format HH:MM"},
		{"fr", domain.Faq{SchemaVersion: "1.0", EntityType: "team", Items: []domain.FaqItem{}}, "entity_type doit valoir faq"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			validate, trans, err := NewValidator(tt.locale)
			require.NoError(t, err)

			err = validate.Struct(tt.value)
			var validationErrors validator.ValidationErrors
			require.ErrorAs(t, err, &validationErrors)
			require.Len(t, validationErrors, 1)
			assert.Equal(t, tt.want, validationErrors[0].Translate(trans))
		})
	}
}
