package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Dépistage Angine", "depistage-angine"},
		{"Test angine (TROD)", "test-angine-trod"},
		{"Location de matériel médical", "location-de-materiel-medical"},
		{"  Orthèse & contention  ", "orthese-contention"},
		{"déjà-slugifié", "deja-slugifie"},
		{"---", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Slugify(tt.in), tt.in)
	}
}
