package utils

import (
	"testing"

	"github.com/pharmacie-tassigny/site/backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var catalog = []domain.Service{
	{Slug: "vaccination", Name: "Vaccination", Category: "prevention"},
	{Slug: "depistage-angine", Name: "Test angine (TROD)", Category: "screening"},
	{Slug: "location-materiel", Name: "Location de matériel médical", Category: "medical_equipment"},
	{Slug: "bas-de-contention", Name: "Bas de contention", Category: "specialty"},
	{Slug: "glycemie", Name: "Test de glycémie", Category: "screening"},
}

func slugs(services []domain.Service) []string {
	out := make([]string, 0, len(services))
	for _, s := range services {
		out = append(out, s.Slug)
	}
	return out
}

func TestFindNeed(t *testing.T) {
	need, ok := FindNeed("orthopedie")
	require.True(t, ok)
	assert.Equal(t, "Orthopédie / contention", need.Label)

	_, ok = FindNeed("teleportation")
	assert.False(t, ok)
}

func TestFindServices(t *testing.T) {
	tests := []struct {
		need string
		want []string
	}{
		{"vaccination", []string{"vaccination"}},
		{"depistage", []string{"depistage-angine", "glycemie"}},
		{"materiel", []string{"location-materiel"}},
		{"orthopedie", []string{"bas-de-contention"}},
		{"suivi", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.need, func(t *testing.T) {
			need, ok := FindNeed(tt.need)
			require.True(t, ok)
			assert.Equal(t, tt.want, slugs(FindServices(catalog, need)))
		})
	}
}

func TestNeedsHaveKeywords(t *testing.T) {
	for _, need := range Needs {
		assert.NotEmpty(t, need.Keywords, need.ID)
	}
}
