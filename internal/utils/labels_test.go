package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCategoryLabel(t *testing.T) {
	assert.Equal(t, "Prévention", CategoryLabel("prevention"))
	assert.Equal(t, "Matériel médical", CategoryLabel("medical_equipment"))
	assert.Equal(t, "unknown_code", CategoryLabel("unknown_code"))
	assert.Equal(t, "", CategoryLabel(""))
}

func TestLanguageLabel(t *testing.T) {
	assert.Equal(t, "Français", LanguageLabel("fr"))
	assert.Equal(t, "Italien", LanguageLabel("it"))
	assert.Equal(t, "pt", LanguageLabel("pt"))
}
