package utils

import "github.com/pharmacie-tassigny/site/backend/internal/domain"

const LegalPlaceholder = "[À compléter]"

// LegalValue returns the supplied value of a required legal field, or the
// placeholder while it is still null or absent.
func LegalValue(legal *domain.LegalInfo, field string) string {
	if v, ok := legal.RequiredFieldsToFill[field]; ok && v != nil && *v != "" {
		return *v
	}
	return LegalPlaceholder
}

// LegalFields resolves every required legal field, placeholders included.
func LegalFields(legal *domain.LegalInfo) map[string]string {
	fields := make(map[string]string, len(legal.RequiredFieldsToFill))
	for name := range legal.RequiredFieldsToFill {
		fields[name] = LegalValue(legal, name)
	}
	return fields
}
