package utils

var categoryLabels = map[string]string{
	"prevention":        "Prévention",
	"screening":         "Dépistage",
	"clinical_support":  "Suivi clinique",
	"medical_equipment": "Matériel médical",
	"specialty":         "Spécialités",
	"dermocosmetics":    "Dermocosmétique",
	"advice":            "Conseils",
	"support":           "Accompagnement",
}

var languageLabels = map[string]string{
	"fr": "Français",
	"en": "Anglais",
	"de": "Allemand",
	"ar": "Arabe",
	"it": "Italien",
}

// CategoryLabel returns the display label of a service category, or the code
// itself when it is unknown.
func CategoryLabel(code string) string {
	if label, ok := categoryLabels[code]; ok {
		return label
	}
	return code
}

// LanguageLabel returns the display label of a spoken language code, or the
// code itself when it is unknown.
func LanguageLabel(code string) string {
	if label, ok := languageLabels[code]; ok {
		return label
	}
	return code
}
