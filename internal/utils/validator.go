package utils

import (
	"fmt"
	"reflect"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/go-playground/locales/en"
	"github.com/go-playground/locales/fr"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
	fr_translations "github.com/go-playground/validator/v10/translations/fr"
)

var customMessages = map[string]map[string]string{
	"fr": {
		"hhmm": "{0} doit être une heure au format HH:MM",
		"eq":   "{0} doit valoir {1}",
	},
	"en": {
		"hhmm": "{0} must be a time formatted as HH:MM",
		"eq":   "{0} must be {1}",
	},
}

// NewValidator builds a validator that reports JSON field names and translates
// its messages into locale ("fr" or "en"; anything else falls back to "fr").
func NewValidator(locale string) (*validator.Validate, ut.Translator, error) {
	validate := validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	if err := validate.RegisterValidation("hhmm", isHHMM); err != nil {
		return nil, nil, err
	}

	uni := ut.New(fr.New(), fr.New(), en.New())
	if locale != "en" {
		locale = "fr"
	}
	trans, _ := uni.GetTranslator(locale)

	var err error
	switch locale {
	case "en":
		err = en_translations.RegisterDefaultTranslations(validate, trans)
	default:
		err = fr_translations.RegisterDefaultTranslations(validate, trans)
	}
	if err != nil {
		return nil, nil, err
	}

	for tag, text := range customMessages[locale] {
		if err := registerMessage(validate, trans, tag, text); err != nil {
			return nil, nil, fmt.Errorf("register %s translation: %w", tag, err)
		}
	}

	return validate, trans, nil
}

func registerMessage(validate *validator.Validate, trans ut.Translator, tag, text string) error {
	return validate.RegisterTranslation(tag, trans,
		func(ut ut.Translator) error {
			return ut.Add(tag, text, true)
		},
		func(ut ut.Translator, fe validator.FieldError) string {
			msg, err := ut.T(tag, fe.Field(), fe.Param())
			if err != nil {
				return fe.Error()
			}
			return msg
		},
	)
}

func isHHMM(fl validator.FieldLevel) bool {
	return IsClockTime(fl.Field().String())
}

// IsClockTime reports whether s is a zero-padded 24-hour "HH:MM" time.
func IsClockTime(s string) bool {
	if len(s) != 5 {
		return false
	}
	_, err := time.Parse("15:04", s)
	return err == nil
}
