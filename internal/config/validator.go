package config

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"

	"github.com/reclamegraag/examiner/internal/practice"
	"github.com/reclamegraag/examiner/internal/wordset"
)

func newValidator() (*validator.Validate, ut.Translator, error) {
	validate := validator.New()

	enLocale := en.New()
	uni := ut.New(enLocale, enLocale)
	trans, _ := uni.GetTranslator("en")
	if err := enTranslations.RegisterDefaultTranslations(validate, trans); err != nil {
		return nil, nil, fmt.Errorf("failed to register default translations: %w", err)
	}

	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("mapstructure"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	modes := make([]string, len(wordset.PracticeModes))
	for i, mode := range wordset.PracticeModes {
		modes[i] = string(mode)
	}
	directions := make([]string, len(practice.Directions))
	for i, direction := range practice.Directions {
		directions[i] = string(direction)
	}

	custom := []struct {
		tag     string
		allowed []string
	}{
		{tag: "practice_mode", allowed: modes},
		{tag: "direction", allowed: directions},
	}
	for _, c := range custom {
		if err := registerOneOf(validate, trans, c.tag, c.allowed); err != nil {
			return nil, nil, err
		}
	}

	return validate, trans, nil
}

func registerOneOf(validate *validator.Validate, trans ut.Translator, tag string, allowed []string) error {
	if err := validate.RegisterValidation(tag, func(fl validator.FieldLevel) bool {
		value := fl.Field().String()
		for _, a := range allowed {
			if value == a {
				return true
			}
		}
		return false
	}); err != nil {
		return fmt.Errorf("failed to register %s validation: %w", tag, err)
	}

	message := fmt.Sprintf("{0} must be one of [%s]", strings.Join(allowed, " "))
	if err := validate.RegisterTranslation(tag, trans, func(ut ut.Translator) error {
		return ut.Add(tag, message, true)
	}, func(ut ut.Translator, fe validator.FieldError) string {
		t, _ := ut.T(tag, strings.TrimPrefix(fe.Namespace(), "Config."))
		return t
	}); err != nil {
		return fmt.Errorf("failed to register %s translation: %w", tag, err)
	}
	return nil
}
