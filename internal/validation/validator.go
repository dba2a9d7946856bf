package validation

import (
	"reflect"
	"strings"

	"github.com/cucumber/godog"
	validator "github.com/go-playground/validator/v10"
)

func NewValidator() (*validator.Validate, error) {
	validate := validator.New(validator.WithRequiredStructEnabled())
	register(validate)
	if err := registerCustomValidators(validate); err != nil {
		return nil, err
	}
	return validate, nil
}

func register(instance *validator.Validate) {
	// report fields by their configuration key
	instance.RegisterTagNameFunc(
		func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("mapstructure"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		},
	)
}

func registerCustomValidators(instance *validator.Validate) error {
	return instance.RegisterValidation("godog_format", validateFormat)
}

// validateFormat accepts godog's -format syntax: comma separated formatter
// names, each optionally followed by :<output file>.
func validateFormat(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return false
	}
	formatters := godog.AvailableFormatters()
	for _, entry := range strings.Split(value, ",") {
		name, _, _ := strings.Cut(strings.TrimSpace(entry), ":")
		if _, ok := formatters[name]; !ok {
			return false
		}
	}
	return true
}
