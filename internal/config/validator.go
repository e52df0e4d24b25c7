package config

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/alexisbeaulieu97/flexplay/internal/playground"
	flexerrors "github.com/alexisbeaulieu97/flexplay/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	lengthPattern  = regexp.MustCompile(`^(0|\d+(\.\d+)?(px|rem|em|%)?)$`)
	numberPattern  = regexp.MustCompile(`^\d+(\.\d+)?$`)
	integerPattern = regexp.MustCompile(`^-?\d+$`)
)

// validatorInstance configures and returns the shared validator instance used across the config package.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		// Report yaml key names instead of Go field names.
		v.RegisterTagNameFunc(func(field reflect.StructField) string {
			name := strings.SplitN(field.Tag.Get("yaml"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})

		_ = v.RegisterValidation("css_length", func(fl validator.FieldLevel) bool {
			return lengthPattern.MatchString(strings.TrimSpace(fl.Field().String()))
		})

		_ = v.RegisterValidation("css_basis", func(fl validator.FieldLevel) bool {
			value := strings.TrimSpace(fl.Field().String())
			return value == "auto" || lengthPattern.MatchString(value)
		})

		_ = v.RegisterValidation("css_number", func(fl validator.FieldLevel) bool {
			return numberPattern.MatchString(strings.TrimSpace(fl.Field().String()))
		})

		_ = v.RegisterValidation("css_integer", func(fl validator.FieldLevel) bool {
			return integerPattern.MatchString(strings.TrimSpace(fl.Field().String()))
		})

		validateInst = v
	})

	return validateInst
}

// Validate performs schema and cross-field validation on the configuration.
// Only configuration files are checked this strictly; values typed into the
// editor are kept as given.
func Validate(cfg *Config) error {
	if cfg == nil {
		return flexerrors.NewValidationError("config", "configuration is nil", nil)
	}

	if err := validatorInstance().Struct(cfg); err != nil {
		return convertValidationError(err)
	}

	if cfg.Select != nil {
		items := cfg.Items
		if items == 0 {
			items = playground.DefaultItemCount
		}
		if *cfg.Select >= items {
			return flexerrors.NewValidationError("select",
				fmt.Sprintf("selects item %d but only %d items exist", *cfg.Select, items), nil)
		}
	}

	return nil
}
