// internal/service/validator.go
package service

import (
	"reflect"
	"strings"

	playgroundvalidator "github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"github.com/samber/lo"

	appErrors "github.com/unclebandit/anything-security-console/internal/errors"
	"github.com/unclebandit/anything-security-console/internal/model"
)

// Validator checks form payloads before they reach the backend. Failed fields
// are reported by their JSON names.
type Validator struct {
	validate *playgroundvalidator.Validate
}

func NewValidator() *Validator {
	v := playgroundvalidator.New()

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// registration only fails on an empty tag or nil func
	_ = v.RegisterValidation("asset_type", validateAssetType)

	return &Validator{validate: v}
}

func validateAssetType(fl playgroundvalidator.FieldLevel) bool {
	return model.AssetType(fl.Field().String()).Valid()
}

// Struct validates i and returns an *appErrors.ValidationError listing the
// offending fields.
func (v *Validator) Struct(i any) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}
	var fieldErrs playgroundvalidator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return errors.Wrap(err, "validate")
	}
	fields := lo.Uniq(lo.Map(fieldErrs, func(fe playgroundvalidator.FieldError, _ int) string {
		// recipient_emails[2] reports as recipient_emails
		name, _, _ := strings.Cut(fe.Field(), "[")
		return name
	}))
	return appErrors.NewValidationError(fields...)
}
