// Package validator adapts go-playground/validator to echo.
package validator

import (
	"reflect"
	"strings"

	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/errors"
	"storefront/internal/util"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	entranslations "github.com/go-playground/validator/v10/translations/en"
)

const keyInvalid = "msg.invalid"

// messages override the stock English texts. {0} is the field, {1} the rule
// parameter. Keys ending in -text and -items are the string and list variants.
var messages = map[string]string{
	"msg.required":                   "The {0} field is required.",
	"msg.email":                      "The {0} must be a valid email address.",
	"msg.min":                        "The {0} must be at least {1}.",
	"msg.min-text":                   "The {0} must be at least {1} characters.",
	"msg.min-items":                  "The {0} must have at least {1} items.",
	"msg.max":                        "The {0} must not be greater than {1}.",
	"msg.max-text":                   "The {0} must not be greater than {1} characters.",
	"msg.gte":                        "The {0} must be greater than or equal to {1}.",
	"msg.lte":                        "The {0} must be less than or equal to {1}.",
	"msg.gt":                         "The {0} must be greater than {1}.",
	"msg." + util.RulePhone:          "The {0} format is invalid.",
	"msg." + util.RuleStrongPassword: "The {0} must contain upper and lower case letters, a number and a symbol.",
	keyInvalid:                       "The {0} is invalid.",
}

// Validator implements echo.Validator and reports failures as a
// domain ValidationError keyed by JSON field name.
type Validator struct {
	validate *validator.Validate
	trans    ut.Translator
}

// New creates a Validator with the storefront rules and messages registered.
func New() *Validator {
	validate := util.NewValidate()
	trans, _ := ut.New(en.New()).GetTranslator("en")

	_ = entranslations.RegisterDefaultTranslations(validate, trans)
	for key, text := range messages {
		_ = trans.Add(key, text, true)
	}

	for _, tag := range []string{"required", "email", "min", "max", "gte", "lte", "gt", util.RulePhone, util.RuleStrongPassword} {
		_ = validate.RegisterTranslation(tag, trans, func(ut.Translator) error { return nil }, translate)
	}

	return &Validator{validate: validate, trans: trans}
}

// Validate checks a bound request struct.
func (v *Validator) Validate(i any) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return errors.Wrap(err, "validate request")
	}

	verr := domainerrors.NewValidationError()
	for _, fe := range fieldErrs {
		verr.Add(fieldPath(fe), v.message(fe))
	}

	return verr
}

// message prefers the registered text; tags without one get the generic text.
func (v *Validator) message(fe validator.FieldError) string {
	if msg := fe.Translate(v.trans); msg != fe.Error() {
		return msg
	}

	msg, err := v.trans.T(keyInvalid, fieldName(fe), fe.Param())
	if err != nil {
		return fe.Error()
	}

	return msg
}

func translate(trans ut.Translator, fe validator.FieldError) string {
	msg, err := trans.T(messageKey(fe), fieldName(fe), fe.Param())
	if err != nil {
		return fe.Error()
	}

	return msg
}

func messageKey(fe validator.FieldError) string {
	key := "msg." + fe.Tag()

	switch fe.Tag() {
	case "min":
		if isText(fe) {
			return key + "-text"
		}
		if isList(fe) {
			return key + "-items"
		}
	case "max":
		if isText(fe) {
			return key + "-text"
		}
	}

	return key
}

// fieldPath drops the struct name so nested fields read like
// product_transactions[0].qty.
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if _, rest, ok := strings.Cut(ns, "."); ok {
		return rest
	}

	return fe.Field()
}

func fieldName(fe validator.FieldError) string {
	return strings.ReplaceAll(fe.Field(), "_", " ")
}

func isText(fe validator.FieldError) bool {
	return fe.Kind() == reflect.String
}

func isList(fe validator.FieldError) bool {
	return fe.Kind() == reflect.Slice || fe.Kind() == reflect.Array
}
