package validate

import (
	"errors"
	"regexp"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var validate *validator.Validate

var translator ut.Translator

var (
	alphaSpaceRx = regexp.MustCompile(`^[A-Za-z\s]+$`)
	digitsRx     = regexp.MustCompile(`^[0-9]+$`)
)

func init() {

	validate = validator.New()

	validate.RegisterValidation("alphaspace", func(fl validator.FieldLevel) bool {
		return alphaSpaceRx.MatchString(fl.Field().String())
	})
	validate.RegisterValidation("digits", func(fl validator.FieldLevel) bool {
		return digitsRx.MatchString(fl.Field().String())
	})

	translator, _ = ut.New(en.New(), en.New()).GetTranslator("en")
	en_translations.RegisterDefaultTranslations(validate, translator)
}

// Check validates a struct against its validate tags, returning the
// first violation translated to plain English.
func Check(val any) error {
	if err := validate.Struct(val); err != nil {

		verrors, ok := err.(validator.ValidationErrors)
		if !ok {
			return err
		}

		if len(verrors) < 1 {
			return nil
		}

		return errors.New(verrors[0].Translate(translator))
	}

	return nil
}

// Var validates a single value against a tag expression.
func Var(val any, tag string) error {
	return validate.Var(val, tag)
}

// CheckID parses id as a document-store identifier.
func CheckID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, errors.New("ID is not in its proper form")
	}
	return oid, nil
}
