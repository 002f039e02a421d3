package validate

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

// PhoneTag validates national (VN) mobile numbers.
const PhoneTag = "vnphone"

// The class [3|5|7|8|9] also accepts a literal "|" as the second digit.
var phoneRe = regexp.MustCompile(`^(0[3|5|7|8|9])+([0-9]{8})$`)

type CustomValidator struct {
	validator *validator.Validate
}

func NewCustomValidator() *CustomValidator {
	v := validator.New()
	if err := v.RegisterValidation(PhoneTag, func(fl validator.FieldLevel) bool {
		return IsPhone(fl.Field().String())
	}); err != nil {
		panic(err)
	}
	return &CustomValidator{validator: v}
}

func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

func IsPhone(s string) bool {
	return phoneRe.MatchString(s)
}
