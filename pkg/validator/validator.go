package validator

import (
	"log"
	"reflect"
	"regexp"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

func RegisterGinValidator() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
		err := v.RegisterValidation("pincode", pincodeValidator)
		if err != nil {
			log.Fatal("register pincode validator failed")
		}
	}
}

// Postal codes vary by country; accept 4-10 alphanumerics with optional
// single space or dash separators.
var pincodeValidator validator.Func = func(fl validator.FieldLevel) bool {
	pincode := fl.Field().String()
	pattern := `^[A-Za-z0-9]{2,6}([ -]?[A-Za-z0-9]{1,5})?$`
	matched, err := regexp.MatchString(pattern, pincode)
	if err != nil {
		return false
	}
	return matched
}
