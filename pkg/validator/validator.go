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
		err := v.RegisterValidation("zonecolor", zoneColorValidator)
		if err != nil {
			log.Fatal("register zonecolor validator failed")
		}
	}
}

var zoneColorPattern = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// zoneColorValidator accepts #RRGGBB with case-insensitive hex digits.
// Normalization to uppercase happens at the service layer.
var zoneColorValidator validator.Func = func(fl validator.FieldLevel) bool {
	color := fl.Field().String()
	if !strings.HasPrefix(color, "#") || len(color) != 7 {
		return false
	}
	return zoneColorPattern.MatchString(color)
}
