package validator

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New(validator.WithRequiredStructEnabled())

	// в ошибках поля называются так же, как в JSON/YAML каталога
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

// Validate - валидация структуры
func Validate(s interface{}) error {
	return validate.Struct(s)
}

// Describe сворачивает ошибки валидации в строку вида "polygon[1].lat: latitude; id: required".
// Прочие ошибки возвращаются как есть.
func Describe(err error) string {
	if err == nil {
		return ""
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}

	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		field := fe.Namespace()
		// без имени корневого типа
		if i := strings.IndexByte(field, '.'); i >= 0 {
			field = field[i+1:]
		}
		parts = append(parts, field+": "+fe.Tag())
	}
	return strings.Join(parts, "; ")
}
