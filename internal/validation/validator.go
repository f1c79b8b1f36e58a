package validation

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

type FieldError struct {
	Field      string `json:"field"`
	Constraint string `json:"constraint"`
}

// Error содержит нарушения по каждому полю входных данных.
type Error struct {
	Fields []FieldError
}

func (e *Error) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+" "+f.Constraint)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Enum реализуют закрытые перечисления, проверяемые тегом enum.
type Enum interface {
	Valid() bool
	Options() []string
}

type Validator struct {
	validate *validator.Validate
}

// New создает валидатор на базе go-playground/validator с именами полей из json-тегов.
func New() *Validator {
	v := validator.New()
	v.RegisterTagNameFunc(jsonName)

	// Ошибки регистрации возможны только при пустом теге или nil-функции.
	_ = v.RegisterValidation("finite", isFinite)
	_ = v.RegisterValidation("enum", isValidEnum)

	return &Validator{validate: v}
}

// Validate запускает проверку структуры по тегам и возвращает *Error при нарушениях.
func (v *Validator) Validate(i interface{}) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	out := &Error{Fields: make([]FieldError, 0, len(fieldErrs))}
	for _, fe := range fieldErrs {
		out.Fields = append(out.Fields, FieldError{
			Field:      fe.Field(),
			Constraint: describe(i, fe),
		})
	}
	return out
}

func describe(target interface{}, fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "gte", "min":
		return "must be at least " + fe.Param()
	case "lte", "max":
		return "must be at most " + fe.Param()
	case "gt":
		return "must be greater than " + fe.Param()
	case "lt":
		return "must be less than " + fe.Param()
	case "gtfield":
		return "must be greater than " + siblingName(target, fe.Param())
	case "gtefield":
		return "must be at least " + siblingName(target, fe.Param())
	case "ltfield":
		return "must be less than " + siblingName(target, fe.Param())
	case "oneof":
		return "must be one of: " + strings.Join(strings.Fields(fe.Param()), ", ")
	case "finite":
		return "must be a finite number"
	case "enum":
		if e, ok := fe.Value().(Enum); ok {
			return "must be one of: " + strings.Join(e.Options(), ", ")
		}
		return "is not a recognized value"
	default:
		return fmt.Sprintf("failed %s check", fe.Tag())
	}
}

func jsonName(field reflect.StructField) string {
	name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	return name
}

func siblingName(target interface{}, goName string) string {
	t := reflect.TypeOf(target)
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t == nil || t.Kind() != reflect.Struct {
		return goName
	}

	field, ok := t.FieldByName(goName)
	if !ok {
		return goName
	}
	if name := jsonName(field); name != "" {
		return name
	}
	return goName
}

func isFinite(fl validator.FieldLevel) bool {
	field := fl.Field()
	switch field.Kind() {
	case reflect.Float32, reflect.Float64:
		value := field.Float()
		return !math.IsNaN(value) && !math.IsInf(value, 0)
	default:
		return true
	}
}

func isValidEnum(fl validator.FieldLevel) bool {
	field := fl.Field()
	if !field.CanInterface() {
		return false
	}
	e, ok := field.Interface().(Enum)
	return ok && e.Valid()
}
