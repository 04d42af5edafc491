// Package validation checks request bodies and form submissions before any stub work runs.
package validation

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"regexp"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"

	"floorplan-web/internal/models"
)

// emailShape is the local@domain.tld check used by the forms; no RFC validation beyond it.
var emailShape = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Messager supplies human readable messages for a request type.
type Messager interface {
	ValidationMessage(field, tag string) string
}

// Grouper maps conditional fields to their group and the group's form message.
type Grouper interface {
	ValidationGroup(field string) (group, message string)
}

type Validator struct {
	validate *validator.Validate
}

// New builds the validator. It panics if a custom rule cannot be registered, which can
// only happen through a programming error in this package.
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report json/form names instead of Go field names
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		for _, tag := range []string{"json", "form"} {
			name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name != "" {
				return name
			}
		}
		return fld.Name
	})

	v.RegisterCustomTypeFunc(numericValue, models.Measure{}, models.Count{})

	// present only runs for supplied values; absent ones fail before reaching it
	mustRegister(v, "present", func(fl validator.FieldLevel) bool { return true })
	mustRegister(v, "emailshape", func(fl validator.FieldLevel) bool {
		return emailShape.MatchString(fl.Field().String())
	})

	v.RegisterStructValidation(optionalSpaces, models.FloorPlanRequest{})

	return &Validator{validate: v}
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("validation: register %q: %v", tag, err))
	}
}

// numericValue exposes Measure and Count to the validator: absent values become nil so the
// first rule fails, values that did not parse become NaN so every comparison fails.
func numericValue(field reflect.Value) interface{} {
	switch v := field.Interface().(type) {
	case models.Measure:
		if !v.Present() {
			return nil
		}
		if !v.Numeric() {
			return math.NaN()
		}
		return v.Float64()
	case models.Count:
		if !v.Present() {
			return nil
		}
		if !v.Numeric() {
			return math.NaN()
		}
		return v.Float64()
	}
	return nil
}

// optionalSpaces checks the parking, porch and veranda groups. A group is only checked
// when its flag is set, and then every field in it must pass on its own.
func optionalSpaces(sl validator.StructLevel) {
	req := sl.Current().Interface().(models.FloorPlanRequest)

	if req.HasParking {
		if !req.ParkingLength.Positive() {
			sl.ReportError(req.ParkingLength, "parkingLength", "ParkingLength", "gt", "0")
		}
		if !req.ParkingWidth.Positive() {
			sl.ReportError(req.ParkingWidth, "parkingWidth", "ParkingWidth", "gt", "0")
		}
		if !req.ParkingDepth.Positive() {
			sl.ReportError(req.ParkingDepth, "parkingDepth", "ParkingDepth", "gt", "0")
		}
	}
	if req.HasPorch && !req.Porch.AtLeast(1) {
		sl.ReportError(req.Porch, "porch", "Porch", "gte", "1")
	}
	if req.HasVeranda && !req.Veranda.AtLeast(1) {
		sl.ReportError(req.Veranda, "veranda", "Veranda", "gte", "1")
	}
}

// Struct validates obj and returns *Error when any rule fails. obj is never modified.
func (v *Validator) Struct(obj interface{}) error {
	err := v.validate.Struct(obj)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("failed to validate %T: %w", obj, err)
	}

	messager, _ := obj.(Messager)
	grouper, _ := obj.(Grouper)

	out := &Error{}
	for _, fe := range fieldErrs {
		tag := fe.Tag()
		fieldErr := FieldError{
			Field:   fe.Field(),
			Tag:     tag,
			Message: message(messager, fe.Field(), tag),
			missing: tag == "required" || tag == "present",
		}
		if grouper != nil {
			fieldErr.Group, fieldErr.GroupMessage = grouper.ValidationGroup(fe.Field())
		}
		out.fields = append(out.fields, fieldErr)
	}

	// Missing fields are reported before malformed ones
	sort.SliceStable(out.fields, func(i, j int) bool {
		return out.fields[i].missing && !out.fields[j].missing
	})
	return out
}

func message(m Messager, field, tag string) string {
	if m != nil {
		if msg := m.ValidationMessage(field, tag); msg != "" {
			return msg
		}
	}
	switch tag {
	case "required", "present":
		return "This field is required"
	case "emailshape":
		return "Invalid email format"
	case "min":
		return "Too short"
	case "gt", "gte":
		return "Value too small"
	case "eqfield":
		return "Values do not match"
	default:
		return "Invalid value"
	}
}
