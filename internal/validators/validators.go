package validators

import (
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/BruksfildServices01/barbearia-api/internal/httperr"
)

var timeSlotPattern = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)

var (
	once     sync.Once
	validate *validator.Validate
)

// IsTimeSlot reports whether s is a "HH:MM" 24h clock value.
func IsTimeSlot(s string) bool {
	return timeSlotPattern.MatchString(s)
}

func register(v *validator.Validate) {
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})

	_ = v.RegisterValidation("timeslot", func(fl validator.FieldLevel) bool {
		return IsTimeSlot(fl.Field().String())
	})
}

// Setup installs the custom rules on gin's binding validator so request
// structs can use them too. Safe to call more than once.
func Setup() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		register(v)
	}
}

func instance() *validator.Validate {
	once.Do(func() {
		validate = validator.New()
		register(validate)
	})
	return validate
}

// Struct runs the `validate` tags of a persistence model and returns a
// ValidationError listing every failing field.
func Struct(s any) error {
	if err := instance().Struct(s); err != nil {
		return httperr.FromBinding(err)
	}
	return nil
}
