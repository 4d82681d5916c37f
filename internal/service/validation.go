package service

import (
	"reflect"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
)

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04:05"
)

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

// requestValidator shares the "binding" tags gin uses, so REST and GraphQL
// callers are held to the same rules. Errors name fields by their json tag.
func requestValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New()
		validate.SetTagName("binding")
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" || name == "" {
				return fld.Name
			}
			return name
		})
	})
	return validate
}

func validateStruct(v interface{}) error {
	if err := requestValidator().Struct(v); err != nil {
		return fromValidator(err)
	}
	return nil
}

// trimmed returns a trimmed copy of v, or nil
func trimmed(v *string) *string {
	if v == nil {
		return nil
	}
	t := strings.TrimSpace(*v)
	return &t
}

// dateOnly truncates t to midnight in its own location
func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

func parseDate(field string, s *string) (*time.Time, error) {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil, nil
	}
	t, err := time.Parse(dateLayout, strings.TrimSpace(*s))
	if err != nil {
		return nil, invalidf("%s must be a date (YYYY-MM-DD)", field)
	}
	return &t, nil
}
