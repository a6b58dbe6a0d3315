package utils

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"hospital-api-server/internal/models"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

// Validator returns the shared validator with the custom rules registered.
func Validator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New()
		_ = validate.RegisterValidation("weekday", func(fl validator.FieldLevel) bool {
			return models.IsWeekday(fl.Field().String())
		})
	})
	return validate
}

// Validate performs validation on a struct.
func Validate(s interface{}) error {
	return Validator().Struct(s)
}

// FormatValidationError formats validation errors into a readable string.
func FormatValidationError(err error) string {
	var errs validator.ValidationErrors
	if !errors.As(err, &errs) {
		return err.Error()
	}
	msgs := make([]string, 0, len(errs))
	for _, e := range errs {
		switch e.Tag() {
		case "required":
			msgs = append(msgs, fmt.Sprintf("%s is required", e.Field()))
		case "oneof":
			msgs = append(msgs, fmt.Sprintf("%s must be one of %s", e.Field(), strings.ReplaceAll(e.Param(), " ", ", ")))
		case "weekday":
			msgs = append(msgs, fmt.Sprintf("%s must be a weekday name", e.Field()))
		default:
			msgs = append(msgs, fmt.Sprintf("%s failed %s", e.Field(), e.Tag()))
		}
	}
	return strings.Join(msgs, ", ")
}

// BindAndValidate binds the JSON body to obj and validates it. On failure it
// sends a 400 whose message starts with prefix and returns false.
func BindAndValidate(c *gin.Context, obj interface{}, prefix string) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		BadRequest(c, prefix+": "+FormatValidationError(err))
		return false
	}
	if err := Validate(obj); err != nil {
		BadRequest(c, prefix+": "+FormatValidationError(err))
		return false
	}
	return true
}

var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// ParseDate accepts an RFC 3339 timestamp or a bare date and returns it in
// UTC. Inputs without a zone are read as UTC.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date %q", s)
}
