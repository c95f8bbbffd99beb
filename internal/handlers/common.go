package handlers

import (
	"bytes"
	"errors"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// validate is shared by every handler: the instance is concurrency
// safe and caches struct metadata across requests.
var validate = validator.New()

// renderBytes renders a template into memory so the result can be
// cached or written out as a single blob.
func renderBytes(c echo.Context, name string, data interface{}) ([]byte, error) {
	var buf bytes.Buffer
	if err := c.Echo().Renderer.Render(&buf, name, data, c); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// parseID reads a numeric path parameter. Garbage means the entity
// cannot exist, which is a 404 and not a client error page.
func parseID(c echo.Context, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		return 0, echo.ErrNotFound
	}
	return uint(id), nil
}

// formErrors flattens validator output into field->message pairs for
// template re-rendering.
func formErrors(err error) map[string]string {
	fields := map[string]string{}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			fields[strings.ToLower(fe.Field())] = fieldMessage(fe)
		}
	}
	return fields
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required."
	case "email":
		return "Enter a valid email address."
	case "min":
		return "Value is too short."
	case "max":
		return "Value is too long."
	}
	return "Invalid value."
}
