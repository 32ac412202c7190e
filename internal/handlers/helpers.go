package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"portfolio_api/internal/responses"
	"portfolio_api/internal/utils"
)

func init() {
	// Report JSON names ("githubUrl") instead of Go field names in
	// validation errors.
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
			if name == "-" {
				return ""
			}
			return name
		})
		if err := v.RegisterValidation("optional_url", optionalURL); err != nil {
			panic(err)
		}
	}
}

var urlRule = validator.New()

// optionalURL accepts an empty string so optional links can be left blank
// or cleared; anything else must pass the url rule.
func optionalURL(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	return s == "" || urlRule.Var(s, "url") == nil
}

// bindJSON decodes the body into obj. Missing required fields are reported
// with requiredMessage; other rule violations name the offending field.
func bindJSON(c *gin.Context, obj interface{}, requiredMessage string) bool {
	err := c.ShouldBindJSON(obj)
	if err == nil {
		return true
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid request body")
		return false
	}

	for _, fe := range verrs {
		if fe.Tag() == "required" && requiredMessage != "" {
			responses.Fail(c, http.StatusBadRequest, nil, requiredMessage)
			return false
		}
	}
	responses.Fail(c, http.StatusBadRequest, nil, describeFieldError(verrs[0]))
	return false
}

func describeFieldError(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "email":
		return "Invalid email address"
	case "url", "optional_url":
		return fmt.Sprintf("%s must be a valid URL", field)
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
		}
		return fmt.Sprintf("%s must be at most %s", field, fe.Param())
	case "min":
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}

// idParam parses the :id path parameter, writing 400 when it is not a
// positive integer.
func idParam(c *gin.Context) (int64, bool) {
	id, err := utils.ParseID(c.Param("id"))
	if err != nil {
		responses.Fail(c, http.StatusBadRequest, nil, "Invalid id")
		return 0, false
	}
	return id, true
}
