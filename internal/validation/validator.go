// Reelmatch - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

// ErrorCode is the API error code carried by validation failures.
const ErrorCode = "VALIDATION_FAILED"

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

// ParamError describes one rejected request parameter.
type ParamError struct {
	Param   string      `json:"param"`
	Rule    string      `json:"rule"`
	Limit   string      `json:"limit,omitempty"`
	Value   interface{} `json:"value,omitempty"`
	Message string      `json:"message"`
}

// Error implements error.
func (e ParamError) Error() string {
	return e.Message
}

// Errors lists every rejected parameter of one request, in struct order.
type Errors []ParamError

// Error joins the messages with "; ".
func (e Errors) Error() string {
	if len(e) == 0 {
		return "validation failed"
	}
	msgs := make([]string, len(e))
	for i, pe := range e {
		msgs[i] = pe.Message
	}
	return strings.Join(msgs, "; ")
}

// APIError is the code, message and details triple used by API error
// envelopes. It mirrors api.APIError to avoid an import cycle.
type APIError struct {
	Code    string
	Message string
	Details map[string]interface{}
}

// APIError converts e for an error envelope. A single failure is reported
// inline; several are listed under "params".
func (e Errors) APIError() *APIError {
	switch len(e) {
	case 0:
		return &APIError{Code: ErrorCode, Message: "Validation failed"}
	case 1:
		return &APIError{
			Code:    ErrorCode,
			Message: e[0].Message,
			Details: map[string]interface{}{
				"param": e[0].Param,
				"rule":  e[0].Rule,
				"value": e[0].Value,
			},
		}
	}
	return &APIError{
		Code:    ErrorCode,
		Message: e.Error(),
		Details: map[string]interface{}{"params": []ParamError(e)},
	}
}

// Validator returns the shared validator with the query tag name function
// and the year and notblank rules registered.
func Validator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		validate.RegisterTagNameFunc(queryTagName)

		// Registration only fails for empty tags or nil funcs.
		_ = validate.RegisterValidation("year", isYear)
		_ = validate.RegisterValidation("notblank", isNotBlank)
	})
	return validate
}

// Struct validates a request struct. It returns nil when v is valid.
func Struct(v interface{}) Errors {
	err := Validator().Struct(v)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return Errors{{Param: "request", Rule: "struct", Message: err.Error()}}
	}

	out := make(Errors, len(fieldErrs))
	for i, fe := range fieldErrs {
		out[i] = ParamError{
			Param:   fe.Field(),
			Rule:    fe.Tag(),
			Limit:   fe.Param(),
			Value:   fe.Value(),
			Message: describe(fe),
		}
	}
	return out
}

// queryTagName reports fields by their query parameter name.
func queryTagName(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("query"), ",", 2)[0]
	if name == "" || name == "-" {
		return fld.Name
	}
	return name
}

// isYear accepts a four-digit release year.
func isYear(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	if len(s) != 4 {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func isNotBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}

// describe renders a client-facing message naming the query parameter.
func describe(fe validator.FieldError) string {
	name, limit := fe.Field(), fe.Param()
	unit := ""
	if fe.Kind() == reflect.String {
		unit = " characters"
	}

	switch fe.Tag() {
	case "required":
		return name + " is required"
	case "notblank":
		return name + " must not be blank"
	case "year":
		return name + " must be a four-digit year"
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", name, limit)
	case "min":
		return fmt.Sprintf("%s must be at least %s%s", name, limit, unit)
	case "max":
		return fmt.Sprintf("%s must be at most %s%s", name, limit, unit)
	case "gte":
		return fmt.Sprintf("%s must be %s or more", name, limit)
	case "lte":
		return fmt.Sprintf("%s must be %s or less", name, limit)
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", name, limit)
	case "lt":
		return fmt.Sprintf("%s must be less than %s", name, limit)
	default:
		return fmt.Sprintf("%s is invalid (%s)", name, fe.Tag())
	}
}
