package config

import (
	"fmt"
	"strings"

	validatorV10 "github.com/go-playground/validator/v10"
)

// fieldName turns "Settings.Encode.JPEGQuality" into "encode.JPEGQuality".
func fieldName(fe validatorV10.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		ns = ns[i+1:]
	}
	if i := strings.Index(ns, "."); i >= 0 {
		return strings.ToLower(ns[:i]) + ns[i:]
	}
	return ns
}

func getValidationMessage(fe validatorV10.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "gte":
		return fmt.Sprintf("must be greater than or equal to %s", fe.Param())
	case "lte":
		return fmt.Sprintf("must be less than or equal to %s", fe.Param())
	case "oneof":
		return fmt.Sprintf("must be one of: %s (got %v)", fe.Param(), fe.Value())
	default:
		return fmt.Sprintf("failed validation for tag '%s'", fe.Tag())
	}
}
