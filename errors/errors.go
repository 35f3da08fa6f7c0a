package errors

import (
	"errors"
	"fmt"
	"runtime"
	"sort"
	"strings"
)

// ErrorType represents the type of error
type ErrorType string

const (
	// Input errors
	ErrorTypeImageNotFound ErrorType = "image_not_found"
	ErrorTypeInvalidSpec   ErrorType = "invalid_spec"
	ErrorTypeInvalidConfig ErrorType = "invalid_config"

	// Output errors
	ErrorTypeUnsupportedFormat ErrorType = "unsupported_format"
	ErrorTypeWriteFailed       ErrorType = "write_failed"

	// Advisory
	ErrorTypeAspectRatioMismatch ErrorType = "aspect_ratio_mismatch"

	ErrorTypeInternal ErrorType = "internal"
	ErrorTypeUnknown  ErrorType = "unknown"
)

// Process exit codes reported for each fatal error type.
const (
	ExitOK                = 0
	ExitGeneric           = 1
	ExitImageNotFound     = 2
	ExitInvalidSpec       = 3
	ExitUnsupportedFormat = 4
	ExitWriteFailed       = 5
	ExitInvalidConfig     = 6
)

// Sentinels for errors.Is. Matching is by ErrorType only.
var (
	ErrImageNotFound       = New(ErrorTypeImageNotFound, "image not found")
	ErrInvalidSpec         = New(ErrorTypeInvalidSpec, "invalid resize specification")
	ErrInvalidConfig       = New(ErrorTypeInvalidConfig, "invalid configuration")
	ErrUnsupportedFormat   = New(ErrorTypeUnsupportedFormat, "unsupported image format")
	ErrWriteFailed         = New(ErrorTypeWriteFailed, "write failed")
	ErrAspectRatioMismatch = New(ErrorTypeAspectRatioMismatch, "aspect ratio mismatch")
)

// AppError represents a structured application error
type AppError struct {
	Type       ErrorType              `json:"type"`
	Code       string                 `json:"code"`
	Message    string                 `json:"message"`
	Details    map[string]interface{} `json:"details,omitempty"`
	InnerError error                  `json:"-"`
	Stack      []string               `json:"-"`
	ExitCode   int                    `json:"-"`
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.InnerError != nil {
		return e.InnerError.Error()
	}
	return string(e.Type)
}

// Unwrap returns the inner error
func (e *AppError) Unwrap() error {
	return e.InnerError
}

// WithMessage adds a message to the error
func (e *AppError) WithMessage(msg string) *AppError {
	e.Message = msg
	return e
}

// WithDetail adds a detail to the error
func (e *AppError) WithDetail(key string, value interface{}) *AppError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// WithInnerError sets the inner error
func (e *AppError) WithInnerError(err error) *AppError {
	e.InnerError = err
	return e
}

// WithStack captures the call stack
func (e *AppError) WithStack() *AppError {
	e.Stack = captureStack(3)
	return e
}

// Fatal reports whether the error must abort the run.
func (e *AppError) Fatal() bool {
	return e.Type != ErrorTypeAspectRatioMismatch
}

// Is checks if this error is of a specific type
func (e *AppError) Is(target error) bool {
	if targetApp, ok := target.(*AppError); ok {
		return e.Type == targetApp.Type
	}
	return false
}

// New creates a new AppError
func New(errType ErrorType, message string) *AppError {
	return &AppError{
		Type:     errType,
		Message:  message,
		Code:     string(errType),
		ExitCode: exitCodeFor(errType),
	}
}

// FromError converts a standard error to AppError
func FromError(err error) *AppError {
	if err == nil {
		return nil
	}

	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}

	return &AppError{
		Type:       ErrorTypeUnknown,
		Code:       string(ErrorTypeUnknown),
		Message:    err.Error(),
		InnerError: err,
		ExitCode:   ExitGeneric,
	}
}

// WrapWithType wraps an error with a specific type
func WrapWithType(err error, errType ErrorType, message string) *AppError {
	return New(errType, message).WithInnerError(err)
}

// NewImageNotFound reports an input path that is missing or not a decodable image.
func NewImageNotFound(path string, cause error) *AppError {
	return WrapWithType(cause, ErrorTypeImageNotFound, fmt.Sprintf("cannot open image: %s", path)).
		WithDetail("path", path)
}

// NewInvalidSpec reports resize or scale parameters that cannot produce a target size.
func NewInvalidSpec(message string) *AppError {
	return New(ErrorTypeInvalidSpec, message)
}

func NewInvalidConfig(message string, cause error) *AppError {
	return WrapWithType(cause, ErrorTypeInvalidConfig, message)
}

func NewUnsupportedFormat(path, ext string) *AppError {
	return New(ErrorTypeUnsupportedFormat, fmt.Sprintf("unsupported output format %q: %s", ext, path)).
		WithDetail("path", path).
		WithDetail("extension", ext)
}

func NewWriteFailed(path string, cause error) *AppError {
	return WrapWithType(cause, ErrorTypeWriteFailed, fmt.Sprintf("cannot write image: %s", path)).
		WithDetail("path", path)
}

// NewAspectRatioMismatch is advisory; callers log it and continue.
func NewAspectRatioMismatch(original, target string) *AppError {
	return New(ErrorTypeAspectRatioMismatch,
		fmt.Sprintf("aspect ratio changes from %s to %s", original, target)).
		WithDetail("original", original).
		WithDetail("target", target)
}

// ExitCode maps an error to the process exit code. nil and advisory errors map to ExitOK.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	appErr := FromError(err)
	if !appErr.Fatal() {
		return ExitOK
	}
	if appErr.ExitCode != 0 {
		return appErr.ExitCode
	}
	return ExitGeneric
}

func exitCodeFor(errType ErrorType) int {
	switch errType {
	case ErrorTypeImageNotFound:
		return ExitImageNotFound
	case ErrorTypeInvalidSpec:
		return ExitInvalidSpec
	case ErrorTypeUnsupportedFormat:
		return ExitUnsupportedFormat
	case ErrorTypeWriteFailed:
		return ExitWriteFailed
	case ErrorTypeInvalidConfig:
		return ExitInvalidConfig
	case ErrorTypeAspectRatioMismatch:
		return ExitOK
	default:
		return ExitGeneric
	}
}

// ErrorFormatter formats errors for display
type ErrorFormatter struct {
	showStack bool
	showInner bool
}

// NewErrorFormatter creates a new error formatter
func NewErrorFormatter(showStack bool, showInner bool) *ErrorFormatter {
	return &ErrorFormatter{
		showStack: showStack,
		showInner: showInner,
	}
}

// Format formats an error as a string
func (f *ErrorFormatter) Format(err error) string {
	if err == nil {
		return ""
	}

	appErr := FromError(err)

	parts := []string{appErr.Error()}

	if f.showInner {
		parts[0] = fmt.Sprintf("[%s] %s", appErr.Type, appErr.Error())
		keys := make([]string, 0, len(appErr.Details))
		for k := range appErr.Details {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			parts = append(parts, fmt.Sprintf("%s=%v", k, appErr.Details[k]))
		}
		if appErr.InnerError != nil {
			parts = append(parts, "caused_by: "+appErr.InnerError.Error())
		}
	}

	if f.showStack && len(appErr.Stack) > 0 {
		parts = append(parts, "stack:")
		for _, s := range appErr.Stack {
			parts = append(parts, "  "+s)
		}
	}

	return strings.Join(parts, " | ")
}

// ErrorRecoverWithHandler recovers from panics and handles them
func ErrorRecoverWithHandler(handler func(*AppError)) {
	if r := recover(); r != nil {
		var appErr *AppError
		switch v := r.(type) {
		case error:
			appErr = WrapWithType(v, ErrorTypeInternal, "panic recovered: "+v.Error())
		case string:
			appErr = New(ErrorTypeInternal, v)
		default:
			appErr = New(ErrorTypeInternal, fmt.Sprintf("%v", v))
		}
		appErr = appErr.WithStack()
		handler(appErr)
	}
}

func captureStack(skip int) []string {
	pcs := make([]uintptr, 32)
	n := runtime.Callers(skip, pcs)
	frames := runtime.CallersFrames(pcs[:n])

	var stack []string
	for {
		frame, more := frames.Next()
		stack = append(stack, fmt.Sprintf("%s:%d %s", frame.File, frame.Line, frame.Function))
		if !more {
			break
		}
	}
	return stack
}
