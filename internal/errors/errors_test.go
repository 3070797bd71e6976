package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"testing"
)

func TestError_Is(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		target error
		want   bool
	}{
		{"same code", New(CodeMissingMetadata, "missing key"), New(CodeMissingMetadata, "other message"), true},
		{"different code", New(CodeMissingMetadata, "missing key"), New(CodeTooManyTags, "too many"), false},
		{"wrapped cause", Wrap(CodeInvalidRecord, "decode failed", fmt.Errorf("eof")), New(CodeInvalidRecord, ""), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := stderrors.Is(tt.err, tt.target); got != tt.want {
				t.Errorf("errors.Is() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestError_Unwrap(t *testing.T) {
	cause := fmt.Errorf("underlying")
	err := Wrap(CodeDescriptionParseFailed, "grammar failed", cause)

	if got := stderrors.Unwrap(err); got != cause {
		t.Errorf("Unwrap() = %v, want %v", got, cause)
	}
}

func TestCodeOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Code
	}{
		{"direct", New(CodeNotImplemented, "nope"), CodeNotImplemented},
		{"wrapped in fmt", fmt.Errorf("outer: %w", New(CodeTooManyChildren, "leftovers")), CodeTooManyChildren},
		{"plain error", fmt.Errorf("plain"), CodeUnknown},
		{"nil", nil, CodeUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CodeOf(tt.err); got != tt.want {
				t.Errorf("CodeOf() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCode_HTTPStatus(t *testing.T) {
	tests := []struct {
		code Code
		want int
	}{
		{CodeInvalidRecord, http.StatusBadRequest},
		{CodeMissingMetadata, http.StatusUnprocessableEntity},
		{CodeDescriptionNotFullyParsed, http.StatusUnprocessableEntity},
		{CodeNotImplemented, http.StatusNotImplemented},
		{CodeNotFound, http.StatusNotFound},
		{CodeUnknown, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(string(tt.code), func(t *testing.T) {
			if got := tt.code.HTTPStatus(); got != tt.want {
				t.Errorf("Code(%q).HTTPStatus() = %d, want %d", tt.code, got, tt.want)
			}
		})
	}
}
