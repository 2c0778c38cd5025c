package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"testing"
)

func TestIsMatchesByCode(t *testing.T) {
	err := New(CodeNotFound, "record no longer exists")
	if !stderrors.Is(err, New(CodeNotFound, "")) {
		t.Fatal("errors with same code should match")
	}
	if stderrors.Is(err, New(CodeForbidden, "")) {
		t.Fatal("errors with different codes should not match")
	}
}

func TestCodeOfTraversesWrappedChain(t *testing.T) {
	cause := stderrors.New("unique constraint failed")
	err := fmt.Errorf("update patient: %w", Wrap(CodeConstraintViolation, "CNIC already exists!", cause))
	if got := CodeOf(err); got != CodeConstraintViolation {
		t.Fatalf("CodeOf = %v, want %v", got, CodeConstraintViolation)
	}
	if got := CodeOf(cause); got != CodeUnknown {
		t.Fatalf("CodeOf(plain) = %v, want %v", got, CodeUnknown)
	}
	if got := CodeOf(nil); got != CodeUnknown {
		t.Fatalf("CodeOf(nil) = %v, want %v", got, CodeUnknown)
	}
}

func TestUnwrapExposesCause(t *testing.T) {
	cause := stderrors.New("boom")
	err := Wrap(CodeUnknown, "wrapped", cause)
	if !stderrors.Is(err, cause) {
		t.Fatal("wrapped cause not reachable via errors.Is")
	}
}

func TestHTTPStatusMapping(t *testing.T) {
	tests := []struct {
		code Code
		want int
	}{
		{CodeValidation, http.StatusBadRequest},
		{CodeCNICFormat, http.StatusBadRequest},
		{CodeNoSelection, http.StatusBadRequest},
		{CodeConfirmationRequired, http.StatusBadRequest},
		{CodeConstraintViolation, http.StatusConflict},
		{CodeNotFound, http.StatusNotFound},
		{CodeInvalidCredentials, http.StatusUnauthorized},
		{CodeForbidden, http.StatusForbidden},
		{CodeUnknown, http.StatusInternalServerError},
	}
	for _, tc := range tests {
		if got := tc.code.HTTPStatus(); got != tc.want {
			t.Fatalf("%s status = %d, want %d", tc.code, got, tc.want)
		}
	}
}
