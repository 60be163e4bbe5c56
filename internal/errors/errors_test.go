package errors

import (
	"errors"
	"testing"
)

func TestExitErrorUnwrap(t *testing.T) {
	sentinel := errors.New("boom")
	err := NewUserError(sentinel, "try --help")

	if !errors.Is(err, sentinel) {
		t.Error("errors.Is should find the wrapped sentinel")
	}

	var exitErr *ExitError
	if !errors.As(err, &exitErr) {
		t.Fatal("errors.As should find the ExitError")
	}
	if exitErr.Code != ExitUser {
		t.Errorf("code = %d, want %d", exitErr.Code, ExitUser)
	}
	if exitErr.Suggestion != "try --help" {
		t.Errorf("suggestion = %q", exitErr.Suggestion)
	}
}

func TestCodeFor(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil error", nil, ExitSuccess},
		{"plain error", errors.New("x"), ExitUser},
		{"user error", NewUserError(errors.New("x"), ""), ExitUser},
		{"system error", NewSystemError(errors.New("x"), ""), ExitSystem},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CodeFor(tt.err); got != tt.want {
				t.Errorf("CodeFor() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestExitErrorNilErr(t *testing.T) {
	err := &ExitError{Code: ExitSystem}
	if err.Error() != "exit code 2" {
		t.Errorf("Error() = %q", err.Error())
	}
}
