package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeBackendInit, "no tty")

	if err.Code != ErrCodeBackendInit {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeBackendInit)
	}
	if err.Message != "no tty" {
		t.Errorf("Message = %q, want %q", err.Message, "no tty")
	}
	if err.Underlying != nil {
		t.Error("Underlying should be nil for New error")
	}
	if len(err.Stack) == 0 {
		t.Error("Stack should be captured")
	}
	if !strings.Contains(err.Stack[0].Function, "TestNew") {
		t.Errorf("first frame = %s, want the caller", err.Stack[0].Function)
	}
}

func TestNewf(t *testing.T) {
	err := Newf(ErrCodeConfigInvalid, "poll interval %s too small", "1ms")
	if err.Message != "poll interval 1ms too small" {
		t.Errorf("Message = %q", err.Message)
	}
}

func TestWrap(t *testing.T) {
	underlying := errors.New("permission denied")
	err := Wrap(underlying, ErrCodeConfigLoad, "read config")

	if err.Underlying != underlying {
		t.Error("Underlying should be preserved")
	}
	if !errors.Is(err, underlying) {
		t.Error("errors.Is should see the underlying error")
	}
	if got := err.Error(); got != "[CONFIG_LOAD] read config: permission denied" {
		t.Errorf("Error() = %q", got)
	}
}

func TestWrap_Nil(t *testing.T) {
	if err := Wrap(nil, ErrCodeInternal, "test"); err != nil {
		t.Error("Wrap of nil should return nil")
	}
}

func TestErrorContextIsSorted(t *testing.T) {
	err := New(ErrCodeInvariant, "missing page").
		WithContext("page", "p1").
		WithContext("index", 3)

	if got := err.Error(); got != "[INVARIANT] missing page {index: 3, page: p1}" {
		t.Errorf("Error() = %q", got)
	}
}

func TestWithRemediation(t *testing.T) {
	tips := []string{"set ui.poll_interval"}
	err := New(ErrCodeConfigInvalid, "bad").WithRemediation(tips...)
	tips[0] = "changed"

	if len(err.Remediation) != 1 || err.Remediation[0] != "set ui.poll_interval" {
		t.Errorf("Remediation = %v", err.Remediation)
	}
	if err.WithRemediation() != err {
		t.Error("empty remediation should be a no-op")
	}
}

func TestInvariantPanics(t *testing.T) {
	defer func() {
		r := recover()
		err, ok := r.(*Error)
		if !ok {
			t.Fatalf("recovered %T, want *Error", r)
		}
		if err.Code != ErrCodeInvariant {
			t.Errorf("Code = %v", err.Code)
		}
		if err.Context["page"] != "p1" {
			t.Errorf("Context = %v", err.Context)
		}
	}()

	Invariant("no context for page", "page", "p1")
	t.Fatal("Invariant should panic")
}

func TestCodeHelpers(t *testing.T) {
	base := New(ErrCodeConfigParse, "bad yaml")
	wrapped := fmt.Errorf("loading: %w", base)

	if !IsCode(wrapped, ErrCodeConfigParse) {
		t.Error("IsCode should look through wrapping")
	}
	if IsCode(wrapped, ErrCodeConfigLoad) {
		t.Error("IsCode matched the wrong code")
	}
	if IsCode(nil, ErrCodeConfigParse) {
		t.Error("IsCode(nil) should be false")
	}

	if got := GetCode(wrapped); got != ErrCodeConfigParse {
		t.Errorf("GetCode = %v", got)
	}
	if got := GetCode(errors.New("plain")); got != ErrCodeInternal {
		t.Errorf("GetCode(plain) = %v", got)
	}
	if got := GetCode(nil); got != "" {
		t.Errorf("GetCode(nil) = %v", got)
	}

	if e, ok := As(wrapped); !ok || e != base {
		t.Error("As should return the coded error")
	}
}

func TestStackTrace(t *testing.T) {
	trace := New(ErrCodeInternal, "x").StackTrace()
	if !strings.HasPrefix(trace, "Stack trace:\n  1. ") {
		t.Errorf("StackTrace() = %q", trace)
	}
	if !strings.Contains(trace, "types_test.go") {
		t.Error("StackTrace should include the caller's file")
	}
}
