package dto

import (
	"errors"
	"fmt"
	"testing"
	"time"
)

func TestErrorResponse_Error(t *testing.T) {
	e := ErrorResponse{Message: "oops"}
	if e.Error() != "oops" {
		t.Fatalf("want 'oops' got %q", e.Error())
	}
	e2 := ErrorResponse{Message: "oops", ErrorDetails: "bad"}
	if e2.Error() != "oops: bad" {
		t.Fatalf("want 'oops: bad' got %q", e2.Error())
	}
}

func TestNewErrorResponse(t *testing.T) {
	e := NewErrorResponse("msg", nil)
	if e.Message != "msg" || e.ErrorDetails != "" {
		t.Fatalf("unexpected %+v", e)
	}
	if e.Timestamp.IsZero() || time.Since(e.Timestamp) > time.Second {
		t.Fatalf("timestamp not set")
	}

	e2 := NewErrorResponse("msg", errors.New("boom"))
	if e2.ErrorDetails != "boom" || e2.Message != "msg" {
		t.Fatalf("unexpected %+v", e2)
	}
}

func TestErrorResponse_TravelsAsError(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want bool
	}{
		{"direct", NewErrorResponse("unsupported ticker XXXX", nil), true},
		{"wrapped", fmt.Errorf("update: %w", NewErrorResponse("ticker is required", errors.New("empty"))), true},
		{"plain error", errors.New("boom"), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var resp ErrorResponse
			if got := errors.As(tc.err, &resp); got != tc.want {
				t.Fatalf("errors.As = %v, want %v", got, tc.want)
			}
			if tc.want && resp.Message == "" {
				t.Fatalf("message lost: %+v", resp)
			}
		})
	}
}
