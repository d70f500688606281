package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"testing"
)

func TestErrorIsMatchesByCode(t *testing.T) {
	err := New(CodeWikiPageNotFound, "page missing")
	target := New(CodeWikiPageNotFound, "different message")

	if !stderrors.Is(err, target) {
		t.Error("expected errors with the same code to match")
	}

	other := New(CodeWikiSlugTaken, "slug taken")
	if stderrors.Is(err, other) {
		t.Error("expected errors with different codes not to match")
	}
}

func TestWrapPreservesCause(t *testing.T) {
	cause := fmt.Errorf("disk full")
	err := Wrap(CodeUnknown, "save failed", cause)

	if !stderrors.Is(err, cause) {
		t.Error("expected wrapped cause to be reachable via errors.Is")
	}
}

func TestCodeOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Code
	}{
		{"domain error", New(CodeRateLimited, "slow down"), CodeRateLimited},
		{"wrapped domain error", fmt.Errorf("outer: %w", New(CodeXPInsufficient, "broke")), CodeXPInsufficient},
		{"plain error", fmt.Errorf("plain"), CodeUnknown},
		{"nil", nil, CodeUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CodeOf(tt.err); got != tt.want {
				t.Errorf("CodeOf() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		code Code
		want int
	}{
		{CodeWikiPageNotFound, http.StatusNotFound},
		{CodeWikiSlugTaken, http.StatusConflict},
		{CodeAccountBadPassword, http.StatusUnauthorized},
		{CodeWikiForbidden, http.StatusForbidden},
		{CodeRateLimited, http.StatusTooManyRequests},
		{CodeUnknown, http.StatusInternalServerError},
		{CodeDiceEmptyPool, http.StatusBadRequest},
	}

	for _, tt := range tests {
		if got := tt.code.HTTPStatus(); got != tt.want {
			t.Errorf("%s.HTTPStatus() = %d, want %d", tt.code, got, tt.want)
		}
	}
}
