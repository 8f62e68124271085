package validation

import (
	"errors"
	"strings"
	"testing"

	"github.com/wheelhouse/site-api/internal/core/domain"
)

type sample struct {
	Email string `validate:"required,email"`
	Name  string `validate:"required,min=2"`
	Kind  string `validate:"required,oneof=admin customer"`
}

func TestStructValid(t *testing.T) {
	if err := Struct(sample{Email: "a@b.com", Name: "ok", Kind: "admin"}); err != nil {
		t.Fatalf("expected nil, got %v", err)
	}
}

func TestStructCollectsEveryField(t *testing.T) {
	err := Struct(sample{Email: "nope", Name: "x", Kind: "other"})
	var ve *domain.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if len(ve.Fields) != 3 {
		t.Fatalf("expected 3 field messages, got %v", ve.Fields)
	}
}

func TestStructMessages(t *testing.T) {
	checks := map[sample]string{
		{Name: "ok", Kind: "admin"}:                       "email is required",
		{Email: "bad", Name: "ok", Kind: "admin"}:         "email must be a valid email",
		{Email: "a@b.com", Name: "x", Kind: "admin"}:      "name must be at least 2",
		{Email: "a@b.com", Name: "ok", Kind: "elsewhere"}: "kind must be one of: admin customer",
	}
	for in, want := range checks {
		err := Struct(in)
		var ve *domain.ValidationError
		if !errors.As(err, &ve) {
			t.Fatalf("expected ValidationError for %+v, got %v", in, err)
		}
		if joined := strings.Join(ve.Fields, "; "); !strings.Contains(joined, want) {
			t.Errorf("expected %q in %q", want, joined)
		}
	}
}
