package command

import (
	"errors"
	"testing"
)

func TestKeyRoundTrip(t *testing.T) {
	key, err := NewKey("123", "456", "compliment")
	if err != nil {
		t.Fatalf("NewKey returned error: %v", err)
	}
	token := key.String()
	if token != "123-456-compliment" {
		t.Fatalf("String = %q", token)
	}

	parsed, err := ParseKey(token)
	if err != nil {
		t.Fatalf("ParseKey returned error: %v", err)
	}
	if parsed != key {
		t.Fatalf("round trip mismatch: %+v vs %+v", parsed, key)
	}
}

func TestNewKeyRejectsDelimiterInFields(t *testing.T) {
	if _, err := NewKey("123", "456", "my-command"); !errors.Is(err, ErrMalformedKey) {
		t.Fatalf("expected ErrMalformedKey for name with delimiter, got %v", err)
	}
	if _, err := NewKey("", "456", "name"); !errors.Is(err, ErrMalformedKey) {
		t.Fatalf("expected ErrMalformedKey for empty guild id, got %v", err)
	}
}

func TestParseKeyRejectsWrongDelimiterCount(t *testing.T) {
	for _, token := range []string{"", "123", "123-456", "123-456-name-extra", "--"} {
		if _, err := ParseKey(token); !errors.Is(err, ErrMalformedKey) {
			t.Errorf("ParseKey(%q): expected ErrMalformedKey, got %v", token, err)
		}
	}
}
