package command

import (
	"errors"
	"testing"
)

func TestParseSyntaxExtractsOptionsInOrder(t *testing.T) {
	def, err := ParseSyntax("compliment", "Say something nice", "{target:Who to compliment} {compliment:What to say}")
	if err != nil {
		t.Fatalf("ParseSyntax returned error: %v", err)
	}
	if def.Name != "compliment" || def.Description != "Say something nice" {
		t.Fatalf("unexpected definition: %+v", def)
	}
	if len(def.Options) != 2 {
		t.Fatalf("expected 2 options, got %d", len(def.Options))
	}
	if def.Options[0].Name != "target" || def.Options[0].Description != "Who to compliment" {
		t.Fatalf("unexpected first option: %+v", def.Options[0])
	}
	if def.Options[1].Name != "compliment" || def.Options[1].Description != "What to say" {
		t.Fatalf("unexpected second option: %+v", def.Options[1])
	}
}

func TestParseSyntaxIgnoresTextOutsideGroups(t *testing.T) {
	def, err := ParseSyntax("greet", "Greets someone", "junk before {who:Person to greet} junk after")
	if err != nil {
		t.Fatalf("ParseSyntax returned error: %v", err)
	}
	if len(def.Options) != 1 || def.Options[0].Name != "who" {
		t.Fatalf("expected single option 'who', got %+v", def.Options)
	}
}

func TestParseSyntaxNoOptions(t *testing.T) {
	def, err := ParseSyntax("ping", "Pong", "")
	if err != nil {
		t.Fatalf("ParseSyntax returned error: %v", err)
	}
	if len(def.Options) != 0 {
		t.Fatalf("expected no options, got %+v", def.Options)
	}
}

func TestParseSyntaxDuplicateOptionName(t *testing.T) {
	_, err := ParseSyntax("dup", "Duplicate options", "{a:first} {a:second}")
	if !errors.Is(err, ErrDuplicateOptionName) {
		t.Fatalf("expected ErrDuplicateOptionName, got %v", err)
	}
}

func TestParseSyntaxDuplicateIsCaseSensitive(t *testing.T) {
	def, err := ParseSyntax("case", "Case sensitivity", "{a:lower} {A:upper}")
	if err != nil {
		t.Fatalf("ParseSyntax returned error: %v", err)
	}
	if len(def.Options) != 2 {
		t.Fatalf("expected 2 options, got %d", len(def.Options))
	}
}

func TestValidName(t *testing.T) {
	valid := []string{"compliment", "my_cmd", "cmd123", "ñame", "คำสั่ง", "आदेश"}
	for _, name := range valid {
		if !ValidName(name) {
			t.Errorf("expected %q to be valid", name)
		}
	}

	invalid := []string{
		"",
		"has space",
		"slash/name",
		"curly{name",
		"my-cmd", // contains the key delimiter
		"abcdefghijklmnopqrstuvwxyz0123456789", // over 32 chars
	}
	for _, name := range invalid {
		if ValidName(name) {
			t.Errorf("expected %q to be invalid", name)
		}
	}
}

func TestSyntaxRoundTrip(t *testing.T) {
	opts := []Option{
		{Name: "target", Description: "Target of the compliment"},
		{Name: "compliment", Description: "Something nice"},
	}
	got := Syntax("compliment", opts)
	want := "/compliment {target:Target of the compliment} {compliment:Something nice}"
	if got != want {
		t.Fatalf("Syntax = %q, want %q", got, want)
	}

	def, err := ParseSyntax("compliment", "d", "{target:Target of the compliment} {compliment:Something nice}")
	if err != nil {
		t.Fatalf("ParseSyntax returned error: %v", err)
	}
	if len(def.Options) != 2 || def.Options[0] != opts[0] || def.Options[1] != opts[1] {
		t.Fatalf("round trip mismatch: %+v", def.Options)
	}
}
