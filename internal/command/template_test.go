package command

import "testing"

func TestRenderNoPlaceholdersIsIdentity(t *testing.T) {
	ctx := RenderContext{SenderDisplayName: "Rin", Options: map[string]string{"x": "y"}}
	template := "just some plain text with no tokens"
	if got := Render(template, ctx); got != template {
		t.Fatalf("Render = %q, want unchanged input", got)
	}
}

func TestRenderSenderAndOption(t *testing.T) {
	got := Render("{sender.name} says hi to {options.target}", RenderContext{
		SenderDisplayName: "Rin",
		Options:           map[string]string{"target": "Sam"},
	})
	if got != "Rin says hi to Sam" {
		t.Fatalf("Render = %q", got)
	}
}

func TestRenderMissingOptionStaysLiteral(t *testing.T) {
	got := Render("hi {options.x}", RenderContext{
		SenderDisplayName: "A",
		Options:           map[string]string{},
	})
	if got != "hi {options.x}" {
		t.Fatalf("Render = %q, want placeholder untouched", got)
	}
}

func TestRenderReplacesAllOccurrences(t *testing.T) {
	got := Render("{options.who} and {options.who} again, {sender.name} and {sender.name}", RenderContext{
		SenderDisplayName: "Rin",
		Options:           map[string]string{"who": "Sam"},
	})
	if got != "Sam and Sam again, Rin and Rin" {
		t.Fatalf("Render = %q", got)
	}
}

func TestRenderLeavesUnknownBracesAlone(t *testing.T) {
	got := Render("{not.a.placeholder} {options.}", RenderContext{SenderDisplayName: "A"})
	if got != "{not.a.placeholder} {options.}" {
		t.Fatalf("Render = %q", got)
	}
}

func TestRenderDeterministic(t *testing.T) {
	ctx := RenderContext{SenderDisplayName: "Rin", Options: map[string]string{"a": "1", "b": "2"}}
	template := "{options.a}-{options.b}-{sender.name}"
	first := Render(template, ctx)
	for i := 0; i < 10; i++ {
		if got := Render(template, ctx); got != first {
			t.Fatalf("Render not deterministic: %q vs %q", got, first)
		}
	}
}
