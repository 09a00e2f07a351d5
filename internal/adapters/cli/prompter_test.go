package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/cockroachdb/errors"

	"github.com/example/ngfc/internal/core/naming"
	"github.com/example/ngfc/internal/ports/primary"
)

func validateComponent(name string) string {
	return naming.ValidateClassName(name, "TestComponent FooBarComponent")
}

func TestPromptName_RepromptsUntilValid(t *testing.T) {
	var out bytes.Buffer
	p := NewPrompter(strings.NewReader("fooBar\nFooBarComponent\n"), &out, true)

	name, err := p.PromptName(context.Background(), "Name of component class", "NewComponent", validateComponent)
	if err != nil {
		t.Fatalf("PromptName failed: %v", err)
	}
	if name != "FooBarComponent" {
		t.Errorf("expected FooBarComponent, got %s", name)
	}
	if !strings.Contains(out.String(), "Name should be upper camel case eg TestComponent FooBarComponent") {
		t.Errorf("expected validation message, got: %s", out.String())
	}
	if strings.Count(out.String(), "Name of component class [NewComponent]: ") != 2 {
		t.Errorf("expected two prompts, got: %s", out.String())
	}
}

func TestPromptName_EmptyUsesDefault(t *testing.T) {
	p := NewPrompter(strings.NewReader("\n"), &bytes.Buffer{}, true)

	name, err := p.PromptName(context.Background(), "Name", "NewComponent", validateComponent)
	if err != nil {
		t.Fatalf("PromptName failed: %v", err)
	}
	if name != "NewComponent" {
		t.Errorf("expected default, got %s", name)
	}
}

func TestPromptName_Dismissed(t *testing.T) {
	for _, input := range []string{"q\n", "", "\n"} {
		p := NewPrompter(strings.NewReader(input), &bytes.Buffer{}, true)
		_, err := p.PromptName(context.Background(), "Name", "", validateComponent)
		if !errors.Is(err, primary.ErrPromptDismissed) {
			t.Errorf("input %q: expected ErrPromptDismissed, got %v", input, err)
		}
	}
}

func TestPromptName_LastLineWithoutNewline(t *testing.T) {
	p := NewPrompter(strings.NewReader("FooComponent"), &bytes.Buffer{}, true)

	name, err := p.PromptName(context.Background(), "Name", "", validateComponent)
	if err != nil {
		t.Fatalf("PromptName failed: %v", err)
	}
	if name != "FooComponent" {
		t.Errorf("expected FooComponent, got %s", name)
	}
}

func TestPrompter_NonInteractive(t *testing.T) {
	p := NewPrompter(strings.NewReader("FooComponent\n1\n"), &bytes.Buffer{}, false)

	_, err := p.PromptName(context.Background(), "Name", "", validateComponent)
	if !errors.Is(err, primary.ErrPromptDismissed) {
		t.Fatalf("expected ErrPromptDismissed, got %v", err)
	}
	if hints := errors.GetAllHints(err); len(hints) == 0 || !strings.Contains(hints[0], "--name") {
		t.Errorf("expected --name hint, got %v", hints)
	}

	_, err = p.PickOne(context.Background(), "Add to module", []string{"app.module.ts", "Do not add to a module"})
	if !errors.Is(err, primary.ErrPromptDismissed) {
		t.Fatalf("expected ErrPromptDismissed, got %v", err)
	}
}

func TestPickOne(t *testing.T) {
	var out bytes.Buffer
	p := NewPrompter(strings.NewReader("7\nabc\n2\n"), &out, true)

	choice, err := p.PickOne(context.Background(), "Add to module", []string{"app.module.ts", "Do not add to a module"})
	if err != nil {
		t.Fatalf("PickOne failed: %v", err)
	}
	if choice != 1 {
		t.Errorf("expected index 1, got %d", choice)
	}
	output := out.String()
	if !strings.Contains(output, "  1) app.module.ts\n") || !strings.Contains(output, "  2) Do not add to a module\n") {
		t.Errorf("expected numbered options, got: %s", output)
	}
	if strings.Count(output, "Enter a number between 1 and 2") != 2 {
		t.Errorf("expected two retries, got: %s", output)
	}
}

func TestPickOne_Dismissed(t *testing.T) {
	p := NewPrompter(strings.NewReader("q\n"), &bytes.Buffer{}, true)

	_, err := p.PickOne(context.Background(), "Add to module", []string{"a.module.ts"})
	if !errors.Is(err, primary.ErrPromptDismissed) {
		t.Fatalf("expected ErrPromptDismissed, got %v", err)
	}
}

func TestPickOne_NoOptions(t *testing.T) {
	p := NewPrompter(strings.NewReader("1\n"), &bytes.Buffer{}, true)

	if _, err := p.PickOne(context.Background(), "Add to module", nil); err == nil {
		t.Fatal("expected error")
	}
}
