package tmux

import (
	"bytes"
	"context"
	"testing"
)

func TestGotmuxOpener_OutsideTmux(t *testing.T) {
	var out bytes.Buffer
	opener := NewGotmuxOpener("vim", &out)
	opener.inTmux = func() bool { return false }

	if err := opener.Open(context.Background(), "/work/src/foo.component.ts"); err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	if got := out.String(); got != "Open /work/src/foo.component.ts\n" {
		t.Errorf("output = %q", got)
	}
}

func TestGotmuxOpener_CancelledContext(t *testing.T) {
	var out bytes.Buffer
	opener := NewGotmuxOpener("vim", &out)
	opener.inTmux = func() bool { return false }

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := opener.Open(ctx, "/work/a.ts"); err == nil {
		t.Error("expected error for cancelled context")
	}
	if out.Len() != 0 {
		t.Errorf("expected no output, got %q", out.String())
	}
}

func TestEditor(t *testing.T) {
	t.Setenv("VISUAL", "")
	t.Setenv("EDITOR", "nano")
	if got := Editor(); got != "nano" {
		t.Errorf("Editor() = %q, want nano", got)
	}

	t.Setenv("VISUAL", "code -w")
	if got := Editor(); got != "code -w" {
		t.Errorf("Editor() = %q, want VISUAL to win", got)
	}

	t.Setenv("VISUAL", "")
	t.Setenv("EDITOR", "")
	if got := Editor(); got != "vi" {
		t.Errorf("Editor() = %q, want vi", got)
	}
}

func TestEditorCommand(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"/work/a.ts", "vim '/work/a.ts'"},
		{"/work/my dir/a.ts", "vim '/work/my dir/a.ts'"},
		{"/work/it's.ts", `vim '/work/it'\''s.ts'`},
	}
	for _, tt := range tests {
		if got := EditorCommand("vim", tt.path); got != tt.want {
			t.Errorf("EditorCommand(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}

func TestInTmux(t *testing.T) {
	t.Setenv("TMUX", "")
	if InTmux() {
		t.Error("expected InTmux false with empty TMUX")
	}
	t.Setenv("TMUX", "/tmp/tmux-1000/default,123,0")
	if !InTmux() {
		t.Error("expected InTmux true")
	}
}
