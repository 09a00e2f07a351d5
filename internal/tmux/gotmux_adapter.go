// Package tmux opens generated files for the user, in a new tmux window when possible.
package tmux

import (
	"context"
	"fmt"
	"io"
	"path/filepath"

	"github.com/GianlucaP106/gotmux/gotmux"
	"github.com/cockroachdb/errors"

	"github.com/example/ngfc/internal/ports/secondary"
)

// GotmuxOpener implements secondary.Opener. Inside tmux it adds a window to the current
// session running the editor on the file; elsewhere it prints the path to out.
type GotmuxOpener struct {
	editor string
	out    io.Writer
	inTmux func() bool
}

// NewGotmuxOpener creates an opener using editor (Editor() when empty).
func NewGotmuxOpener(editor string, out io.Writer) *GotmuxOpener {
	if editor == "" {
		editor = Editor()
	}
	return &GotmuxOpener{editor: editor, out: out, inTmux: InTmux}
}

// Open shows path to the user.
func (o *GotmuxOpener) Open(ctx context.Context, path string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if !o.inTmux() {
		_, err := fmt.Fprintf(o.out, "Open %s\n", path)
		return err
	}

	tmux, err := gotmux.DefaultTmux()
	if err != nil {
		return errors.Wrap(err, "failed to create tmux client")
	}

	name, err := CurrentSessionName()
	if err != nil {
		return err
	}
	session, err := findSession(tmux, name)
	if err != nil {
		return err
	}

	// NewWindowOptions has no shell command, so the first pane is respawned with the editor.
	window, err := session.NewWindow(&gotmux.NewWindowOptions{
		WindowName:     filepath.Base(path),
		StartDirectory: filepath.Dir(path),
	})
	if err != nil {
		return errors.Wrapf(err, "failed to create window for %s", path)
	}

	panes, err := window.ListPanes()
	if err != nil {
		return errors.Wrap(err, "failed to list panes")
	}
	if len(panes) == 0 {
		return errors.New("new window has no panes")
	}

	return RespawnPane(panes[0].Id, EditorCommand(o.editor, path))
}

func findSession(tmux *gotmux.Tmux, name string) (*gotmux.Session, error) {
	sessions, err := tmux.ListSessions()
	if err != nil {
		return nil, errors.Wrap(err, "failed to list sessions")
	}
	for _, s := range sessions {
		if s.Name == name {
			return s, nil
		}
	}
	return nil, errors.Newf("tmux session %s not found", name)
}

// Ensure GotmuxOpener implements the interface
var _ secondary.Opener = (*GotmuxOpener)(nil)
