package tmux

import (
	"os"
	"os/exec"
	"strings"

	"github.com/cockroachdb/errors"
)

// InTmux reports whether the process runs inside a tmux client.
func InTmux() bool {
	return os.Getenv("TMUX") != ""
}

// CurrentSessionName returns the name of the session the process runs in.
func CurrentSessionName() (string, error) {
	out, err := exec.Command("tmux", "display-message", "-p", "#S").Output()
	if err != nil {
		return "", errors.Wrap(err, "failed to read current tmux session")
	}
	name := strings.TrimSpace(string(out))
	if name == "" {
		return "", errors.New("tmux reported an empty session name")
	}
	return name, nil
}

// RespawnPane replaces the process of a pane with command.
func RespawnPane(paneID, command string) error {
	if err := exec.Command("tmux", "respawn-pane", "-t", paneID, "-k", command).Run(); err != nil {
		return errors.Wrapf(err, "failed to respawn pane %s", paneID)
	}
	return nil
}

// Editor returns the user's editor: $VISUAL, then $EDITOR, then vi.
func Editor() string {
	for _, key := range []string{"VISUAL", "EDITOR"} {
		if v := strings.TrimSpace(os.Getenv(key)); v != "" {
			return v
		}
	}
	return "vi"
}

// EditorCommand returns the shell command opening path in editor.
func EditorCommand(editor, path string) string {
	return editor + " " + shellQuote(path)
}

func shellQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}
