// Package effects defines effect types as data structures representing I/O operations.
// Planners in the core return effects; the application layer executes them.
package effects

// Effect is the base interface for all effects.
type Effect interface {
	// EffectType returns a string identifier for the effect type.
	EffectType() string
}

// File operations.
const (
	OpMkdir = "mkdir"
	OpWrite = "write"
)

// FileEffect represents a file system operation. Both operations create new entries
// only; an existing path makes the effect fail.
type FileEffect struct {
	Operation string // OpMkdir or OpWrite
	Path      string
	Content   []byte // For write operations
	Mode      uint32 // File permissions
}

func (e FileEffect) EffectType() string { return "file" }

// PersistEffect represents a persistence operation.
type PersistEffect struct {
	Entity    string // e.g., "generation"
	Operation string // e.g., "create"
	Data      any    // The entity data
}

func (e PersistEffect) EffectType() string { return "persist" }

// OpenEffect asks for a file to be shown to the user.
type OpenEffect struct {
	Path string
}

func (e OpenEffect) EffectType() string { return "open" }
