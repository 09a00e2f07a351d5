package secondary

import "context"

// Opener defines the secondary port for showing generated files to the user.
type Opener interface {
	// Open shows the file, e.g. in an editor window. Implementations that cannot open
	// anything report the path instead.
	Open(ctx context.Context, path string) error
}
