package secondary

import "context"

// BuiltinPrefix marks template locations served from the embedded template set.
const BuiltinPrefix = "builtin:"

// TemplateSource defines the secondary port for loading test templates.
type TemplateSource interface {
	// Load returns the template at location, either "builtin:<name>" or a
	// workspace-relative path.
	Load(ctx context.Context, location string) (string, error)
}
