// Package scaffold provides the templates for generated Angular artifacts.
package scaffold

import (
	"embed"
)

//go:embed artifact/*.tmpl
var artifactTemplates embed.FS

// Artifact template names.
const (
	ComponentSource = "component.ts"
	ComponentMarkup = "component.html"
	ComponentStyle  = "component.style"
	DirectiveSource = "directive.ts"
	ModuleSource    = "module.ts"
)

// GetArtifactTemplate returns the content of an artifact template.
func GetArtifactTemplate(name string) (string, error) {
	content, err := artifactTemplates.ReadFile("artifact/" + name + ".tmpl")
	if err != nil {
		return "", err
	}
	return string(content), nil
}
