// Package templates provides the built-in unit test and harness templates.
package templates

import (
	"embed"
	"io/fs"
	"sort"
	"strings"
)

//go:embed testing/*.tmpl
var testTemplates embed.FS

// GetTestTemplate returns the content of a built-in test template, e.g. "component.spec.ts".
func GetTestTemplate(name string) (string, error) {
	content, err := testTemplates.ReadFile("testing/" + name + ".tmpl")
	if err != nil {
		return "", err
	}
	return string(content), nil
}

// TestTemplateNames lists the built-in test templates.
func TestTemplateNames() []string {
	entries, err := fs.ReadDir(testTemplates, "testing")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, strings.TrimSuffix(e.Name(), ".tmpl"))
	}
	sort.Strings(names)
	return names
}
