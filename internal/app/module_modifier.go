package app

import (
	"context"

	"go.uber.org/zap"

	"github.com/example/ngfc/internal/core/modulefile"
	"github.com/example/ngfc/internal/ports/secondary"
)

// Sections a new component or directive is added to.
var memberSections = []string{modulefile.SectionDeclarations, modulefile.SectionExports}

// ModuleModifier adds classes to existing module files.
type ModuleModifier struct {
	workspace secondary.WorkspaceAdapter
	locator   modulefile.SectionLocator
	logger    *zap.SugaredLogger
}

// NewModuleModifier creates a modifier locating sections with locator.
func NewModuleModifier(workspace secondary.WorkspaceAdapter, locator modulefile.SectionLocator, logger *zap.SugaredLogger) *ModuleModifier {
	return &ModuleModifier{workspace: workspace, locator: locator, logger: logger}
}

// AddToModule imports className from classFile into the module at modulePath and lists
// it in the declarations and exports sections. Each sub-step that fails adds a warning
// and the remaining steps still run. The module is saved once at the end, and only when
// something changed.
func (m *ModuleModifier) AddToModule(ctx context.Context, modulePath, className, classFile string) []string {
	file := NewSourceFile(m.workspace, modulePath)
	text, err := file.Content(ctx)
	if err != nil {
		m.logger.Warnw("module not readable", "path", modulePath, "error", err)
		return []string{"Could not read module " + modulePath}
	}

	doc := modulefile.NewDocument(modulePath, text, m.locator)
	var warnings []string

	if !doc.InsertImport([]string{className}, classFile) {
		warnings = append(warnings, "Could not add import to module")
	}
	for _, section := range memberSections {
		if !doc.InsertIntoSection(section, className) {
			warnings = append(warnings, "Could not add class to "+section)
		}
	}

	if doc.Text() == text {
		return warnings
	}
	if err := file.Write(ctx, doc.Text()); err != nil {
		m.logger.Warnw("module save failed", "path", modulePath, "error", err)
		warnings = append(warnings, "Could not save module "+modulePath)
	}
	return warnings
}
