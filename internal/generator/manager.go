package generator

import (
	"github.com/dosanma1/modelforge/internal/output"
	"github.com/dosanma1/modelforge/internal/template"
)

// ManagerPaths are the files written for a model manager.
type ManagerPaths struct {
	Interface string
	Abstract  string
}

// ManagerGenerator emits the manager interface and the abstract manager.
type ManagerGenerator struct {
	renderer
}

// NewManagerGenerator creates a manager generator.
func NewManagerGenerator(fs Filesystem, engine *template.Engine) *ManagerGenerator {
	return &ManagerGenerator{renderer{fs: fs, engine: engine}}
}

// Paths returns the files Emit would write.
func (g *ManagerGenerator) Paths(t Target) ManagerPaths {
	return ManagerPaths{
		Interface: t.file(t.ManagerDir(), t.ModelName+"ManagerInterface"),
		Abstract:  t.file(t.ManagerDir(), t.ModelName+"Manager"),
	}
}

// Emit renders the manager interface and then the abstract manager.
func (g *ManagerGenerator) Emit(t Target) (ManagerPaths, error) {
	paths := g.Paths(t)

	if err := g.mustNotExist(
		existenceCheck{"model manager interface", paths.Interface},
		existenceCheck{"abstract model manager", paths.Abstract},
	); err != nil {
		return ManagerPaths{}, err
	}

	data := t.templateData()

	if err := g.renderFile("model/manager/ModelManagerInterface.php.tmpl", paths.Interface, data); err != nil {
		return ManagerPaths{}, err
	}
	if err := g.renderFile("model/manager/ModelManager.php.tmpl", paths.Abstract, data); err != nil {
		return ManagerPaths{}, err
	}

	output.Debug("generated model manager", "model", t.ModelPath())
	return paths, nil
}
