package generator

import (
	"github.com/dosanma1/modelforge/internal/fields"
	"github.com/dosanma1/modelforge/internal/output"
	"github.com/dosanma1/modelforge/internal/template"
)

// ModelPaths are the files written for a model.
type ModelPaths struct {
	Interface string
	Model     string
}

// ModelGenerator emits a model class and its interface.
type ModelGenerator struct {
	renderer
}

// NewModelGenerator creates a model generator.
func NewModelGenerator(fs Filesystem, engine *template.Engine) *ModelGenerator {
	return &ModelGenerator{renderer{fs: fs, engine: engine}}
}

// Paths returns the files Emit would write.
func (g *ModelGenerator) Paths(t Target) ModelPaths {
	return ModelPaths{
		Interface: t.file(t.ModelDir(), t.ModelName+"Interface"),
		Model:     t.file(t.ModelDir(), t.ModelName),
	}
}

// Emit renders the model interface and then the model. Both paths are
// checked before anything is written. A failure on the second file leaves
// the first one in place.
func (g *ModelGenerator) Emit(t Target, list fields.List) (ModelPaths, error) {
	paths := g.Paths(t)

	if err := g.mustNotExist(
		existenceCheck{"model interface", paths.Interface},
		existenceCheck{"model", paths.Model},
	); err != nil {
		return ModelPaths{}, err
	}

	data := t.templateData()
	data["Fields"] = list
	data["Uses"] = list.Imports()

	if err := g.renderFile("model/ModelInterface.php.tmpl", paths.Interface, data); err != nil {
		return ModelPaths{}, err
	}
	if err := g.renderFile("model/Model.php.tmpl", paths.Model, data); err != nil {
		return ModelPaths{}, err
	}

	output.Debug("generated model", "model", t.ModelPath(), "fields", len(list))
	return paths, nil
}
