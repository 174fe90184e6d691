package generator

import (
	"fmt"

	"github.com/dosanma1/modelforge/internal/errors"
	"github.com/dosanma1/modelforge/internal/output"
	"github.com/dosanma1/modelforge/internal/template"
)

// renderer writes skeletons through a Filesystem.
type renderer struct {
	fs     Filesystem
	engine *template.Engine
}

func (r renderer) renderFile(name, path string, data map[string]interface{}) error {
	content, err := r.engine.Render(name, data)
	if err != nil {
		return fmt.Errorf("failed to render %s: %w", name, err)
	}

	if err := r.fs.WriteFile(path, []byte(content)); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	output.Debug("rendered skeleton", "template", name, "path", path)
	return nil
}

// mustNotExist fails with ErrAlreadyExists for the first path found on disk.
func (r renderer) mustNotExist(checks ...existenceCheck) error {
	for _, c := range checks {
		if r.fs.Exists(c.path) {
			return errors.NewAlreadyExistsError(c.what, c.path)
		}
	}
	return nil
}

type existenceCheck struct {
	what string
	path string
}
