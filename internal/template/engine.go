// Package template provides skeleton lookup and rendering.
package template

import (
	"bytes"
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"
	"text/template"

	"github.com/dosanma1/modelforge/internal/errors"
	"github.com/dosanma1/modelforge/internal/naming"
)

//go:embed all:skeleton
var skeletonFS embed.FS

// EmbeddedSource is the name of the built-in skeleton source.
const EmbeddedSource = "embedded"

// Source is one directory in the skeleton search order.
type Source struct {
	// Name is the directory path, or EmbeddedSource.
	Name string

	FS fs.FS
}

// Engine renders skeleton templates. Sources are consulted in order and the
// first one holding a template wins.
type Engine struct {
	funcMap template.FuncMap
	sources []Source
}

// NewEngine creates an engine over the given skeleton directories followed by
// the built-in skeletons. Directories that do not exist are skipped.
func NewEngine(dirs ...string) *Engine {
	sources := make([]Source, 0, len(dirs)+1)
	for _, dir := range dirs {
		if dir == "" {
			continue
		}
		if info, err := os.Stat(dir); err != nil || !info.IsDir() {
			continue
		}
		sources = append(sources, Source{Name: dir, FS: os.DirFS(dir)})
	}

	return NewEngineFS(sources...)
}

// NewEngineFS creates an engine over explicit sources followed by the built-in skeletons.
func NewEngineFS(sources ...Source) *Engine {
	embedded, err := fs.Sub(skeletonFS, "skeleton")
	if err != nil {
		panic(fmt.Sprintf("embedded skeleton: %v", err))
	}

	return &Engine{
		funcMap: template.FuncMap{
			"ucfirst":    naming.Ucfirst,
			"lcfirst":    naming.Lcfirst,
			"underscore": naming.Underscore,
			"camelize":   naming.Camelize,
			"upper":      strings.ToUpper,
			"lower":      strings.ToLower,
			"replace":    strings.ReplaceAll,
			"join":       strings.Join,
		},
		sources: append(sources, Source{Name: EmbeddedSource, FS: embedded}),
	}
}

// Sources returns the search order.
func (e *Engine) Sources() []Source {
	return e.sources
}

// Lookup returns the source that wins for name and the template text.
func (e *Engine) Lookup(name string) (Source, string, error) {
	for _, src := range e.sources {
		content, err := fs.ReadFile(src.FS, name)
		if err == nil {
			return src, string(content), nil
		}
	}

	return Source{}, "", errors.NewNotFoundError(
		fmt.Sprintf("skeleton %q not found", name),
		"",
		"add it to one of the skeleton directories or remove the override",
	)
}

// Render renders the named skeleton with the given data.
func (e *Engine) Render(name string, data interface{}) (string, error) {
	src, text, err := e.Lookup(name)
	if err != nil {
		return "", err
	}

	out, err := e.RenderString(name, text, data)
	if err != nil {
		return "", fmt.Errorf("skeleton from %s: %w", src.Name, err)
	}
	return out, nil
}

// RenderString renders a template string with the given data.
func (e *Engine) RenderString(name, text string, data interface{}) (string, error) {
	tmpl, err := e.parse(name, text)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute template %s: %w", name, err)
	}

	return buf.String(), nil
}

// Names returns every template name available from any source, sorted.
func (e *Engine) Names() ([]string, error) {
	seen := make(map[string]bool)
	for _, src := range e.sources {
		err := fs.WalkDir(src.FS, ".", func(p string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if !d.IsDir() && path.Ext(p) == ".tmpl" {
				seen[p] = true
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("failed to list skeletons in %s: %w", src.Name, err)
		}
	}

	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

// LintIssue is a template that fails to parse.
type LintIssue struct {
	Source string
	Name   string
	Err    error
}

// Lint parses every template in every source.
func (e *Engine) Lint() ([]LintIssue, error) {
	var issues []LintIssue
	for _, src := range e.sources {
		err := fs.WalkDir(src.FS, ".", func(p string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() || path.Ext(p) != ".tmpl" {
				return nil
			}

			content, err := fs.ReadFile(src.FS, p)
			if err != nil {
				return err
			}
			if _, err := e.parse(p, string(content)); err != nil {
				issues = append(issues, LintIssue{Source: src.Name, Name: p, Err: err})
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("failed to lint skeletons in %s: %w", src.Name, err)
		}
	}
	return issues, nil
}

func (e *Engine) parse(name, text string) (*template.Template, error) {
	tmpl, err := template.New(name).Funcs(e.funcMap).Option("missingkey=error").Parse(text)
	if err != nil {
		return nil, fmt.Errorf("failed to parse template: %w", err)
	}
	return tmpl, nil
}
