// Package generator emits model, manager and storage manager scaffolds.
package generator

import (
	"context"
	"fmt"
	"sort"

	"github.com/dosanma1/modelforge/internal/driver"
	"github.com/dosanma1/modelforge/internal/errors"
	"github.com/dosanma1/modelforge/internal/fields"
	"github.com/dosanma1/modelforge/internal/template"
)

// Generator defines the interface for all generators.
type Generator interface {
	// Name returns the name of the generator.
	Name() string

	// Description returns a human-readable description.
	Description() string

	// Generate executes the generator and returns the files it wrote.
	Generate(ctx context.Context, opts GeneratorOptions) ([]string, error)
}

// GeneratorOptions contains common options for all generators.
type GeneratorOptions struct {
	// Target is the model being generated.
	Target Target

	// Fields are the model fields; only the model generator reads them.
	Fields fields.List

	// WithManager chains the manager generator after the model, and the
	// storage generator when Driver is set.
	WithManager bool

	// Driver selects the storage manager; zero skips it when chaining.
	Driver driver.Driver

	// Format selects the driver configuration format.
	Format driver.Format
}

// Registry manages available generators.
type Registry struct {
	generators map[string]Generator
}

// NewRegistry creates a new generator registry.
func NewRegistry() *Registry {
	return &Registry{
		generators: make(map[string]Generator),
	}
}

// NewDefaultRegistry registers the model, manager and storage generators.
func NewDefaultRegistry(fs Filesystem, engine *template.Engine) *Registry {
	r := NewRegistry()
	model := &modelStep{
		model:   NewModelGenerator(fs, engine),
		manager: NewManagerGenerator(fs, engine),
		storage: NewStorageGenerator(fs, engine),
	}
	r.MustRegister(model, &managerStep{model.manager}, &storageStep{model.storage})
	return r
}

// MustRegister adds generators to the registry and panics on a duplicate name.
func (r *Registry) MustRegister(generators ...Generator) {
	for _, g := range generators {
		if err := r.Register(g); err != nil {
			panic(fmt.Sprintf("register generator: %v", err))
		}
	}
}

// Register adds a generator to the registry.
func (r *Registry) Register(generator Generator) error {
	name := generator.Name()
	if _, exists := r.generators[name]; exists {
		return fmt.Errorf("generator %q already registered", name)
	}

	r.generators[name] = generator
	return nil
}

// Get retrieves a generator by name.
func (r *Registry) Get(name string) (Generator, error) {
	generator, exists := r.generators[name]
	if !exists {
		return nil, errors.NewNotFoundError(fmt.Sprintf("generator %q not found", name), "", "")
	}

	return generator, nil
}

// List returns all registered generator names, sorted.
func (r *Registry) List() []string {
	names := make([]string, 0, len(r.generators))
	for name := range r.generators {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Has checks if a generator is registered.
func (r *Registry) Has(name string) bool {
	_, exists := r.generators[name]
	return exists
}

type modelStep struct {
	model   *ModelGenerator
	manager *ManagerGenerator
	storage *StorageGenerator
}

func (s *modelStep) Name() string { return "model" }

func (s *modelStep) Description() string {
	return "Generate a model class and its interface"
}

func (s *modelStep) Generate(ctx context.Context, opts GeneratorOptions) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	paths, err := s.model.Emit(opts.Target, opts.Fields)
	if err != nil {
		return nil, err
	}
	files := []string{paths.Interface, paths.Model}

	if !opts.WithManager {
		return files, nil
	}

	more, err := (&managerStep{s.manager}).Generate(ctx, opts)
	files = append(files, more...)
	if err != nil || opts.Driver == 0 {
		return files, err
	}

	more, err = (&storageStep{s.storage}).Generate(ctx, opts)
	return append(files, more...), err
}

type managerStep struct {
	manager *ManagerGenerator
}

func (s *managerStep) Name() string { return "manager" }

func (s *managerStep) Description() string {
	return "Generate a model manager interface and abstract manager"
}

func (s *managerStep) Generate(ctx context.Context, opts GeneratorOptions) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	paths, err := s.manager.Emit(opts.Target)
	if err != nil {
		return nil, err
	}
	return []string{paths.Interface, paths.Abstract}, nil
}

type storageStep struct {
	storage *StorageGenerator
}

func (s *storageStep) Name() string { return "storage" }

func (s *storageStep) Description() string {
	return "Generate a storage manager and register it in the driver configuration"
}

func (s *storageStep) Generate(ctx context.Context, opts GeneratorOptions) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	paths, err := s.storage.Emit(opts.Target, opts.Driver, opts.Format)
	if err != nil {
		return nil, err
	}
	return []string{paths.Manager, paths.Config}, nil
}
