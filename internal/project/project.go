package project

import (
	"path/filepath"
	"strings"

	"github.com/dosanma1/modelforge/internal/fields"
	"github.com/dosanma1/modelforge/internal/template"
)

// Project is a loaded project file together with its root directory.
type Project struct {
	Root   string
	Config *Config
}

// Open finds the project file from dir upwards, or uses configFile when set.
func Open(dir, configFile string) (*Project, error) {
	if configFile == "" {
		root, err := FindRoot(dir)
		if err != nil {
			return nil, err
		}
		configFile = filepath.Join(root, ConfigFileName)
	}

	configFile, err := filepath.Abs(configFile)
	if err != nil {
		return nil, err
	}

	cfg, err := NewLoader().Load(configFile)
	if err != nil {
		return nil, err
	}

	return &Project{Root: filepath.Dir(configFile), Config: cfg}, nil
}

// ResolvedContainer is a container with an absolute root directory.
type ResolvedContainer struct {
	Name      string
	Namespace string
	Dir       string
}

// Container resolves a container by name.
func (p *Project) Container(name string) (ResolvedContainer, error) {
	ct, err := p.Config.Container(name)
	if err != nil {
		return ResolvedContainer{}, err
	}

	return ResolvedContainer{
		Name:      ct.Name,
		Namespace: ct.Namespace,
		Dir:       p.path(ct.Path),
	}, nil
}

// ContainerNames lists the registered container names.
func (p *Project) ContainerNames() []string {
	names := make([]string, len(p.Config.Containers))
	for i, ct := range p.Config.Containers {
		names[i] = ct.Name
	}
	return names
}

// TypeRegistry knows the configured types and every class found in a container.
func (p *Project) TypeRegistry() fields.TypeRegistry {
	roots := make([]fields.SourceRoot, len(p.Config.Containers))
	for i, ct := range p.Config.Containers {
		roots[i] = fields.SourceRoot{Namespace: ct.Namespace, Path: p.path(ct.Path)}
	}

	return fields.ChainRegistry{
		fields.NewStaticRegistry(p.Config.KnownTypes...),
		fields.ContainerRegistry{Roots: roots},
	}
}

// SkeletonDirs returns the template override directories for a container.
func (p *Project) SkeletonDirs(ct ResolvedContainer) []string {
	return template.SkeletonDirs(ct.Dir, p.Root, p.Config.SkeletonDirs)
}

func (p *Project) path(rel string) string {
	if filepath.IsAbs(rel) {
		return rel
	}
	return filepath.Join(p.Root, rel)
}

// Relative returns path relative to the project root when it lies below it.
func (p *Project) Relative(path string) string {
	rel, err := filepath.Rel(p.Root, path)
	if err != nil || strings.HasPrefix(rel, "..") {
		return path
	}
	return rel
}
