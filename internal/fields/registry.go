package fields

import (
	"path/filepath"
	"strings"

	"github.com/dosanma1/modelforge/pkg/xos"
)

// TypeRegistry reports whether a type names a class or interface.
type TypeRegistry interface {
	IsKnownType(name string) bool
}

// StaticRegistry knows a fixed set of fully-qualified types.
// A leading namespace separator is optional on both sides.
type StaticRegistry map[string]struct{}

// NewStaticRegistry creates a registry from a list of type names.
func NewStaticRegistry(types ...string) StaticRegistry {
	r := make(StaticRegistry, len(types))
	for _, t := range types {
		r[strings.TrimPrefix(t, `\`)] = struct{}{}
	}
	return r
}

// IsKnownType implements TypeRegistry.
func (r StaticRegistry) IsKnownType(name string) bool {
	_, ok := r[strings.TrimPrefix(name, `\`)]
	return ok
}

// SourceRoot maps a namespace prefix to the directory holding its sources.
type SourceRoot struct {
	Namespace string
	Path      string
}

// ContainerRegistry knows every type that has a source file under one of
// its roots, following the one-class-per-file layout.
type ContainerRegistry struct {
	Roots []SourceRoot

	// Ext is the source file extension, "php" when empty.
	Ext string
}

// IsKnownType implements TypeRegistry.
func (r ContainerRegistry) IsKnownType(name string) bool {
	name = strings.TrimPrefix(name, `\`)

	ext := r.Ext
	if ext == "" {
		ext = "php"
	}

	for _, root := range r.Roots {
		prefix := strings.Trim(root.Namespace, `\`) + `\`
		if !strings.HasPrefix(name, prefix) {
			continue
		}
		rel := strings.ReplaceAll(strings.TrimPrefix(name, prefix), `\`, string(filepath.Separator))
		if xos.Exists(filepath.Join(root.Path, rel+"."+ext)) {
			return true
		}
	}
	return false
}

// ChainRegistry knows a type when any of its members does.
type ChainRegistry []TypeRegistry

// IsKnownType implements TypeRegistry.
func (c ChainRegistry) IsKnownType(name string) bool {
	for _, r := range c {
		if r != nil && r.IsKnownType(name) {
			return true
		}
	}
	return false
}
