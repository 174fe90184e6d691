// Package fields parses model field specifications and classifies their types.
package fields

import (
	"strings"

	"github.com/dosanma1/modelforge/internal/naming"
)

const (
	// DefaultType is used for bare field names.
	DefaultType = "string"

	// DateTimeType is a global-namespace reference type that is never imported.
	DateTimeType = `\DateTime`
)

// ScalarTypes are the built-in types offered when fields are entered interactively.
var ScalarTypes = []string{"string", "int", "float", "bool", "array", DateTimeType}

// FieldSpec describes one model property.
type FieldSpec struct {
	// Name is the property name.
	Name string

	// DeclaredType is the type as written, without any "(length)" suffix.
	DeclaredType string

	// ResolvedType is the type used in generated signatures.
	ResolvedType string

	// IsReferenceType is set for class and interface types.
	IsReferenceType bool

	// Import is the fully-qualified type to import, empty when none is needed.
	Import string
}

// Getter returns the accessor method name.
func (f FieldSpec) Getter() string {
	return "get" + naming.Ucfirst(f.Name)
}

// Setter returns the mutator method name.
func (f FieldSpec) Setter() string {
	return "set" + naming.Ucfirst(f.Name)
}

// String returns the "name:type" token of the field.
func (f FieldSpec) String() string {
	return f.Name + ":" + f.DeclaredType
}

// List is an ordered field sequence. Order drives accessor order in generated code.
type List []FieldSpec

// Imports returns the reference types needing an import, deduplicated in first-seen order.
func (l List) Imports() []string {
	seen := make(map[string]bool)
	imports := make([]string, 0)
	for _, f := range l {
		if f.Import == "" || seen[f.Import] {
			continue
		}
		seen[f.Import] = true
		imports = append(imports, f.Import)
	}
	return imports
}

// Names returns the field names in order.
func (l List) Names() []string {
	names := make([]string, len(l))
	for i, f := range l {
		names[i] = f.Name
	}
	return names
}

// Has reports whether a field with the given name is present.
func (l List) Has(name string) bool {
	for _, f := range l {
		if f.Name == name {
			return true
		}
	}
	return false
}

// String serializes the list back to space separated "name:type" tokens.
func (l List) String() string {
	tokens := make([]string, len(l))
	for i, f := range l {
		tokens[i] = f.String()
	}
	return strings.Join(tokens, " ")
}

// IsScalar reports whether t is one of ScalarTypes.
func IsScalar(t string) bool {
	for _, s := range ScalarTypes {
		if s == t {
			return true
		}
	}
	return false
}
