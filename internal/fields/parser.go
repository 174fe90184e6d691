package fields

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/dosanma1/modelforge/internal/errors"
)

// typeSuffix captures the type before a "(length)" or "(precision,scale)" suffix.
var typeSuffix = regexp.MustCompile(`^([^(]*)\(.*\)`)

// DuplicatePolicy decides what happens when a field name repeats.
type DuplicatePolicy int

const (
	// RejectDuplicates fails with ErrDuplicateField.
	RejectDuplicates DuplicatePolicy = iota

	// OverwriteDuplicates keeps the first position and the last declared type.
	OverwriteDuplicates
)

// Parser builds classified field lists.
type Parser struct {
	// Registry resolves class and interface types. Nil means only DateTimeType
	// is treated as a reference type.
	Registry TypeRegistry

	// Duplicates selects the duplicate name handling.
	Duplicates DuplicatePolicy
}

// NewParser creates a parser that rejects duplicate names.
func NewParser(registry TypeRegistry) *Parser {
	return &Parser{Registry: registry}
}

// Parse reads whitespace separated "name", "name:type" or "name:type(args)"
// tokens. Empty input yields an empty list.
func (p *Parser) Parse(raw string) (List, error) {
	specs := make([]FieldSpec, 0)
	for _, token := range strings.Fields(raw) {
		name, declared, _ := strings.Cut(token, ":")
		if name == "" {
			continue
		}
		specs = append(specs, FieldSpec{Name: name, DeclaredType: declared})
	}
	return p.FromList(specs)
}

// FromList normalizes and classifies a programmatic field list with the same
// rules as Parse. Only Name and DeclaredType of the input are read.
func (p *Parser) FromList(specs []FieldSpec) (List, error) {
	list := make(List, 0, len(specs))
	index := make(map[string]int, len(specs))

	for _, spec := range specs {
		if spec.Name == "" {
			continue
		}

		field := p.Classify(FieldSpec{Name: spec.Name, DeclaredType: StripTypeSuffix(spec.DeclaredType)})

		if i, ok := index[field.Name]; ok {
			if p.Duplicates == RejectDuplicates {
				return nil, fmt.Errorf("field %q is already defined: %w", field.Name, errors.ErrDuplicateField)
			}
			list[i] = field
			continue
		}

		index[field.Name] = len(list)
		list = append(list, field)
	}

	return list, nil
}

// Classify resolves the declared type of a field. Known classes and
// interfaces are shortened to their last namespace segment and imported;
// DateTimeType is a reference type that stays fully qualified.
func (p *Parser) Classify(field FieldSpec) FieldSpec {
	if field.DeclaredType == "" {
		field.DeclaredType = DefaultType
	}

	field.ResolvedType = field.DeclaredType
	field.IsReferenceType = false
	field.Import = ""

	switch {
	case field.DeclaredType == DateTimeType:
		field.IsReferenceType = true
	case p.Registry != nil && p.Registry.IsKnownType(field.DeclaredType):
		field.IsReferenceType = true
		field.Import = strings.TrimPrefix(field.DeclaredType, `\`)
		field.ResolvedType = shortName(field.DeclaredType)
	}

	return field
}

// ValidateType accepts scalar types and types known to the registry.
func (p *Parser) ValidateType(t string) error {
	if IsScalar(t) || (p.Registry != nil && p.Registry.IsKnownType(t)) {
		return nil
	}
	return errors.NewValidationError(fmt.Sprintf("invalid type %q", t), "", "use a scalar type or a known class")
}

// StripTypeSuffix removes a parenthesized suffix: "string(255)" becomes "string".
func StripTypeSuffix(t string) string {
	if m := typeSuffix.FindStringSubmatch(t); m != nil {
		return m[1]
	}
	return t
}

func shortName(t string) string {
	if i := strings.LastIndex(t, `\`); i >= 0 {
		return t[i+1:]
	}
	return t
}
