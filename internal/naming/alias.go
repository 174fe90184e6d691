package naming

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

var (
	acronymBoundary = regexp.MustCompile(`([A-Z]+)([A-Z][a-z])`)
	wordBoundary    = regexp.MustCompile(`([a-z\d])([A-Z])`)
)

// Aliases are the lower-snake-case forms of a container and a model path.
type Aliases struct {
	Container string
	Model     string
}

// DeriveAliases computes the configuration aliases for a model inside a container.
// The container name loses its "Bundle" suffix first.
func DeriveAliases(containerName, modelPath string) Aliases {
	return Aliases{
		Container: Underscore(strings.TrimSuffix(containerName, ContainerSuffix)),
		Model:     Underscore(modelPath),
	}
}

// ManagerClassKey is the parameter holding the concrete manager class.
func (a Aliases) ManagerClassKey() string {
	return a.Container + ".manager." + a.Model + ".class"
}

// ModelClassKey is the parameter holding the model class.
func (a Aliases) ModelClassKey() string {
	return a.Container + ".model." + a.Model + ".class"
}

// ServiceID is the identifier of the default manager service.
func (a Aliases) ServiceID() string {
	return a.Container + ".manager." + a.Model + ".default"
}

// Underscore converts an identifier to the dotted snake case used for
// service ids: "_" and the namespace separator become ".", and word
// boundaries get an underscore.
//
//	Underscore("FooBar")        == "foo_bar"
//	Underscore(`Blog\PostTag`)  == "blog.post_tag"
//	Underscore("HTMLParser")    == "html_parser"
func Underscore(id string) string {
	id = strings.ReplaceAll(id, "_", ".")
	id = strings.ReplaceAll(id, NamespaceSeparator, ".")
	id = acronymBoundary.ReplaceAllString(id, "${1}_${2}")
	id = wordBoundary.ReplaceAllString(id, "${1}_${2}")
	return strings.ToLower(id)
}

// Camelize converts "_", ".", "-" and space separated words to PascalCase.
func Camelize(id string) string {
	words := strings.FieldsFunc(id, func(r rune) bool {
		return r == '_' || r == '.' || r == '-' || unicode.IsSpace(r)
	})

	var b strings.Builder
	for _, w := range words {
		b.WriteString(Ucfirst(w))
	}
	return b.String()
}

// Ucfirst upper-cases the first character.
func Ucfirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

// Lcfirst lower-cases the first character.
func Lcfirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return s
	}
	return string(unicode.ToLower(r)) + s[size:]
}
