// Package naming turns shortcut notation into container and model names
// and derives the underscored aliases used in configuration keys.
package naming

import (
	"strings"

	"github.com/dosanma1/modelforge/internal/errors"
)

const (
	// Delimiter separates the container from the model path in shortcut notation.
	Delimiter = ":"

	// NamespaceSeparator separates namespace segments in generated sources.
	NamespaceSeparator = `\`

	// ContainerSuffix is stripped from container names before aliasing.
	ContainerSuffix = "Bundle"
)

// ShortcutReference is a parsed "Container:Sub/Path/Model" reference.
// It is immutable once resolved.
type ShortcutReference struct {
	containerID string
	modelPath   string
}

// Resolve parses shortcut notation. Path separators are normalized to the
// namespace separator before the delimiter is searched for.
func Resolve(shortcut string) (ShortcutReference, error) {
	normalized := strings.ReplaceAll(shortcut, "/", NamespaceSeparator)

	pos := strings.Index(normalized, Delimiter)
	if pos < 0 {
		return ShortcutReference{}, errors.NewMalformedShortcutError(normalized)
	}

	ref := ShortcutReference{
		containerID: normalized[:pos],
		modelPath:   normalized[pos+len(Delimiter):],
	}

	if ref.containerID == "" || strings.Contains(ref.modelPath, Delimiter) {
		return ShortcutReference{}, errors.NewMalformedShortcutError(normalized)
	}
	for _, segment := range ref.segments() {
		if segment == "" {
			return ShortcutReference{}, errors.NewMalformedShortcutError(normalized)
		}
	}

	return ref, nil
}

// ContainerID returns the text before the delimiter.
func (r ShortcutReference) ContainerID() string {
	return r.containerID
}

// ModelPath returns the namespace-separated path after the delimiter.
func (r ShortcutReference) ModelPath() string {
	return r.modelPath
}

// ModelName returns the last segment of the model path.
func (r ShortcutReference) ModelName() string {
	segments := r.segments()
	return segments[len(segments)-1]
}

// SubPath returns the leading segments of the model path, if any.
func (r ShortcutReference) SubPath() []string {
	segments := r.segments()
	return segments[:len(segments)-1]
}

// String returns the normalized shortcut.
func (r ShortcutReference) String() string {
	return r.containerID + Delimiter + r.modelPath
}

func (r ShortcutReference) segments() []string {
	return strings.Split(r.modelPath, NamespaceSeparator)
}
