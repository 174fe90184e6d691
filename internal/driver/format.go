package driver

import (
	"strings"

	"github.com/dosanma1/modelforge/internal/errors"
)

// Format is a configuration file format.
type Format string

const (
	PHP Format = "php"
	XML Format = "xml"
	YML Format = "yml"
)

// Formats lists the supported formats in prompt order.
var Formats = []Format{YML, XML, PHP}

// ParseFormat returns the format for a case-insensitive identifier.
// "yaml" is accepted as an alias of yml.
func ParseFormat(s string) (Format, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "yaml" {
		return YML, nil
	}
	for _, f := range Formats {
		if string(f) == s {
			return f, nil
		}
	}

	supported := make([]string, len(Formats))
	for i, f := range Formats {
		supported[i] = string(f)
	}
	return "", errors.NewUnsupportedFormatError(s, supported)
}

// Ext returns the file extension of the format.
func (f Format) Ext() string {
	return string(f)
}
