// Package splice registers generated storage managers in driver configuration documents.
package splice

import (
	"github.com/dosanma1/modelforge/internal/driver"
	"github.com/dosanma1/modelforge/internal/errors"
	"github.com/dosanma1/modelforge/internal/naming"
)

// Registration is everything a config document needs to know about a manager.
type Registration struct {
	Aliases      naming.Aliases
	ModelName    string
	Driver       driver.Driver
	ManagerClass string
}

// Splicer inserts a manager registration into a configuration document.
// A failed splice returns the error and never a partially modified document.
type Splicer interface {
	Splice(doc string, reg Registration) (string, error)
}

// For returns the splicer used for a configuration format.
func For(format driver.Format) (Splicer, error) {
	switch format {
	case driver.XML:
		return NewXMLSplicer(), nil
	case driver.PHP:
		return NewPHPSplicer(), nil
	case driver.YML:
		return NewYAMLSplicer(), nil
	}
	return nil, errors.NewUnsupportedFormatError(string(format), []string{"yml", "xml", "php"})
}
