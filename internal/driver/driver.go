// Package driver holds the closed set of storage drivers and configuration formats.
package driver

import (
	"strings"

	"github.com/dosanma1/modelforge/internal/errors"
)

// StorageRoot is the directory under a container holding storage managers.
const StorageRoot = "Doctrine"

// Driver is a supported storage driver.
type Driver int

const (
	// ORM is the relational driver.
	ORM Driver = iota + 1

	// MongoDB is the document-store driver.
	MongoDB
)

// All lists the drivers in prompt order.
var All = []Driver{ORM, MongoDB}

// Parse returns the driver for a case-insensitive identifier.
func Parse(id string) (Driver, error) {
	id = strings.ToLower(strings.TrimSpace(id))
	for _, d := range All {
		if d.ID() == id {
			return d, nil
		}
	}
	return 0, errors.NewUnsupportedDriverError(id, IDs())
}

// IDs returns the identifiers of all drivers.
func IDs() []string {
	ids := make([]string, len(All))
	for i, d := range All {
		ids[i] = d.ID()
	}
	return ids
}

// ID is the identifier used on the command line and as the config file name.
func (d Driver) ID() string {
	switch d {
	case ORM:
		return "orm"
	case MongoDB:
		return "mongodb"
	}
	return ""
}

// ManagerSuffix names the storage manager subdirectory and template.
func (d Driver) ManagerSuffix() string {
	switch d {
	case ORM:
		return "EntityManager"
	case MongoDB:
		return "MongoDBDocumentManager"
	}
	return ""
}

// ServiceID is the container service injected into generated managers.
func (d Driver) ServiceID() string {
	switch d {
	case ORM:
		return "doctrine.orm.entity_manager"
	case MongoDB:
		return "doctrine.odm.mongodb.document_manager"
	}
	return ""
}

// ObjectManagerClass is the fully-qualified class of the injected service.
func (d Driver) ObjectManagerClass() string {
	switch d {
	case ORM:
		return `Doctrine\ORM\EntityManager`
	case MongoDB:
		return `Doctrine\ODM\MongoDB\DocumentManager`
	}
	return ""
}

// RepositoryClass is the fully-qualified repository class of the driver.
func (d Driver) RepositoryClass() string {
	switch d {
	case ORM:
		return `Doctrine\ORM\EntityRepository`
	case MongoDB:
		return `Doctrine\ODM\MongoDB\DocumentRepository`
	}
	return ""
}

// ManagerProperty is the property name holding the injected service.
func (d Driver) ManagerProperty() string {
	switch d {
	case ORM:
		return "em"
	case MongoDB:
		return "om"
	}
	return ""
}

// String implements fmt.Stringer.
func (d Driver) String() string {
	return d.ID()
}
