package generator

import (
	stderrors "errors"
	"fmt"
	"strings"

	"github.com/dosanma1/modelforge/internal/driver"
	"github.com/dosanma1/modelforge/internal/errors"
	"github.com/dosanma1/modelforge/internal/naming"
	"github.com/dosanma1/modelforge/internal/output"
	"github.com/dosanma1/modelforge/internal/splice"
	"github.com/dosanma1/modelforge/internal/template"
)

// StoragePaths are the files written for a driver-specific manager.
type StoragePaths struct {
	Manager string
	Config  string

	// Spliced is set when Config existed and was extended rather than created.
	Spliced bool
}

// StorageGenerator emits the driver-specific manager and registers it in
// the driver configuration file.
type StorageGenerator struct {
	renderer
}

// NewStorageGenerator creates a storage manager generator.
func NewStorageGenerator(fs Filesystem, engine *template.Engine) *StorageGenerator {
	return &StorageGenerator{renderer{fs: fs, engine: engine}}
}

// Emit renders the storage manager, then splices the driver configuration
// when it exists or renders a fresh one. The manager interface must have
// been generated first. The configuration is spliced in memory before any
// write, so a duplicate registration or a missing anchor writes nothing.
func (g *StorageGenerator) Emit(t Target, d driver.Driver, f driver.Format) (StoragePaths, error) {
	if d.ID() == "" {
		return StoragePaths{}, errors.NewUnsupportedDriverError(d.String(), driver.IDs())
	}
	splicer, err := splice.For(f)
	if err != nil {
		return StoragePaths{}, err
	}

	managerInterface := t.file(t.ManagerDir(), t.ModelName+"ManagerInterface")
	if !g.fs.Exists(managerInterface) {
		return StoragePaths{}, errors.NewMissingDependencyError(
			"model manager interface",
			managerInterface,
			"generate the model manager first",
		)
	}

	paths := StoragePaths{
		Manager: t.file(t.StorageDir(d), t.ModelName+"Manager"),
		Config:  t.ConfigPath(d, f),
	}

	if err := g.mustNotExist(existenceCheck{"storage manager", paths.Manager}); err != nil {
		return StoragePaths{}, err
	}

	data := t.templateData()
	data["StorageNamespace"] = t.StorageNamespace(d)
	data["ManagerClass"] = t.ManagerClass(d)
	data["DriverServiceID"] = d.ServiceID()
	data["ObjectManagerClass"] = d.ObjectManagerClass()
	data["ObjectManager"] = shortName(d.ObjectManagerClass())
	data["RepositoryClass"] = d.RepositoryClass()
	data["Repository"] = shortName(d.RepositoryClass())
	data["ManagerProperty"] = d.ManagerProperty()

	var spliced string
	if g.fs.Exists(paths.Config) {
		doc, err := g.fs.ReadFile(paths.Config)
		if err != nil {
			return StoragePaths{}, fmt.Errorf("failed to read %s: %w", paths.Config, err)
		}

		spliced, err = splicer.Splice(string(doc), splice.Registration{
			Aliases:      t.Aliases(),
			ModelName:    t.ModelName,
			Driver:       d,
			ManagerClass: t.ManagerClass(d),
		})
		if err != nil {
			return StoragePaths{}, withLocation(err, paths.Config)
		}
		paths.Spliced = true
	}

	if err := g.renderFile("storage/"+d.ManagerSuffix()+".php.tmpl", paths.Manager, data); err != nil {
		return StoragePaths{}, err
	}

	if paths.Spliced {
		if err := g.fs.WriteFile(paths.Config, []byte(spliced)); err != nil {
			return StoragePaths{}, fmt.Errorf("failed to write %s: %w", paths.Config, err)
		}
		output.Debug("registered manager", "config", paths.Config, "service", t.Aliases().ServiceID())
	} else if err := g.renderFile("config/db_driver."+f.Ext()+".tmpl", paths.Config, data); err != nil {
		return StoragePaths{}, err
	}

	output.Debug("generated storage manager", "model", t.ModelPath(), "driver", d.ID())
	return paths, nil
}

// shortName returns the unqualified name of a PHP class.
func shortName(class string) string {
	return class[strings.LastIndex(class, naming.NamespaceSeparator)+1:]
}

// withLocation fills in the file a DetailError refers to.
func withLocation(err error, location string) error {
	var detail *errors.DetailError
	if stderrors.As(err, &detail) && detail.Location == "" {
		detail.Location = location
	}
	return err
}
