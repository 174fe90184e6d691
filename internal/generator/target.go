package generator

import (
	"path/filepath"
	"strings"

	"github.com/dosanma1/modelforge/internal/driver"
	"github.com/dosanma1/modelforge/internal/naming"
	"github.com/dosanma1/modelforge/internal/project"
)

// SourceExt is the extension of generated class files.
const SourceExt = "php"

// Target is where and under which names one model is generated.
// It is computed per invocation and never cached.
type Target struct {
	// RootDir is the container root.
	RootDir string

	// Namespace is the container namespace.
	Namespace string

	// ContainerName is the container name, used for configuration aliases.
	ContainerName string

	// ModelName is the last segment of the model path.
	ModelName string

	// SubPath holds the leading model path segments. They become
	// subdirectories and namespace segments under every generated root.
	SubPath []string
}

// NewTarget builds a target for a resolved container and shortcut.
func NewTarget(ct project.ResolvedContainer, ref naming.ShortcutReference) Target {
	return Target{
		RootDir:       ct.Dir,
		Namespace:     strings.TrimSuffix(ct.Namespace, naming.NamespaceSeparator),
		ContainerName: ct.Name,
		ModelName:     ref.ModelName(),
		SubPath:       ref.SubPath(),
	}
}

// ModelPath is the namespace-separated path of the model below Model/.
func (t Target) ModelPath() string {
	return strings.Join(append(append([]string{}, t.SubPath...), t.ModelName), naming.NamespaceSeparator)
}

// Aliases derives the configuration aliases of the model.
func (t Target) Aliases() naming.Aliases {
	return naming.DeriveAliases(t.ContainerName, t.ModelPath())
}

// ModelDir is the directory of the model and its interface.
func (t Target) ModelDir() string {
	return t.dir("Model")
}

// ModelNamespace is the namespace of the model and its interface.
func (t Target) ModelNamespace() string {
	return t.namespace("Model")
}

// ManagerDir is the directory of the manager interface and abstract manager.
func (t Target) ManagerDir() string {
	return t.dir("Model", "Manager")
}

// ManagerNamespace is the namespace of the manager interface and abstract manager.
func (t Target) ManagerNamespace() string {
	return t.namespace("Model", "Manager")
}

// StorageDir is the directory of the driver-specific manager.
func (t Target) StorageDir(d driver.Driver) string {
	return t.dir(driver.StorageRoot, d.ManagerSuffix())
}

// StorageNamespace is the namespace of the driver-specific manager.
func (t Target) StorageNamespace(d driver.Driver) string {
	return t.namespace(driver.StorageRoot, d.ManagerSuffix())
}

// ConfigPath is the driver configuration file.
func (t Target) ConfigPath(d driver.Driver, f driver.Format) string {
	return filepath.Join(t.RootDir, "Resources", "config", "db_driver", d.ID()+"."+f.Ext())
}

// ManagerClass is the fully-qualified driver-specific manager class.
func (t Target) ManagerClass(d driver.Driver) string {
	return t.StorageNamespace(d) + naming.NamespaceSeparator + t.ModelName + "Manager"
}

// Variable is the parameter name used for model instances.
func (t Target) Variable() string {
	return naming.Lcfirst(t.ModelName)
}

func (t Target) file(dir, name string) string {
	return filepath.Join(dir, name+"."+SourceExt)
}

func (t Target) dir(roots ...string) string {
	parts := append([]string{t.RootDir}, roots...)
	return filepath.Join(append(parts, t.SubPath...)...)
}

func (t Target) namespace(roots ...string) string {
	parts := append([]string{t.Namespace}, roots...)
	return strings.Join(append(parts, t.SubPath...), naming.NamespaceSeparator)
}

// templateData holds the render parameters shared by every skeleton.
func (t Target) templateData() map[string]interface{} {
	aliases := t.Aliases()
	modelNS := t.ModelNamespace()
	managerNS := t.ManagerNamespace()

	return map[string]interface{}{
		"Namespace":            t.Namespace,
		"ModelName":            t.ModelName,
		"Variable":             t.Variable(),
		"ContainerAlias":       aliases.Container,
		"ModelAlias":           aliases.Model,
		"ModelNamespace":       modelNS,
		"ModelClass":           modelNS + naming.NamespaceSeparator + t.ModelName,
		"ModelInterfaceClass":  modelNS + naming.NamespaceSeparator + t.ModelName + "Interface",
		"ManagerNamespace":     managerNS,
		"AbstractManagerClass": managerNS + naming.NamespaceSeparator + t.ModelName + "Manager",
		"ManagerClassKey":      aliases.ManagerClassKey(),
		"ModelClassKey":        aliases.ModelClassKey(),
		"ServiceID":            aliases.ServiceID(),
	}
}
