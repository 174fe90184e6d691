package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dosanma1/modelforge/internal/driver"
	"github.com/dosanma1/modelforge/internal/generator"
	"github.com/dosanma1/modelforge/internal/naming"
	"github.com/dosanma1/modelforge/internal/project"
	"github.com/dosanma1/modelforge/internal/ui"
)

func newGenerateStorageCmd(a *app) *cobra.Command {
	opts := &generateOptions{}

	cmd := &cobra.Command{
		Use:     "storage",
		Aliases: []string{"doctrine-manager"},
		Short:   "Generate a storage manager and register it in the driver configuration",
		Long: `Generate the storage manager of an existing model manager.

  modelforge generate storage --model=AcmeBlogBundle:Blog/Post --db-driver=orm --format=xml

creates Acme\BlogBundle\Doctrine\EntityManager\Blog\PostManager and
registers it in Resources/config/db_driver/orm.xml, creating the file
when it does not exist yet. The model manager interface must exist.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runGeneration(cmd, generation{
				step:     "storage",
				title:    "Storage manager generation",
				opts:     opts,
				interact: interactStorage,
				options: func(*project.Project, generator.Target) (generator.GeneratorOptions, error) {
					d, f, err := storageOptions(opts)
					if err != nil {
						return generator.GeneratorOptions{}, err
					}
					return generator.GeneratorOptions{Driver: d, Format: f}, nil
				},
			})
		},
	}

	addModelFlags(cmd, opts)
	addStorageFlags(cmd, opts)

	return cmd
}

func interactStorage(w *wizard) error {
	w.intro("Welcome to the storage manager generator", "This command helps you generate storage model managers.")

	if err := w.askModel(true); err != nil {
		return err
	}
	if err := w.askDriver(); err != nil {
		return err
	}
	if err := w.askFormat(); err != nil {
		return err
	}

	d, err := driver.Parse(w.opts.dbDriver)
	if err != nil {
		return err
	}

	shortcut := w.ref.ContainerID() + ":" + strings.Join([]string{
		driver.StorageRoot, d.ManagerSuffix(), w.ref.ModelPath() + "Manager",
	}, naming.NamespaceSeparator)
	w.summary(fmt.Sprintf("You are going to generate a %s storage model manager", ui.NounStyle.Render(shortcut)))
	return nil
}
