package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/dosanma1/modelforge/internal/driver"
	"github.com/dosanma1/modelforge/internal/errors"
	"github.com/dosanma1/modelforge/internal/fields"
	"github.com/dosanma1/modelforge/internal/generator"
	"github.com/dosanma1/modelforge/internal/naming"
	"github.com/dosanma1/modelforge/internal/project"
	"github.com/dosanma1/modelforge/internal/ui"
	"github.com/dosanma1/modelforge/pkg/xos"
)

// wizard asks the generate questions and stores the answers in opts.
type wizard struct {
	prompter ui.Prompter
	out      io.Writer
	project  *project.Project
	opts     *generateOptions

	// ref is the shortcut accepted by askModel.
	ref naming.ShortcutReference
}

func (w *wizard) intro(title string, lines ...string) {
	writeln(w.out, ui.Section(title))
	for _, line := range lines {
		writeln(w.out, line)
	}
	writeln(w.out, "First, you need to give the model name you want to generate.")
	writeln(w.out, "You must use the shortcut notation like "+ui.NounStyle.Render("AcmeBlogBundle:Post")+".")
	writeln(w.out)
}

// askModel asks for a shortcut until it names a registered container and a
// model that exists, or does not exist, as required.
func (w *wizard) askModel(mustExist bool) error {
	for {
		answer, err := w.prompter.AskText("The Model shortcut name", w.opts.model, validateShortcut)
		if err != nil {
			return err
		}

		ref, err := naming.Resolve(answer)
		if err != nil {
			writeln(w.out, ui.Failure(err.Error()))
			continue
		}

		ct, err := w.project.Container(ref.ContainerID())
		if err != nil {
			writeln(w.out, ui.Failure(fmt.Sprintf("Container %q does not exist.", ref.ContainerID())))
			continue
		}

		model := generator.NewModelGenerator(nil, nil).Paths(generator.NewTarget(ct, ref)).Model
		exists := xos.Exists(model)
		if exists == mustExist {
			w.ref = ref
			w.opts.model = ref.String()
			return nil
		}

		if exists {
			writeln(w.out, ui.Failure(fmt.Sprintf("Model %q already exists.", ref)))
		} else {
			writeln(w.out, ui.Failure(fmt.Sprintf("Model %q does not exist.", ref)))
		}
	}
}

// askFields adds fields to those given with --fields until an empty name is entered.
func (w *wizard) askFields() error {
	parser := fields.NewParser(w.project.TypeRegistry())
	list, err := parser.Parse(w.opts.fields)
	if err != nil {
		return err
	}

	writeln(w.out)
	writeln(w.out, "Instead of starting with a blank model, you can add some fields now.")
	writeln(w.out, ui.SuccessStyle.Render("Available types:")+" "+strings.Join(fields.ScalarTypes, ", ")+" and other objects.")
	writeln(w.out)

	for {
		name, err := w.prompter.AskText("New field name (press <return> to stop adding fields)", "", func(s string) error {
			if s != "" && list.Has(fieldName(s)) {
				return errors.NewValidationError(fmt.Sprintf("field %q is already defined", s), "", "")
			}
			return nil
		})
		if err != nil {
			return err
		}
		if name == "" {
			break
		}

		typ, err := w.prompter.AskText("Field type", fields.DefaultType, func(s string) error {
			return parser.ValidateType(fields.StripTypeSuffix(s))
		})
		if err != nil {
			return err
		}

		list = append(list, parser.Classify(fields.FieldSpec{Name: fieldName(name), DeclaredType: fields.StripTypeSuffix(typ)}))
	}

	w.opts.fields = list.String()
	return nil
}

func (w *wizard) askWithManager() error {
	ok, err := w.prompter.AskConfirm("Do you want to generate a model manager class", w.opts.withManager)
	if err != nil {
		return err
	}
	w.opts.withManager = ok
	return nil
}

func (w *wizard) askDriver() error {
	writeln(w.out, "Determine the db driver to use for configuration model manager.")
	answer, err := w.prompter.AskSelect("Configuration db driver", driver.IDs(), w.opts.dbDriver)
	if err != nil {
		return err
	}
	w.opts.dbDriver = answer
	return nil
}

func (w *wizard) askFormat() error {
	items := make([]string, len(driver.Formats))
	for i, f := range driver.Formats {
		items[i] = string(f)
	}

	writeln(w.out, "Determine the format to use for configuration files.")
	answer, err := w.prompter.AskSelect("Configuration format", items, w.opts.format)
	if err != nil {
		return err
	}
	w.opts.format = answer
	return nil
}

func (w *wizard) summary(lines ...string) {
	writeln(w.out)
	writeln(w.out, ui.Summary(lines...))
}

func validateShortcut(s string) error {
	_, err := naming.Resolve(s)
	return err
}

// fieldName normalizes an entered field name to a lower camel case property.
func fieldName(s string) string {
	return naming.Lcfirst(naming.Camelize(s))
}
