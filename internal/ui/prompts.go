// Package ui provides terminal prompts and styles.
package ui

import (
	stderrors "errors"
	"io"

	"github.com/manifoldco/promptui"

	"github.com/dosanma1/modelforge/internal/errors"
)

// Prompter asks the operator questions.
type Prompter interface {
	// AskText asks for free text. An empty answer yields def. validate may be nil.
	AskText(label, def string, validate func(string) error) (string, error)

	// AskConfirm asks a yes/no question.
	AskConfirm(label string, def bool) (bool, error)

	// AskSelect asks to pick one of items, starting on def.
	AskSelect(label string, items []string, def string) (string, error)
}

// TerminalPrompter prompts on a terminal with promptui.
type TerminalPrompter struct {
	Stdin  io.ReadCloser
	Stdout io.WriteCloser
}

// NewPrompter creates a prompter on the process terminal.
func NewPrompter() *TerminalPrompter {
	return &TerminalPrompter{}
}

// AskText implements Prompter.
func (p *TerminalPrompter) AskText(label, def string, validate func(string) error) (string, error) {
	prompt := promptui.Prompt{
		Label:     label,
		Default:   def,
		AllowEdit: true,
		Stdin:     p.Stdin,
		Stdout:    p.Stdout,
	}
	if validate != nil {
		prompt.Validate = promptui.ValidateFunc(validate)
	}

	answer, err := prompt.Run()
	if err != nil {
		return "", translate(err)
	}
	return answer, nil
}

// AskConfirm implements Prompter.
func (p *TerminalPrompter) AskConfirm(label string, def bool) (bool, error) {
	prompt := promptui.Prompt{
		Label:     label,
		IsConfirm: true,
		Stdin:     p.Stdin,
		Stdout:    p.Stdout,
	}
	if def {
		prompt.Default = "y"
	}

	_, err := prompt.Run()
	switch {
	case err == nil:
		return true, nil
	case stderrors.Is(err, promptui.ErrAbort):
		return false, nil
	}
	return false, translate(err)
}

// AskSelect implements Prompter.
func (p *TerminalPrompter) AskSelect(label string, items []string, def string) (string, error) {
	cursor := 0
	for i, item := range items {
		if item == def {
			cursor = i
		}
	}

	sel := promptui.Select{
		Label:     label,
		Items:     items,
		CursorPos: cursor,
		Stdin:     p.Stdin,
		Stdout:    p.Stdout,
	}

	_, value, err := sel.Run()
	if err != nil {
		return "", translate(err)
	}
	return value, nil
}

func translate(err error) error {
	if stderrors.Is(err, promptui.ErrInterrupt) || stderrors.Is(err, promptui.ErrEOF) {
		return errors.Wrap(errors.ErrAborted, "prompt interrupted")
	}
	return err
}
