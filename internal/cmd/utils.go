package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/dosanma1/modelforge/internal/project"
)

// openProject loads the project file named by --config, or the one found
// from the working directory upwards.
func (a *app) openProject() (*project.Project, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get current directory: %w", err)
	}

	return project.Open(cwd, a.opts.configFile)
}

// writeln writes one line to w. Terminal write errors are not actionable.
func writeln(w io.Writer, a ...interface{}) {
	_, _ = fmt.Fprintln(w, a...)
}

// writef writes formatted text to w.
func writef(w io.Writer, format string, a ...interface{}) {
	_, _ = fmt.Fprintf(w, format, a...)
}
