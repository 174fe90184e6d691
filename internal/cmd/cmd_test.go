package cmd

import (
	"bytes"
	stderrors "errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dosanma1/modelforge/internal/errors"
	"github.com/dosanma1/modelforge/internal/project"
)

const testConfig = `version: "1"
containers:
  - name: FooBarBundle
    namespace: Foo\BarBundle
    path: src/Foo/BarBundle
`

// fakePrompter answers from queues. An exhausted queue aborts like an
// interrupted terminal.
type fakePrompter struct {
	texts    []string
	confirms []bool
	selects  []string
	labels   []string
}

func (p *fakePrompter) AskText(label, def string, validate func(string) error) (string, error) {
	p.labels = append(p.labels, label)
	if len(p.texts) == 0 {
		return "", errors.Wrap(errors.ErrAborted, "no answer for "+label)
	}
	answer := p.texts[0]
	p.texts = p.texts[1:]
	if answer == "" {
		answer = def
	}
	if validate != nil {
		if err := validate(answer); err != nil {
			return "", err
		}
	}
	return answer, nil
}

func (p *fakePrompter) AskConfirm(label string, def bool) (bool, error) {
	p.labels = append(p.labels, label)
	if len(p.confirms) == 0 {
		return false, errors.Wrap(errors.ErrAborted, "no answer for "+label)
	}
	answer := p.confirms[0]
	p.confirms = p.confirms[1:]
	return answer, nil
}

func (p *fakePrompter) AskSelect(label string, items []string, def string) (string, error) {
	p.labels = append(p.labels, label)
	if len(p.selects) == 0 {
		return "", errors.Wrap(errors.ErrAborted, "no answer for "+label)
	}
	answer := p.selects[0]
	p.selects = p.selects[1:]
	for _, item := range items {
		if item == answer {
			return answer, nil
		}
	}
	return "", fmt.Errorf("%q is not one of %v", answer, items)
}

func newTestProject(t *testing.T) (root, configFile string) {
	t.Helper()
	root = t.TempDir()
	configFile = filepath.Join(root, project.ConfigFileName)
	require.NoError(t, os.WriteFile(configFile, []byte(testConfig), 0o644))
	require.NoError(t, os.MkdirAll(filepath.Join(root, "src", "Foo", "BarBundle"), 0o755))
	return root, configFile
}

func execute(t *testing.T, a *app, args ...string) (string, error) {
	t.Helper()
	if a.prompter == nil {
		a.prompter = &fakePrompter{}
	}
	if a.isTerminal == nil {
		a.isTerminal = func() bool { return false }
	}

	root := newRootCmd(a)
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)

	err := root.Execute()
	return out.String(), err
}

func bundleFile(root string, parts ...string) string {
	return filepath.Join(append([]string{root, "src", "Foo", "BarBundle"}, parts...)...)
}

func TestExitCodeFromError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitSuccess},
		{"explicit", NewExitError(stderrors.New("x"), 7), 7},
		{"malformed shortcut", errors.NewMalformedShortcutError("Post"), ExitValidationError},
		{"unsupported driver", errors.NewUnsupportedDriverError("couch", []string{"orm"}), ExitValidationError},
		{"duplicate field", errors.Wrap(errors.ErrDuplicateField, "title"), ExitValidationError},
		{"not found", errors.NewNotFoundError("container", "", ""), ExitNotFound},
		{"already exists", errors.NewAlreadyExistsError("model", "/x"), ExitConflict},
		{"duplicate registration", errors.NewDuplicateRegistrationError("k", ""), ExitConflict},
		{"missing dependency", errors.NewMissingDependencyError("manager interface", "/x", ""), ExitMissingDependency},
		{"anchor missing", errors.NewAnchorMissingError("</services>", ""), ExitMissingDependency},
		{"aborted", errors.Wrap(errors.ErrAborted, "declined"), ExitGeneralError},
		{"unknown", stderrors.New("boom"), ExitGeneralError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExitCodeFromError(tt.err))
		})
	}
}

func TestToExitErrorKeepsExisting(t *testing.T) {
	orig := &ExitError{Err: stderrors.New("x"), Code: 9, Printed: true}
	assert.Same(t, orig, toExitError(orig))
	assert.NoError(t, toExitError(nil))

	var exitErr *ExitError
	require.True(t, stderrors.As(toExitError(errors.NewNotFoundError("x", "", "")), &exitErr))
	assert.Equal(t, ExitNotFound, exitErr.Code)
}

func TestGenerateModelNonInteractive(t *testing.T) {
	root, cfg := newTestProject(t)

	out, err := execute(t, &app{}, "generate", "model", "--config", cfg, "--no-interaction",
		"--model", "FooBarBundle:Blog/Post", "--fields", "title:string(255) body:text", "--with-manager")
	require.NoError(t, err)

	for _, f := range []string{
		bundleFile(root, "Model", "Blog", "PostInterface.php"),
		bundleFile(root, "Model", "Blog", "Post.php"),
		bundleFile(root, "Model", "Manager", "Blog", "PostManagerInterface.php"),
		bundleFile(root, "Model", "Manager", "Blog", "PostManager.php"),
		bundleFile(root, "Doctrine", "EntityManager", "Blog", "PostManager.php"),
		bundleFile(root, "Resources", "config", "db_driver", "orm.xml"),
	} {
		assert.FileExists(t, f)
	}

	assert.Contains(t, out, "Created")
	assert.Contains(t, out, filepath.Join("src", "Foo", "BarBundle", "Model", "Blog", "Post.php"))
	assert.Contains(t, out, "Generating the model code")

	model, err := os.ReadFile(bundleFile(root, "Model", "Blog", "Post.php"))
	require.NoError(t, err)
	assert.Contains(t, string(model), "getTitle")
	assert.Contains(t, string(model), "setBody")
}

func TestGenerateModelUsesProjectDefaults(t *testing.T) {
	root, cfg := newTestProject(t)
	require.NoError(t, os.WriteFile(cfg, []byte(testConfig+"defaults:\n  driver: mongodb\n  format: yml\n"), 0o644))

	_, err := execute(t, &app{}, "generate", "model", "--config", cfg, "--model", "FooBarBundle:Post", "--with-manager")
	require.NoError(t, err)

	assert.FileExists(t, bundleFile(root, "Doctrine", "MongoDBDocumentManager", "PostManager.php"))
	assert.FileExists(t, bundleFile(root, "Resources", "config", "db_driver", "mongodb.yml"))
}

func TestGenerateStorageSplicesExistingConfig(t *testing.T) {
	root, cfg := newTestProject(t)

	_, err := execute(t, &app{}, "generate", "model", "--config", cfg, "--model", "FooBarBundle:Post", "--with-manager")
	require.NoError(t, err)
	_, err = execute(t, &app{}, "generate", "model", "--config", cfg, "--model", "FooBarBundle:Comment")
	require.NoError(t, err)
	_, err = execute(t, &app{}, "generate", "manager", "--config", cfg, "--model", "FooBarBundle:Comment")
	require.NoError(t, err)

	out, err := execute(t, &app{}, "generate", "storage", "--config", cfg, "--model", "FooBarBundle:Comment")
	require.NoError(t, err)
	assert.Contains(t, out, "Updated")

	config, err := os.ReadFile(bundleFile(root, "Resources", "config", "db_driver", "orm.xml"))
	require.NoError(t, err)
	assert.Contains(t, string(config), "foo_bar.manager.post.class")
	assert.Contains(t, string(config), "foo_bar.manager.comment.class")
}

func TestGenerateErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		code int
	}{
		{"missing model", []string{"generate", "model"}, ExitValidationError},
		{"malformed shortcut", []string{"generate", "model", "--model", "Post"}, ExitValidationError},
		{"unknown container", []string{"generate", "model", "--model", "NopeBundle:Post"}, ExitNotFound},
		{"duplicate field", []string{"generate", "model", "--model", "FooBarBundle:Post", "--fields", "title title"}, ExitValidationError},
		{"unsupported driver", []string{"generate", "storage", "--model", "FooBarBundle:Post", "--db-driver", "couchdb"}, ExitValidationError},
		{"unsupported format", []string{"generate", "storage", "--model", "FooBarBundle:Post", "--format", "ini"}, ExitValidationError},
		{"missing manager interface", []string{"generate", "storage", "--model", "FooBarBundle:Post"}, ExitMissingDependency},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root, cfg := newTestProject(t)

			_, err := execute(t, &app{}, append(tt.args, "--config", cfg, "--no-interaction")...)
			require.Error(t, err)
			assert.Equal(t, tt.code, ExitCodeFromError(err))
			assert.NoDirExists(t, bundleFile(root, "Model"))
		})
	}
}

func TestGenerateModelAlreadyExists(t *testing.T) {
	_, cfg := newTestProject(t)

	_, err := execute(t, &app{}, "generate", "model", "--config", cfg, "--model", "FooBarBundle:Post")
	require.NoError(t, err)

	_, err = execute(t, &app{}, "generate", "model", "--config", cfg, "--model", "FooBarBundle:Post")
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrAlreadyExists)
	assert.Equal(t, ExitConflict, ExitCodeFromError(err))
}

func TestGenerateDryRun(t *testing.T) {
	root, cfg := newTestProject(t)

	out, err := execute(t, &app{}, "generate", "model", "--config", cfg, "--model", "FooBarBundle:Post",
		"--with-manager", "--dry-run")
	require.NoError(t, err)

	assert.Contains(t, out, "Would create")
	assert.Contains(t, out, "nothing was written")
	assert.NoDirExists(t, bundleFile(root, "Model"))
}

func TestGenerateModelInteractive(t *testing.T) {
	root, cfg := newTestProject(t)

	// An existing model is refused and the shortcut asked again.
	require.NoError(t, os.MkdirAll(bundleFile(root, "Model"), 0o755))
	require.NoError(t, os.WriteFile(bundleFile(root, "Model", "Post.php"), []byte("<?php\n"), 0o644))

	prompter := &fakePrompter{
		texts: []string{
			"NopeBundle:Post",
			"FooBarBundle:Post",
			"FooBarBundle:Blog/Post",
			"published_at", `\DateTime`,
			"title", "",
			"",
		},
		confirms: []bool{true, true},
		selects:  []string{"mongodb", "php"},
	}

	out, err := execute(t, &app{prompter: prompter, isTerminal: func() bool { return true }},
		"generate", "model", "--config", cfg)
	require.NoError(t, err)

	assert.Contains(t, out, `Container "NopeBundle" does not exist.`)
	assert.Contains(t, out, "already exists")
	assert.Contains(t, out, "Summary before generation")

	model, err := os.ReadFile(bundleFile(root, "Model", "Blog", "Post.php"))
	require.NoError(t, err)
	assert.Contains(t, string(model), "getPublishedAt")
	assert.Contains(t, string(model), "getTitle")

	assert.FileExists(t, bundleFile(root, "Doctrine", "MongoDBDocumentManager", "Blog", "PostManager.php"))
	assert.FileExists(t, bundleFile(root, "Resources", "config", "db_driver", "mongodb.php"))
	assert.Empty(t, prompter.texts)
}

func TestGenerateModelInteractiveTypeSuffix(t *testing.T) {
	root, cfg := newTestProject(t)

	prompter := &fakePrompter{
		texts:    []string{"FooBarBundle:Post", "title", "string(255)", ""},
		confirms: []bool{false, true},
	}

	_, err := execute(t, &app{prompter: prompter, isTerminal: func() bool { return true }},
		"generate", "model", "--config", cfg)
	require.NoError(t, err)

	model, err := os.ReadFile(bundleFile(root, "Model", "Post.php"))
	require.NoError(t, err)
	assert.Contains(t, string(model), "@var string")
	assert.Contains(t, string(model), "getTitle")
	assert.NotContains(t, string(model), "(255)")
}

func TestGenerateModelIgnoresStorageFlagsWithoutManager(t *testing.T) {
	root, cfg := newTestProject(t)

	_, err := execute(t, &app{}, "generate", "model", "--config", cfg, "--no-interaction",
		"--model", "FooBarBundle:Post", "--db-driver", "bogus", "--format", "ini")
	require.NoError(t, err)

	assert.FileExists(t, bundleFile(root, "Model", "Post.php"))
	assert.NoDirExists(t, bundleFile(root, "Doctrine"))

	_, err = execute(t, &app{}, "generate", "model", "--config", cfg, "--no-interaction",
		"--model", "FooBarBundle:Comment", "--db-driver", "bogus", "--with-manager")
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrUnsupportedDriver)
	assert.Equal(t, ExitValidationError, ExitCodeFromError(err))
	assert.NoFileExists(t, bundleFile(root, "Model", "Comment.php"))
}

func TestGenerateStorageInteractive(t *testing.T) {
	root, cfg := newTestProject(t)

	_, err := execute(t, &app{}, "generate", "model", "--config", cfg, "--model", "FooBarBundle:Blog/Post")
	require.NoError(t, err)
	_, err = execute(t, &app{}, "generate", "manager", "--config", cfg, "--model", "FooBarBundle:Blog/Post")
	require.NoError(t, err)

	prompter := &fakePrompter{
		texts:    []string{"FooBarBundle:Blog/Post"},
		confirms: []bool{true},
		selects:  []string{"orm", "xml"},
	}
	out, err := execute(t, &app{prompter: prompter, isTerminal: func() bool { return true }},
		"generate", "storage", "--config", cfg)
	require.NoError(t, err)

	assert.Contains(t, out, `FooBarBundle:Doctrine\EntityManager\Blog\PostManager`)
	assert.NotContains(t, out, "Doctrine:EntityManager")
	assert.FileExists(t, bundleFile(root, "Doctrine", "EntityManager", "Blog", "PostManager.php"))
}

func TestGenerateInteractiveDeclined(t *testing.T) {
	root, cfg := newTestProject(t)

	prompter := &fakePrompter{
		texts:    []string{"FooBarBundle:Post", ""},
		confirms: []bool{false, false},
	}

	out, err := execute(t, &app{prompter: prompter, isTerminal: func() bool { return true }},
		"generate", "model", "--config", cfg)
	require.Error(t, err)

	assert.Contains(t, out, "Command aborted")
	assert.ErrorIs(t, err, errors.ErrAborted)
	assert.Equal(t, ExitGeneralError, ExitCodeFromError(err))
	assert.NoDirExists(t, bundleFile(root, "Model"))
}

func TestGenerateManagerInteractiveRequiresModel(t *testing.T) {
	root, cfg := newTestProject(t)

	_, err := execute(t, &app{}, "generate", "model", "--config", cfg, "--model", "FooBarBundle:Post")
	require.NoError(t, err)

	prompter := &fakePrompter{
		texts:    []string{"FooBarBundle:Comment", "FooBarBundle:Post"},
		confirms: []bool{true},
	}
	out, err := execute(t, &app{prompter: prompter, isTerminal: func() bool { return true }},
		"generate", "manager", "--config", cfg)
	require.NoError(t, err)

	assert.Contains(t, out, "does not exist")
	assert.Contains(t, out, "FooBarBundle:Manager:PostManager")
	assert.FileExists(t, bundleFile(root, "Model", "Manager", "PostManagerInterface.php"))
}

func TestInit(t *testing.T) {
	dir := t.TempDir()

	out, err := execute(t, &app{}, "init", dir,
		"--container", `AcmeBlogBundle=Acme\BlogBundle=src/Acme/BlogBundle`,
		"--db-driver", "mongodb")
	require.NoError(t, err)
	assert.Contains(t, out, "Created")
	assert.Contains(t, out, "does not exist yet")

	p, err := project.Open(dir, "")
	require.NoError(t, err)
	assert.Equal(t, []string{"AcmeBlogBundle"}, p.ContainerNames())
	assert.Equal(t, "mongodb", p.Config.Defaults.Driver)

	_, err = execute(t, &app{}, "init", dir)
	assert.ErrorIs(t, err, errors.ErrAlreadyExists)

	_, err = execute(t, &app{}, "init", dir, "--force", "--container", "broken")
	assert.Equal(t, ExitValidationError, ExitCodeFromError(err))
}

func TestInitInteractive(t *testing.T) {
	dir := t.TempDir()
	prompter := &fakePrompter{texts: []string{"AcmeBlogBundle", `Acme\BlogBundle`, "", ""}}

	_, err := execute(t, &app{prompter: prompter, isTerminal: func() bool { return true }}, "init", dir)
	require.NoError(t, err)

	p, err := project.Open(dir, "")
	require.NoError(t, err)
	ct, err := p.Container("AcmeBlogBundle")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "src", "Acme", "BlogBundle"), ct.Dir)
}

func TestValidate(t *testing.T) {
	_, cfg := newTestProject(t)

	out, err := execute(t, &app{}, "validate", "--config", cfg)
	require.NoError(t, err)
	assert.Contains(t, out, "is valid")

	require.NoError(t, os.WriteFile(cfg, []byte(testConfig+"  - name: GoneBundle\n    namespace: Gone\n    path: src/Gone\n"), 0o644))
	out, err = execute(t, &app{}, "validate", "--config", cfg)
	require.Error(t, err)
	assert.Equal(t, ExitValidationError, ExitCodeFromError(err))
	assert.Contains(t, out, "GoneBundle")

	require.NoError(t, os.WriteFile(cfg, []byte("version: \"1\"\nunknown: true\n"), 0o644))
	out, err = execute(t, &app{}, "validate", "--config", cfg)
	require.Error(t, err)
	assert.Equal(t, ExitValidationError, ExitCodeFromError(err))
	assert.Contains(t, out, "Validation failed")

	_, err = execute(t, &app{}, "validate", "--config", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Equal(t, ExitNotFound, ExitCodeFromError(err))
}

func TestSkeletonListAndLint(t *testing.T) {
	root, cfg := newTestProject(t)

	override := filepath.Join(root, ".modelforge", "skeleton", "model")
	require.NoError(t, os.MkdirAll(override, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(override, "Model.php.tmpl"), []byte("<?php // {{ .ModelName }}\n"), 0o644))

	out, err := execute(t, &app{}, "skeleton", "list", "--config", cfg)
	require.NoError(t, err)
	assert.Contains(t, out, "model/Model.php.tmpl")
	assert.Contains(t, out, filepath.Join(root, ".modelforge", "skeleton"))
	assert.Contains(t, out, "embedded")

	out, err = execute(t, &app{}, "skeleton", "lint", "--config", cfg)
	require.NoError(t, err)
	assert.Contains(t, out, "all templates parse")

	require.NoError(t, os.WriteFile(filepath.Join(override, "Model.php.tmpl"), []byte("{{ if }}"), 0o644))
	out, err = execute(t, &app{}, "skeleton", "lint", "--config", cfg)
	require.Error(t, err)
	assert.Equal(t, ExitValidationError, ExitCodeFromError(err))
	assert.Contains(t, out, "model/Model.php.tmpl")
}
