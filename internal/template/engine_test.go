package template

import (
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dosanma1/modelforge/internal/errors"
)

func TestLookupFirstMatchWins(t *testing.T) {
	container := Source{Name: "container", FS: fstest.MapFS{
		"model/Model.php.tmpl": {Data: []byte("container {{ .ModelName }}")},
	}}
	project := Source{Name: "project", FS: fstest.MapFS{
		"model/Model.php.tmpl":          {Data: []byte("project {{ .ModelName }}")},
		"model/ModelInterface.php.tmpl": {Data: []byte("project interface")},
	}}

	engine := NewEngineFS(container, project)

	src, _, err := engine.Lookup("model/Model.php.tmpl")
	require.NoError(t, err)
	assert.Equal(t, "container", src.Name)

	src, _, err = engine.Lookup("model/ModelInterface.php.tmpl")
	require.NoError(t, err)
	assert.Equal(t, "project", src.Name)

	src, _, err = engine.Lookup("storage/EntityManager.php.tmpl")
	require.NoError(t, err)
	assert.Equal(t, EmbeddedSource, src.Name)

	out, err := engine.Render("model/Model.php.tmpl", map[string]interface{}{"ModelName": "Post"})
	require.NoError(t, err)
	assert.Equal(t, "container Post", out)
}

func TestLookupNotFound(t *testing.T) {
	_, _, err := NewEngine().Lookup("model/Missing.php.tmpl")
	assert.ErrorIs(t, err, errors.ErrNotFound)
}

func TestNewEngineSkipsMissingDirs(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "model"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "model", "Model.php.tmpl"), []byte("override"), 0o644))

	engine := NewEngine(filepath.Join(dir, "missing"), "", dir)

	sources := engine.Sources()
	require.Len(t, sources, 2)
	assert.Equal(t, dir, sources[0].Name)
	assert.Equal(t, EmbeddedSource, sources[1].Name)

	out, err := engine.Render("model/Model.php.tmpl", nil)
	require.NoError(t, err)
	assert.Equal(t, "override", out)
}

func TestMissingKeyIsAnError(t *testing.T) {
	_, err := NewEngine().RenderString("t", "{{ .Nope }}", map[string]interface{}{})
	assert.Error(t, err)
}

func TestFuncMap(t *testing.T) {
	out, err := NewEngine().RenderString("t",
		`{{ underscore .Name }} {{ lcfirst .Name }} {{ ucfirst "post" }} {{ camelize "published_at" }}`,
		map[string]interface{}{"Name": "BlogPost"})
	require.NoError(t, err)
	assert.Equal(t, "blog_post blogPost Post PublishedAt", out)
}

func TestNamesAndLintEmbedded(t *testing.T) {
	engine := NewEngine()

	names, err := engine.Names()
	require.NoError(t, err)
	assert.Contains(t, names, "model/Model.php.tmpl")
	assert.Contains(t, names, "model/ModelInterface.php.tmpl")
	assert.Contains(t, names, "model/manager/ModelManager.php.tmpl")
	assert.Contains(t, names, "model/manager/ModelManagerInterface.php.tmpl")
	assert.Contains(t, names, "storage/EntityManager.php.tmpl")
	assert.Contains(t, names, "storage/MongoDBDocumentManager.php.tmpl")
	assert.Contains(t, names, "config/db_driver.xml.tmpl")
	assert.Contains(t, names, "config/db_driver.yml.tmpl")
	assert.Contains(t, names, "config/db_driver.php.tmpl")

	issues, err := engine.Lint()
	require.NoError(t, err)
	assert.Empty(t, issues)
}

func TestLintReportsBrokenOverride(t *testing.T) {
	broken := Source{Name: "project", FS: fstest.MapFS{
		"model/Model.php.tmpl": {Data: []byte("{{ if .ModelName }}")},
	}}

	issues, err := NewEngineFS(broken).Lint()
	require.NoError(t, err)
	require.Len(t, issues, 1)
	assert.Equal(t, "project", issues[0].Source)
	assert.Equal(t, "model/Model.php.tmpl", issues[0].Name)
}

func TestSkeletonDirs(t *testing.T) {
	dirs := SkeletonDirs("/src/Foo/BarBundle", "/src", []string{"skeletons", "/opt/skeleton"})

	assert.Equal(t, []string{
		filepath.Join("/src/Foo/BarBundle", "Resources", "modelforge", "skeleton"),
		filepath.Join("/src", ".modelforge", "skeleton"),
		filepath.Join("/src", "skeletons"),
		"/opt/skeleton",
	}, dirs)
}
