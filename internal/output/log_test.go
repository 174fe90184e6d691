package output

import (
	"bytes"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
)

func TestSetupLogging_VerboseEnablesDebugLevel(t *testing.T) {
	SetupLogging(LogConfig{Verbose: true})
	assert.Equal(t, log.DebugLevel, Logger().GetLevel(), "verbose should set debug level")
}

func TestSetupLogging_DefaultInfoLevel(t *testing.T) {
	SetupLogging(LogConfig{})
	assert.Equal(t, log.InfoLevel, Logger().GetLevel(), "default should be info level")
}

func TestDebugHiddenByDefault(t *testing.T) {
	var buf bytes.Buffer
	SetupLogging(LogConfig{Writer: &buf})

	Debug("rendered", "path", "Model/Post.php")
	assert.Empty(t, buf.String())

	Info("generated model", "name", "Post")
	assert.Contains(t, buf.String(), "generated model")
	assert.Contains(t, buf.String(), "name=Post")
}

func TestDebugShownWhenVerbose(t *testing.T) {
	var buf bytes.Buffer
	SetupLogging(LogConfig{Verbose: true, Writer: &buf})

	Debug("rendered", "path", "Model/Post.php")
	assert.Contains(t, buf.String(), "rendered")
	assert.Contains(t, buf.String(), "path=Model/Post.php")
}
