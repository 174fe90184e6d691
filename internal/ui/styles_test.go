package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLines(t *testing.T) {
	assert.Contains(t, Created("src/Model/Post.php"), "Created")
	assert.Contains(t, Created("src/Model/Post.php"), "src/Model/Post.php")
	assert.Contains(t, Updated("orm.xml"), "Updated")
	assert.Contains(t, Planned("orm.xml", false), "Would create")
	assert.Contains(t, Planned("orm.xml", true), "Would update")
	assert.Contains(t, Failure("boom"), "boom")
}

func TestSummary(t *testing.T) {
	out := Summary("You are going to generate a FooBarBundle:Post model")
	assert.Contains(t, out, "Summary before generation")
	assert.Contains(t, out, "FooBarBundle:Post")
}
