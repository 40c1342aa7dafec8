package shell

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFunctionContainsCommandName(t *testing.T) {
	t.Parallel()

	text := Function("quickmark")

	assert.Contains(t, text, "qm() {")
	assert.Contains(t, text, `quickmark "$@"`)
	assert.Contains(t, text, `quickmark go "$1"`)
	assert.True(t, strings.HasPrefix(text, Marker))
}

func TestFunctionGuardsDirectoryChange(t *testing.T) {
	t.Parallel()

	text := Function("quickmark")

	// cd only happens on zero exit and non-empty output.
	assert.Contains(t, text, `[ $? -eq 0 ] && [ -n "$target_dir" ]`)
	assert.Contains(t, text, `cd "$target_dir"`)
}

func TestFunctionPassesThroughSubcommands(t *testing.T) {
	t.Parallel()

	text := Function("qm-bin")

	assert.Contains(t, text, "add|delete|list|install|shell-function)")
	assert.Contains(t, text, `qm-bin "$@"`)
}
