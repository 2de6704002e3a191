package pathlib

import (
	"testing"

	"github.com/pgavlin/starlark-go/starlark"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStarlarkValue(t *testing.T) {
	thread := &starlark.Thread{Name: "test"}
	globals := starlark.StringDict{"p": Parse("testdirectory")}

	const script = `
joined = p / "new_file.txt"
name = joined.name
stem = joined.stem
suffix = joined.suffix
parent = str(joined.parent)
is_abs = joined.is_abs
segments = list(joined.segments)
prefixed = "prefix" / p
rooted = p / "/etc"
same = (p / "new_file.txt") == joined
`
	out, err := starlark.ExecFile(thread, "test.star", script, globals)
	require.NoError(t, err)

	joined := out["joined"].(*Path)
	assert.True(t, joined.Equal(Parse("testdirectory/new_file.txt")))

	assert.Equal(t, "new_file.txt", string(out["name"].(starlark.String)))
	assert.Equal(t, "new_file", string(out["stem"].(starlark.String)))
	assert.Equal(t, ".txt", string(out["suffix"].(starlark.String)))
	assert.Equal(t, "testdirectory", string(out["parent"].(starlark.String)))
	assert.Equal(t, starlark.False, out["is_abs"])
	assert.Equal(t, 2, out["segments"].(*starlark.List).Len())

	// A string left operand joins via the right-hand path value.
	assert.True(t, out["prefixed"].(*Path).Equal(Parse("prefix/testdirectory")))

	// An absolute right operand wins.
	assert.True(t, out["rooted"].(*Path).Equal(Parse("/etc")))

	assert.Equal(t, starlark.True, out["same"])
}
