package path

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/pgavlin/starlark-go/starlark"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pgavlin/pathlib"
)

func exec(t *testing.T, script string) starlark.StringDict {
	thread := &starlark.Thread{Name: "test"}
	globals, err := starlark.ExecFile(thread, "test.star", script, starlark.StringDict{"path": Module})
	require.NoError(t, err)
	return globals
}

func TestParseAndJoin(t *testing.T) {
	out := exec(t, `
p = path.parse("testdirectory")
joined = path.join(p, "new_file.txt")
name = joined.name
rooted = path.join(p, "/etc")
`)
	assert.True(t, out["joined"].(*pathlib.Path).Equal(pathlib.Parse("testdirectory/new_file.txt")))
	assert.Equal(t, "new_file.txt", string(out["name"].(starlark.String)))
	assert.True(t, out["rooted"].(*pathlib.Path).Equal(pathlib.Parse("/etc")))
}

func TestQueries(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub"), 0o755))

	out := exec(t, fmt.Sprintf(`
root = %q
found = path.exists(root)
missing = path.exists(root + "/nope")
dirs = [str(p) for p in path.walk(root)]
children = [p.name for p in path.iterdir(root)]
`, dir))

	assert.Equal(t, starlark.True, out["found"])
	assert.Equal(t, starlark.False, out["missing"])
	assert.Equal(t, 2, out["dirs"].(*starlark.List).Len())
	assert.Equal(t, 1, out["children"].(*starlark.List).Len())
}

func TestExpandUser(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	out := exec(t, `
expanded = path.expand_user("~/dotfiles")
literal = path.expand_user("a/b")
`)
	assert.True(t, out["expanded"].(*pathlib.Path).Equal(pathlib.Parse(home).Join("dotfiles")))
	assert.True(t, out["literal"].(*pathlib.Path).Equal(pathlib.Parse("a/b")))
}
