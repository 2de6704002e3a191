// Package path exposes path values to Starlark programs.
package path

import (
	"fmt"
	"iter"
	"path/filepath"

	"github.com/pgavlin/pathlib"
	"github.com/pgavlin/starlark-go/starlark"
	"github.com/pgavlin/starlark-go/starlarkstruct"
)

var Module = &starlarkstruct.Module{
	Name: "path",
	Members: starlark.StringDict{
		"sep": starlark.String(string(filepath.Separator)),

		"parse":       starlark.NewBuiltin("path.parse", parse),
		"join":        starlark.NewBuiltin("path.join", join),
		"cwd":         starlark.NewBuiltin("path.cwd", cwd),
		"home":        starlark.NewBuiltin("path.home", home),
		"exists":      starlark.NewBuiltin("path.exists", exists),
		"absolute":    starlark.NewBuiltin("path.absolute", absolute),
		"resolve":     starlark.NewBuiltin("path.resolve", resolve),
		"expand_user": starlark.NewBuiltin("path.expand_user", expandUser),
		"walk":        starlark.NewBuiltin("path.walk", walk),
		"iterdir":     starlark.NewBuiltin("path.iterdir", iterdir),
	},
}

// def parse(path):
//     """
//     Parses a string into a path value. Any string is a valid path.
//     """
func parse(t *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var raw string
	if err := starlark.UnpackPositionalArgs(fn.Name(), args, kwargs, 1, &raw); err != nil {
		return nil, err
	}
	return pathlib.Parse(raw), nil
}

// def join(path, *elements):
//     """
//     Joins each element onto path in turn. Elements may be strings or path
//     values; an absolute element replaces everything joined so far.
//     """
func join(t *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	if len(kwargs) != 0 {
		return nil, fmt.Errorf("%v: unexpected keyword args", fn.Name())
	}
	if len(args) == 0 {
		return nil, fmt.Errorf("%v: missing argument for path", fn.Name())
	}

	result, err := pathlib.AsPath(args[0])
	if err != nil {
		return nil, err
	}
	for _, arg := range args[1:] {
		elem, err := pathlib.AsPath(arg)
		if err != nil {
			return nil, err
		}
		result = result.JoinPath(elem)
	}
	return result, nil
}

// def cwd():
//     """
//     Returns the process's working directory, queried fresh each call.
//     """
func cwd(t *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	if err := starlark.UnpackPositionalArgs(fn.Name(), args, kwargs, 0); err != nil {
		return nil, err
	}
	return pathlib.Cwd()
}

// def home():
//     """
//     Returns the invoking user's home directory, queried fresh each call.
//     """
func home(t *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	if err := starlark.UnpackPositionalArgs(fn.Name(), args, kwargs, 0); err != nil {
		return nil, err
	}
	return pathlib.Home()
}

// def exists(path):
//     """
//     Returns True if a filesystem entry exists at the given path. Missing
//     paths and permission failures return False.
//     """
func exists(t *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	p, err := unpackPath(fn, args, kwargs)
	if err != nil {
		return nil, err
	}
	ok, err := p.Exists()
	if err != nil {
		return nil, err
	}
	return starlark.Bool(ok), nil
}

// def absolute(path):
//     """
//     Anchors a relative path at the working directory. Purely lexical: "."
//     and ".." segments are not collapsed and symlinks are not followed.
//     """
func absolute(t *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	p, err := unpackPath(fn, args, kwargs)
	if err != nil {
		return nil, err
	}
	return p.Absolute()
}

// def resolve(path):
//     """
//     Returns the canonical absolute form of path, following symlinks for
//     the portion that exists. A leading "~" is treated as a literal
//     segment; call expand_user first for home-relative behavior.
//     """
func resolve(t *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	p, err := unpackPath(fn, args, kwargs)
	if err != nil {
		return nil, err
	}
	return p.Resolve()
}

// def expand_user(path):
//     """
//     Replaces a leading "~" or "~username" segment with the corresponding
//     home directory. Fails if the named user does not exist.
//     """
func expandUser(t *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	p, err := unpackPath(fn, args, kwargs)
	if err != nil {
		return nil, err
	}
	return p.ExpandUser()
}

// def walk(path):
//     """
//     Returns an iterable of the directories reachable from path, including
//     path itself, depth-first and top-down. A missing or non-directory
//     root yields nothing.
//     """
func walk(t *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	p, err := unpackPath(fn, args, kwargs)
	if err != nil {
		return nil, err
	}
	return &pathSeq{name: "path.walk", seq: p.Walk}, nil
}

// def iterdir(path):
//     """
//     Returns an iterable of the immediate children of path.
//     """
func iterdir(t *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	p, err := unpackPath(fn, args, kwargs)
	if err != nil {
		return nil, err
	}
	return &pathSeq{name: "path.iterdir", seq: p.IterDir}, nil
}

func unpackPath(fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (*pathlib.Path, error) {
	var v starlark.Value
	if err := starlark.UnpackPositionalArgs(fn.Name(), args, kwargs, 1, &v); err != nil {
		return nil, err
	}
	return pathlib.AsPath(v)
}

// pathSeq adapts a lazy sequence of paths to the Starlark iteration
// protocol. Each call to Iterate begins a fresh traversal.
type pathSeq struct {
	name string
	seq  func() iter.Seq[*pathlib.Path]
}

var _ starlark.Iterable = (*pathSeq)(nil)

func (s *pathSeq) Type() string          { return s.name }
func (s *pathSeq) String() string        { return "<" + s.name + ">" }
func (s *pathSeq) Freeze()               {}
func (s *pathSeq) Truth() starlark.Bool  { return starlark.True }
func (s *pathSeq) Hash() (uint32, error) { return 0, fmt.Errorf("unhashable type: %s", s.name) }

func (s *pathSeq) Iterate() starlark.Iterator {
	next, stop := iter.Pull(s.seq())
	return &pathIterator{next: next, stop: stop}
}

type pathIterator struct {
	next func() (*pathlib.Path, bool)
	stop func()
}

func (it *pathIterator) Next(v *starlark.Value) bool {
	p, ok := it.next()
	if !ok {
		return false
	}
	*v = p
	return true
}

func (it *pathIterator) Done() {
	it.stop()
}
