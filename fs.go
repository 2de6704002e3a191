package pathlib

import (
	"errors"
	"io/fs"
	"os"
	"os/user"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/mitchellh/go-homedir"
)

func init() {
	// Home must be re-read on every call so that a change to the relevant
	// environment variable mid-process is honored.
	homedir.DisableCache = true
}

// Exists reports whether p refers to an existing filesystem entry of any
// kind. Lookup failures that mean "nothing is there" (a missing path, a
// permission failure, or a path that traverses through a plain file)
// report false rather than an error; any other stat failure (e.g. an
// embedded NUL byte on platforms that reject it) is returned as-is.
func (p *Path) Exists() (bool, error) {
	_, err := os.Stat(p.String())
	switch {
	case err == nil:
		return true, nil
	case isLookupFailure(err):
		return false, nil
	default:
		return false, err
	}
}

func isLookupFailure(err error) bool {
	return errors.Is(err, fs.ErrNotExist) ||
		errors.Is(err, fs.ErrPermission) ||
		errors.Is(err, syscall.ENOTDIR)
}

// Absolute returns p unchanged if it is already absolute and the working
// directory joined with p otherwise. The operation is purely lexical: "."
// and ".." segments are not collapsed and symlinks are not followed.
func (p *Path) Absolute() (*Path, error) {
	if p.IsAbs() {
		return p, nil
	}
	cwd, err := Cwd()
	if err != nil {
		return nil, err
	}
	return cwd.JoinPath(p), nil
}

// Resolve returns the canonical absolute form of p: relative paths are
// anchored at the working directory, ".." segments collapse, and symlinks
// are followed for the portion of the path that exists.
//
// A leading "~" is not a home-directory shorthand here: it resolves as a
// literal segment relative to the working directory. Callers that want
// home-relative behavior must call ExpandUser before Resolve.
func (p *Path) Resolve() (*Path, error) {
	abs, err := p.Absolute()
	if err != nil {
		return nil, err
	}
	resolved, err := evalSymlinks(filepath.Clean(abs.String()))
	if err != nil {
		return nil, err
	}
	return Parse(resolved), nil
}

// evalSymlinks resolves the longest existing prefix of path and reattaches
// the missing remainder lexically. A prefix that traverses through a plain
// file counts as missing, so resolution stays non-strict there too.
func evalSymlinks(path string) (string, error) {
	resolved, err := filepath.EvalSymlinks(path)
	if err == nil {
		return resolved, nil
	}
	if !errors.Is(err, fs.ErrNotExist) && !errors.Is(err, syscall.ENOTDIR) {
		return "", err
	}

	dir := filepath.Dir(path)
	if dir == path {
		return path, nil
	}
	resolved, err = evalSymlinks(dir)
	if err != nil {
		return "", err
	}
	return filepath.Join(resolved, filepath.Base(path)), nil
}

// ExpandUser replaces a leading "~" segment with the invoking user's home
// directory and a leading "~username" segment with that user's home
// directory. Paths without a tilde prefix are returned unchanged. An
// unknown username surfaces the lookup error from os/user.
func (p *Path) ExpandUser() (*Path, error) {
	if p.IsAbs() || len(p.segments) == 0 || !strings.HasPrefix(p.segments[0], "~") {
		return p, nil
	}

	rest := &Path{segments: p.segments[1:]}
	if p.segments[0] == "~" {
		home, err := Home()
		if err != nil {
			return nil, err
		}
		return home.JoinPath(rest), nil
	}

	u, err := user.Lookup(p.segments[0][1:])
	if err != nil {
		return nil, err
	}
	return Parse(u.HomeDir).JoinPath(rest), nil
}

// Home returns the invoking user's home directory, queried fresh on each
// call.
func Home() (*Path, error) {
	home, err := homedir.Dir()
	if err != nil {
		return nil, err
	}
	return Parse(home), nil
}

// Cwd returns the process's working directory, queried fresh on each call.
func Cwd() (*Path, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, err
	}
	return Parse(cwd), nil
}
