package pathlib

import (
	"fmt"

	"github.com/pgavlin/starlark-go/starlark"
	"github.com/pgavlin/starlark-go/syntax"
)

// starlark.Value
func (p *Path) Type() string {
	return "path"
}

func (p *Path) Freeze() {} // immutable

func (p *Path) Truth() starlark.Bool {
	return starlark.String(p.String()).Truth()
}

func (p *Path) Hash() (uint32, error) {
	return starlark.String(p.String()).Hash()
}

// starlark.Comparable
func (p *Path) CompareSameType(op syntax.Token, y starlark.Value, depth int) (bool, error) {
	return starlark.String(p.String()).CompareSameType(op, starlark.String(y.(*Path).String()), depth)
}

// starlark.HasAttrs
func (p *Path) Attr(name string) (starlark.Value, error) {
	switch name {
	case "name":
		return starlark.String(p.Name()), nil
	case "suffix":
		return starlark.String(p.Suffix()), nil
	case "stem":
		return starlark.String(p.Stem()), nil
	case "parent":
		return p.Parent(), nil
	case "segments":
		segments := p.segments
		vs := make([]starlark.Value, len(segments))
		for i, s := range segments {
			vs[i] = starlark.String(s)
		}
		return starlark.NewList(vs), nil
	case "is_abs":
		return starlark.Bool(p.IsAbs()), nil
	default:
		return nil, nil
	}
}

func (p *Path) AttrNames() []string {
	return []string{"is_abs", "name", "parent", "segments", "stem", "suffix"}
}

// starlark.HasBinary implements the "/" operator as the join operation:
// p / "file.txt" appends segments, and an absolute right operand wins.
func (p *Path) Binary(op syntax.Token, y starlark.Value, side starlark.Side) (starlark.Value, error) {
	if op != syntax.SLASH {
		return nil, nil
	}
	other, err := AsPath(y)
	if err != nil {
		return nil, nil
	}
	if side == starlark.Right {
		return other.JoinPath(p), nil
	}
	return p.JoinPath(other), nil
}

// AsPath converts a Starlark string or path value into a *Path. Strings
// and path values are accepted interchangeably wherever a path is
// expected.
func AsPath(v starlark.Value) (*Path, error) {
	switch v := v.(type) {
	case *Path:
		return v, nil
	case starlark.String:
		return Parse(string(v)), nil
	default:
		return nil, fmt.Errorf("expected a path or a string, got %s", v.Type())
	}
}
