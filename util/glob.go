package util

import (
	"errors"
	"regexp"
	"strings"
)

// CompileGlobs compiles a set of glob patterns into a single anchored
// regular expression that matches a path when any of the patterns does.
//
// Pattern syntax:
//
//	*  matches any run of characters within a single segment
//	** matches any run of characters, crossing segment boundaries
//	?  matches a single character
//	\c escapes one of \ * ? [ ]
func CompileGlobs(globs []string) (*regexp.Regexp, error) {
	var pattern strings.Builder
	pattern.WriteByte('^')
	for i, glob := range globs {
		if i > 0 {
			pattern.WriteByte('|')
		}
		pattern.WriteByte('(')
		if err := appendGlob(&pattern, glob); err != nil {
			return nil, err
		}
		pattern.WriteByte(')')
	}
	pattern.WriteByte('$')

	return regexp.Compile(pattern.String())
}

func appendGlob(pattern *strings.Builder, glob string) error {
	for i := 0; i < len(glob); i++ {
		switch b := glob[i]; b {
		case '\\':
			if i == len(glob)-1 {
				return errors.New("invalid escape sequence")
			}
			switch c := glob[i+1]; c {
			case '\\', '*', '?', '[', ']':
				pattern.WriteByte(b)
				pattern.WriteByte(c)
				i++
			default:
				return errors.New("invalid escape sequence")
			}
		case '*':
			if i < len(glob)-1 && glob[i+1] == '*' {
				pattern.WriteString(".*")
				i++
			} else {
				pattern.WriteString("[^/]*")
			}
		case '?':
			pattern.WriteByte('.')
		case '.', '+', '(', ')', '|', '{', '}', '^', '$', '[', ']':
			pattern.WriteByte('\\')
			pattern.WriteByte(b)
		default:
			pattern.WriteByte(b)
		}
	}
	return nil
}
