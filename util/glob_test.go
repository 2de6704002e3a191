package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompileGlobs(t *testing.T) {
	cases := []struct {
		globs []string
		input string
		match bool
	}{
		{[]string{"*.txt"}, "a.txt", true},
		{[]string{"*.txt"}, "a/b.txt", false},
		{[]string{"**/*.txt"}, "a/b.txt", true},
		{[]string{"a?c"}, "abc", true},
		{[]string{"a?c"}, "ac", false},
		{[]string{"**/.git"}, "x/y/.git", true},
		{[]string{"**/.git"}, ".git", false},
		{[]string{"*.txt", "*.md"}, "README.md", true},
		{[]string{`\*`}, "*", true},
		{[]string{`\*`}, "a", false},
	}
	for _, c := range cases {
		t.Run(c.input, func(t *testing.T) {
			re, err := CompileGlobs(c.globs)
			require.NoError(t, err)
			assert.Equal(t, c.match, re.MatchString(c.input))
		})
	}
}

func TestCompileGlobsInvalidEscape(t *testing.T) {
	_, err := CompileGlobs([]string{`a\q`})
	assert.Error(t, err)

	_, err = CompileGlobs([]string{`a\`})
	assert.Error(t, err)
}
