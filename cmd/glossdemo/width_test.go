package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"git.sr.ht/~rockorager/gloss"
)

func TestParseWidthMethod(t *testing.T) {
	tests := []struct {
		input    string
		expected gloss.WidthMethod
	}{
		{"unicode", gloss.UnicodeStd},
		{"WCWidth", gloss.WCWidth},
		{"no-zwj", gloss.NoZWJ},
	}
	for _, test := range tests {
		t.Run(test.input, func(t *testing.T) {
			m, err := parseWidthMethod(test.input)
			require.NoError(t, err)
			assert.Equal(t, test.expected, m)
		})
	}
	_, err := parseWidthMethod("wide")
	assert.Error(t, err)
}

func TestMeasure(t *testing.T) {
	r := gloss.NewRenderer(gloss.Options{})
	assert.Equal(t, "4\n", measure(r, "猫咪", false))
	assert.Equal(t, "3\n+---+\n|abc|\n", measure(r, "abc", true))
}

func TestWidthCmd(t *testing.T) {
	astronaut := "\U0001F469\u200D\U0001F680"
	tests := []struct {
		name     string
		args     []string
		stdin    string
		expected string
	}{
		{
			name:     "argument",
			args:     []string{"width", astronaut},
			expected: "2\n",
		},
		{
			name:     "wcwidth",
			args:     []string{"width", "--method", "wcwidth", astronaut},
			expected: "4\n",
		},
		{
			name:     "stdin",
			args:     []string{"width"},
			stdin:    "hello\n",
			expected: "5\n",
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			var out bytes.Buffer
			cmd := newRootCmd()
			cmd.SetArgs(test.args)
			cmd.SetIn(strings.NewReader(test.stdin))
			cmd.SetOut(&out)
			cmd.SetErr(&bytes.Buffer{})
			require.NoError(t, cmd.Execute())
			assert.Equal(t, test.expected, out.String())
		})
	}
}

func TestWidthCmdUnknownMethod(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetArgs([]string{"width", "--method", "nope", "x"})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	assert.Error(t, cmd.Execute())
}
