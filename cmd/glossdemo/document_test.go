package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"git.sr.ht/~rockorager/gloss"
)

func TestDocumentIsRectangular(t *testing.T) {
	for _, light := range []bool{true, false} {
		r := gloss.NewRenderer(gloss.Options{LightBackground: light})
		doc := document(r, 96, 0)
		lines := strings.Split(doc, "\n")
		require.NotEmpty(t, lines)
		want := r.Width(lines[0])
		for i, line := range lines {
			assert.Equal(t, want, r.Width(line), "line %d", i)
		}
	}
}

func TestDocumentMaxWidth(t *testing.T) {
	r := gloss.NewRenderer(gloss.Options{})
	doc := document(r, 96, 40)
	assert.Equal(t, 40, r.Width(doc))
}

func TestStatusLineWidth(t *testing.T) {
	r := gloss.NewRenderer(gloss.Options{})
	s := newStyles(r)
	line := s.statusLine(96)
	assert.Equal(t, 96, r.Width(line))
	assert.Equal(t, 1, gloss.Height(line))
}

func TestDialogFillsCanvas(t *testing.T) {
	r := gloss.NewRenderer(gloss.Options{})
	s := newStyles(r)
	dialog := s.dialog(96)
	w, h := r.Size(dialog)
	assert.Equal(t, 96, w)
	assert.Equal(t, 9, h)
	assert.Contains(t, dialog, "猫咪")
}

func TestNewLogger(t *testing.T) {
	_, err := newLogger("debug")
	assert.NoError(t, err)
	_, err = newLogger("loud")
	assert.Error(t, err)
}
