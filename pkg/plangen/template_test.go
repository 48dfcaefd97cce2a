package plangen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderPlainTextUnchanged(t *testing.T) {
	doc := "(world\n  (something fixed)\n)\n"

	for _, tags := range []ConditionSet{nil, {}, {"two-piece": true, "queen": true}} {
		out, err := Render(doc, tags, nil, MissingKeep)
		require.NoError(t, err)
		assert.Equal(t, doc, out)
	}
}

func TestRenderSectionSelection(t *testing.T) {
	doc := ";;#if: two-piece\nsecond piece line\n;;#endif\nalways here\n"

	out, err := Render(doc, ConditionSet{"two-piece": true}, nil, MissingKeep)
	require.NoError(t, err)
	assert.Equal(t, "second piece line\nalways here\n", out)

	out, err = Render(doc, ConditionSet{}, nil, MissingKeep)
	require.NoError(t, err)
	assert.Equal(t, "always here\n", out)
}

func TestRenderMarkersNeverEmitted(t *testing.T) {
	doc := ";;#if: queen\nkept\n;;#endif\n"
	out, err := Render(doc, ConditionSet{"queen": true}, nil, MissingKeep)
	require.NoError(t, err)
	assert.NotContains(t, out, ";;#if:")
	assert.NotContains(t, out, ";;#endif")
}

func TestRenderFlatSections(t *testing.T) {
	// an open marker inside a skipped stretch replaces the skip state
	// instead of nesting; the close marker ends whatever is open
	doc := ";;#if: absent\na\n;;#if: present\nb\n;;#endif\nc"
	out, err := Render(doc, ConditionSet{"present": true}, nil, MissingKeep)
	require.NoError(t, err)
	assert.Equal(t, "b\nc", out)
}

func TestRenderSubstitution(t *testing.T) {
	doc := "(white-king {{WK_FILE}} {{WK_RANK}})"
	out, err := Render(doc, nil, map[string]string{"WK_FILE": "G", "WK_RANK": "6"}, MissingKeep)
	require.NoError(t, err)
	assert.Equal(t, "(white-king G 6)", out)
}

func TestRenderMissingValueKeep(t *testing.T) {
	out, err := Render("before {{NOPE}} after", nil, map[string]string{}, MissingKeep)
	require.NoError(t, err)
	assert.Equal(t, "before {{NOPE}} after", out)
}

func TestRenderMissingValueFail(t *testing.T) {
	_, err := Render("before {{NOPE}} after", nil, map[string]string{}, MissingFail)
	assert.ErrorIs(t, err, ErrMissingValue)
}
