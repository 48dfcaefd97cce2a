package plangen

import (
	"fmt"
	"regexp"
	"strings"
)

// Conditional section markers. The planner input is a Lisp world file,
// so the markers live behind comment syntax the planner never sees
// anyway; both marker lines are dropped from the rendered output.
const (
	sectionOpen  = ";;#if:"
	sectionClose = ";;#endif"
)

var placeholderPattern = regexp.MustCompile(`\{\{([A-Z0-9_]+)\}\}`)

// MissingMode controls what Render does with a placeholder that has no
// entry in the value map.
type MissingMode int

const (
	// MissingKeep leaves the bracketed token in the output untouched.
	MissingKeep MissingMode = iota
	// MissingFail aborts the render with ErrMissingValue.
	MissingFail
)

// ConditionSet is the set of tags that select conditional sections.
type ConditionSet map[string]bool

func (c ConditionSet) Has(tag string) bool {
	return c[tag]
}

// Render evaluates conditional sections of doc against tags, then
// substitutes {{NAME}} placeholders from values.
//
// Sections are flat: a close marker always ends the nearest open
// section, and an open marker seen while skipping replaces the skip
// state rather than nesting. One boolean, no stack.
func Render(doc string, tags ConditionSet, values map[string]string, missing MissingMode) (string, error) {
	var kept []string
	skipping := false
	for _, line := range strings.Split(doc, "\n") {
		trimmed := strings.TrimSpace(line)
		switch {
		case strings.HasPrefix(trimmed, sectionOpen):
			tag := strings.TrimSpace(strings.TrimPrefix(trimmed, sectionOpen))
			skipping = !tags.Has(tag)
		case trimmed == sectionClose:
			skipping = false
		case !skipping:
			kept = append(kept, line)
		}
	}

	var missErr error
	out := placeholderPattern.ReplaceAllStringFunc(strings.Join(kept, "\n"), func(tok string) string {
		name := placeholderPattern.FindStringSubmatch(tok)[1]
		v, ok := values[name]
		if !ok {
			if missing == MissingFail && missErr == nil {
				missErr = fmt.Errorf("%w: %s", ErrMissingValue, name)
			}
			return tok
		}
		return v
	})
	if missErr != nil {
		return "", missErr
	}
	return out, nil
}
