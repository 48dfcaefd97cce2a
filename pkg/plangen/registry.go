package plangen

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
)

// CatalogEntry binds one predefined endgame to its canonical position
// and its pre-rendered planner input file on disk.
type CatalogEntry struct {
	Name      string
	Ordinal   int
	FEN       string
	InputFile string
}

// The fixed catalogue. Input files are authored by hand and shipped
// next to the planner, not rendered from the template at request time.
var predefined = []struct {
	name string
	fen  string
}{
	{"PUSH", "7k/8/4Q1K1/8/8/8/8/8 w - - 0 1"},
	{"POP", "1k6/8/K1R5/8/8/8/8/2R5 w - - 0 1"},
	{"ADD", "8/8/8/3k4/8/3K4/5Q2/8 w - - 0 1"},
	{"SUB", "6k1/8/5K2/8/8/8/1R6/8 w - - 0 1"},
	{"JMP", "3k4/8/3K4/8/8/8/8/6QQ w - - 0 1"},
	{"JZ", "8/8/8/8/8/2k5/8/RK1R4 w - - 0 1"},
	{"LOAD", "4k3/8/4K3/8/8/8/Q6R/8 w - - 0 1"},
	{"HALT", "k7/8/1K6/8/8/8/7R/8 w - - 0 1"},
}

// Catalog is the immutable predefined-endgame table. Build it once at
// startup with NewCatalog and pass it to whoever needs lookups.
type Catalog struct {
	entries []CatalogEntry
}

// NewCatalog builds the catalog with input files rooted at dir.
func NewCatalog(dir string) *Catalog {
	entries := make([]CatalogEntry, 0, len(predefined))
	for i, p := range predefined {
		entries = append(entries, CatalogEntry{
			Name:      p.name,
			Ordinal:   i + 1,
			FEN:       p.fen,
			InputFile: filepath.Join(dir, strings.ToLower(p.name)+".wff"),
		})
	}
	return &Catalog{entries: entries}
}

// ordinalSelector reports whether selector is a canonical base-10
// positive integer: leading digit 1-9, digits only, no sign and no
// leading zeros. Anything else is treated as a display name.
func ordinalSelector(selector string) (int, bool) {
	if selector == "" || selector[0] < '1' || selector[0] > '9' {
		return 0, false
	}
	for i := 1; i < len(selector); i++ {
		if selector[i] < '0' || selector[i] > '9' {
			return 0, false
		}
	}
	n, err := strconv.Atoi(selector)
	if err != nil {
		return 0, false
	}
	return n, true
}

// Resolve accepts an exact display name or a 1-based ordinal string and
// returns the bound entry. Anything else is ErrUnknownEndgame.
func (c *Catalog) Resolve(selector string) (CatalogEntry, error) {
	if n, ok := ordinalSelector(selector); ok {
		if n > len(c.entries) {
			return CatalogEntry{}, fmt.Errorf("%w: ordinal %d out of range", ErrUnknownEndgame, n)
		}
		return c.entries[n-1], nil
	}
	for _, e := range c.entries {
		if e.Name == selector {
			return e, nil
		}
	}
	return CatalogEntry{}, fmt.Errorf("%w: %q", ErrUnknownEndgame, selector)
}

// Entries returns the catalogue in its fixed order.
func (c *Catalog) Entries() []CatalogEntry {
	out := make([]CatalogEntry, len(c.entries))
	copy(out, c.entries)
	return out
}
