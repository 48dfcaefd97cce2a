package plangen

import (
	"fmt"
	"os"
	"strconv"
)

// AbsentMarker is substituted for the secondary piece placeholders when
// the position has only one non-king piece. The template references
// them structurally either way, and the planner reads NIL as "no such
// piece".
const AbsentMarker = "NIL"

// Tags the compiler can put in the condition set.
const (
	TagTwoPiece = "two-piece"
	TagQueen    = "queen"
)

// Compiler renders the world-state template for a position and writes
// the planner input file.
type Compiler struct {
	TemplatePath string
	Missing      MissingMode
}

// Compile validates fen against the supported-endgame whitelist,
// extracts its placements and writes the rendered planner input to
// outputPath. Nothing is written on any failure path: the render
// completes in memory first.
func (c *Compiler) Compile(fen, outputPath string) error {
	if !SupportedPosition(fen) {
		return fmt.Errorf("%w: %q", ErrUnsupportedPosition, fen)
	}
	pl, err := ExtractPlacements(fen)
	if err != nil {
		return err
	}
	doc, err := os.ReadFile(c.TemplatePath)
	if err != nil {
		return fmt.Errorf("loading template: %w", err)
	}
	rendered, err := Render(string(doc), Conditions(pl), PlaceholderValues(pl), c.Missing)
	if err != nil {
		return err
	}
	return os.WriteFile(outputPath, []byte(rendered), 0644)
}

// PlaceholderValues builds the substitution map for a placement. King
// and primary piece values are always populated; secondary piece
// placeholders fall back to the absent marker.
func PlaceholderValues(pl Placement) map[string]string {
	values := map[string]string{
		"WHITE_KING_FILE": pl.WhiteKing.FileString(),
		"WHITE_KING_RANK": strconv.Itoa(pl.WhiteKing.Rank),
		"BLACK_KING_FILE": pl.BlackKing.FileString(),
		"BLACK_KING_RANK": strconv.Itoa(pl.BlackKing.Rank),
	}
	for i := 0; i < 2; i++ {
		prefix := fmt.Sprintf("PIECE%d_", i+1)
		if i < len(pl.Pieces) {
			p := pl.Pieces[i]
			values[prefix+"TYPE"] = string(p.Type)
			values[prefix+"FILE"] = p.FileString()
			values[prefix+"RANK"] = strconv.Itoa(p.Rank)
		} else {
			values[prefix+"TYPE"] = AbsentMarker
			values[prefix+"FILE"] = AbsentMarker
			values[prefix+"RANK"] = AbsentMarker
		}
	}
	return values
}

// Conditions derives the tag set for a placement: two-piece when a
// second non-king piece is present, queen when the primary piece is
// one.
func Conditions(pl Placement) ConditionSet {
	tags := ConditionSet{}
	if len(pl.Pieces) == 2 {
		tags[TagTwoPiece] = true
	}
	if len(pl.Pieces) > 0 && pl.Pieces[0].Type == Queen {
		tags[TagQueen] = true
	}
	return tags
}
