package plangen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	queenFEN    = "7k/8/4Q1K1/8/8/8/8/8 w - - 0 1"
	twoRooksFEN = "1k6/8/K1R5/8/8/8/8/2R5 w - - 0 1"
)

func TestSupportedPosition(t *testing.T) {
	assert.True(t, SupportedPosition(queenFEN))
	assert.True(t, SupportedPosition(twoRooksFEN))

	// pawn is not a supported piece
	assert.False(t, SupportedPosition("7k/8/6K1/8/8/8/4P3/8 w - - 0 1"))
	// extra black material
	assert.False(t, SupportedPosition("6rk/8/6K1/8/8/8/4Q3/8 w - - 0 1"))
	// three white pieces
	assert.False(t, SupportedPosition("7k/8/6K1/8/8/8/QQQ5/8 w - - 0 1"))
	// not a position string at all
	assert.False(t, SupportedPosition("definitely not a fen"))
}

func TestExtractPlacementsQueenEndgame(t *testing.T) {
	pl, err := ExtractPlacements(queenFEN)
	require.NoError(t, err)

	assert.Equal(t, Square{File: 'G', Rank: 6}, pl.WhiteKing)
	assert.Equal(t, Square{File: 'H', Rank: 8}, pl.BlackKing)
	require.Len(t, pl.Pieces, 1)
	assert.Equal(t, Piece{Type: Queen, Square: Square{File: 'E', Rank: 6}}, pl.Pieces[0])
}

func TestExtractPlacementsTwoRooks(t *testing.T) {
	pl, err := ExtractPlacements(twoRooksFEN)
	require.NoError(t, err)

	assert.Equal(t, Square{File: 'A', Rank: 6}, pl.WhiteKing)
	assert.Equal(t, Square{File: 'B', Rank: 8}, pl.BlackKing)
	require.Len(t, pl.Pieces, 2)
	assert.Equal(t, Piece{Type: Rook, Square: Square{File: 'C', Rank: 6}}, pl.Pieces[0])
	assert.Equal(t, Piece{Type: Rook, Square: Square{File: 'C', Rank: 1}}, pl.Pieces[1])
}

func TestExtractPlacementsDeterministic(t *testing.T) {
	first, err := ExtractPlacements(twoRooksFEN)
	require.NoError(t, err)
	second, err := ExtractPlacements(twoRooksFEN)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestExtractPlacementsUnknownPieceType(t *testing.T) {
	// bishops never pass the whitelist, but the type table must still map
	// unlisted letters to the explicit unknown sentinel
	pl, err := ExtractPlacements("7k/8/4B1K1/8/8/8/8/8 w - - 0 1")
	require.NoError(t, err)
	require.Len(t, pl.Pieces, 1)
	assert.Equal(t, Unknown, pl.Pieces[0].Type)
}

func TestExtractPlacementsMalformedBoard(t *testing.T) {
	_, err := ExtractPlacements("7k/8/8 w - - 0 1")
	assert.Error(t, err)

	_, err = ExtractPlacements("7k/8/4Q1K11/8/8/8/8/8 w - - 0 1")
	assert.Error(t, err)
}

func TestFileRankRoundTrip(t *testing.T) {
	for f := 0; f < 8; f++ {
		for r := 0; r < 8; r++ {
			sq := Square{File: byte('A' + f), Rank: 8 - r}
			assert.Equal(t, f, int(sq.File-'A'))
			assert.Equal(t, r, 8-sq.Rank)
		}
	}
}
