package plangen

import (
	"fmt"
	"sort"
	"strings"

	"github.com/notnil/chess"
)

// PieceType is the logical type of a white non-king piece.
type PieceType string

const (
	Queen PieceType = "queen"
	Rook  PieceType = "rook"
	// Unknown marks a piece letter with no entry in the type table.
	Unknown PieceType = "unknown"
)

var pieceTypes = map[byte]PieceType{
	'Q': Queen,
	'R': Rook,
}

// Square is a board square in planner coordinates: file letter A-H,
// rank number 1-8.
type Square struct {
	File byte
	Rank int
}

func (s Square) FileString() string {
	return string(s.File)
}

// Piece is one white non-king piece of the position.
type Piece struct {
	Type PieceType
	Square
}

// Placement holds the facts extracted from one whitelisted position:
// both king squares plus up to two non-king white pieces, in board
// order (rank 8 first, file A first).
type Placement struct {
	WhiteKing Square
	BlackKing Square
	Pieces    []Piece
}

// Material configurations the planner templates cover: one or two white
// heavy pieces against a lone black king.
var supportedMaterial = map[string]bool{
	"KQ":  true,
	"KR":  true,
	"KQQ": true,
	"KQR": true,
	"KRR": true,
}

// SupportedPosition reports whether fen parses as a legal position whose
// material signature is one of the supported endgame configurations.
func SupportedPosition(fen string) bool {
	fenFunc, err := chess.FEN(fen)
	if err != nil {
		return false
	}
	pos := chess.NewGame(fenFunc).Position()

	whiteKings := 0
	blackKings := 0
	var letters []string
	for sq := 0; sq < 64; sq++ {
		p := pos.Board().Piece(chess.Square(sq))
		switch {
		case p == chess.NoPiece:
		case p.Color() == chess.Black:
			if p.Type() != chess.King {
				return false
			}
			blackKings++
		case p.Type() == chess.King:
			whiteKings++
		case p.Type() == chess.Queen:
			letters = append(letters, "Q")
		case p.Type() == chess.Rook:
			letters = append(letters, "R")
		default:
			return false
		}
	}
	if whiteKings != 1 || blackKings != 1 {
		return false
	}
	sort.Strings(letters)
	return supportedMaterial["K"+strings.Join(letters, "")]
}

// ExtractPlacements decodes the board field of fen into placement facts.
// Callers must gate on SupportedPosition first: extraction assumes the
// only black piece is the king and that white has at most two non-king
// pieces.
func ExtractPlacements(fen string) (Placement, error) {
	fields := strings.Fields(fen)
	if len(fields) == 0 {
		return Placement{}, fmt.Errorf("empty position string")
	}
	ranks := strings.Split(fields[0], "/")
	if len(ranks) != 8 {
		return Placement{}, fmt.Errorf("board field has %d ranks, want 8", len(ranks))
	}

	var pl Placement
	for r, rank := range ranks {
		file := 0
		for i := 0; i < len(rank); i++ {
			c := rank[i]
			if c >= '1' && c <= '8' {
				file += int(c - '0')
				continue
			}
			sq := Square{File: byte('A' + file), Rank: 8 - r}
			switch {
			case c == 'K':
				pl.WhiteKing = sq
			case c >= 'A' && c <= 'Z':
				t, ok := pieceTypes[c]
				if !ok {
					t = Unknown
				}
				pl.Pieces = append(pl.Pieces, Piece{Type: t, Square: sq})
			default:
				// whitelist guarantees the only lowercase piece is the king
				pl.BlackKing = sq
			}
			file++
		}
		if file != 8 {
			return Placement{}, fmt.Errorf("rank %d decodes to %d files, want 8", 8-r, file)
		}
	}
	return pl, nil
}
