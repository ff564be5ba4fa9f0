/*
 * kittygo - legal chess move generation and perft engine
 *
 * MIT License
 *
 * Copyright (c) 2026 kittygo contributors
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

// Package position holds BoardState, the immutable board representation
// the rest of the engine operates on, its FEN parser and printer, and the
// pure copy-make MakeMove transform. BoardState never mutates after
// construction: MakeMove takes a BoardState by value and returns a new
// one, so a move generator walking a search tree never needs to undo
// anything.
package position

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/kittygo/kittygo/assert"
	"github.com/kittygo/kittygo/internal/types"
)

// StartFEN is the standard chess starting position.
const StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// BoardState is a complete, immutable snapshot of a chess position.
type BoardState struct {
	Pieces   [types.ColorLength][types.PieceLength]types.Bitboard
	occupied [types.ColorLength]types.Bitboard
	all      types.Bitboard

	SideToMove     types.Color
	CastleRights   types.CastlingRights
	EpSquare       types.Square
	HalfmoveClock  int
	FullmoveNumber int
}

// Occupied returns every square occupied by a piece of color c.
func (b *BoardState) Occupied(c types.Color) types.Bitboard {
	return b.occupied[c]
}

// AllOccupied returns every occupied square on the board.
func (b *BoardState) AllOccupied() types.Bitboard {
	return b.all
}

// PieceOn reports what, if anything, occupies sq.
func (b *BoardState) PieceOn(sq types.Square) (p types.Piece, c types.Color, ok bool) {
	if !b.all.Has(sq) {
		return types.PieceNone, types.ColorNone, false
	}
	for col := types.Color(0); col < types.ColorLength; col++ {
		for pc := types.Piece(0); pc < types.PieceLength; pc++ {
			if b.Pieces[col][pc].Has(sq) {
				return pc, col, true
			}
		}
	}
	// all and the per-piece tables disagree; only reachable from a bug.
	if assert.DEBUG {
		assert.Assert(false, "occupancy/piece table mismatch at %s", sq.String())
	}
	return types.PieceNone, types.ColorNone, false
}

// KingSquare returns the square of c's king.
func (b *BoardState) KingSquare(c types.Color) types.Square {
	return b.Pieces[c][types.King].Lsb()
}

func (b *BoardState) recompute() {
	for c := types.Color(0); c < types.ColorLength; c++ {
		var occ types.Bitboard
		for p := types.Piece(0); p < types.PieceLength; p++ {
			occ |= b.Pieces[c][p]
		}
		b.occupied[c] = occ
	}
	b.all = b.occupied[types.White] | b.occupied[types.Black]
}

// FromFEN parses a Forsyth-Edwards Notation string into a BoardState.
func FromFEN(fen string) (BoardState, error) {
	var b BoardState
	fields := strings.Fields(strings.TrimSpace(fen))
	if len(fields) < 4 {
		return BoardState{}, fmt.Errorf("position: invalid FEN %q: expected at least 4 fields, got %d", fen, len(fields))
	}

	ranks := strings.Split(fields[0], "/")
	if len(ranks) != 8 {
		return BoardState{}, fmt.Errorf("position: invalid FEN %q: expected 8 ranks, got %d", fen, len(ranks))
	}
	for r, rankStr := range ranks {
		file := 0
		for _, ch := range rankStr {
			switch {
			case ch >= '1' && ch <= '8':
				file += int(ch - '0')
			default:
				p, col, ok := types.PieceFromChar(byte(ch))
				if !ok {
					return BoardState{}, fmt.Errorf("position: invalid FEN %q: bad placement character %q", fen, ch)
				}
				if file >= 8 {
					return BoardState{}, fmt.Errorf("position: invalid FEN %q: rank %d overflows", fen, r+1)
				}
				sq := types.SquareOf(types.File(file), types.Rank(r))
				b.Pieces[col][p].PushSquare(sq)
				file++
			}
		}
		if file != 8 {
			return BoardState{}, fmt.Errorf("position: invalid FEN %q: rank %d has %d files, want 8", fen, r+1, file)
		}
	}

	switch fields[1] {
	case "w":
		b.SideToMove = types.White
	case "b":
		b.SideToMove = types.Black
	default:
		return BoardState{}, fmt.Errorf("position: invalid FEN %q: bad side to move %q", fen, fields[1])
	}

	if fields[2] != "-" {
		for _, ch := range fields[2] {
			switch ch {
			case 'K':
				b.CastleRights |= types.CastleWhiteOO
			case 'Q':
				b.CastleRights |= types.CastleWhiteOOO
			case 'k':
				b.CastleRights |= types.CastleBlackOO
			case 'q':
				b.CastleRights |= types.CastleBlackOOO
			default:
				return BoardState{}, fmt.Errorf("position: invalid FEN %q: bad castling character %q", fen, ch)
			}
		}
	}

	if fields[3] == "-" {
		b.EpSquare = types.SqNone
	} else {
		b.EpSquare = types.MakeSquare(fields[3])
		if b.EpSquare == types.SqNone {
			return BoardState{}, fmt.Errorf("position: invalid FEN %q: bad en passant square %q", fen, fields[3])
		}
	}

	b.HalfmoveClock = 0
	b.FullmoveNumber = 1
	if len(fields) >= 5 {
		n, err := strconv.Atoi(fields[4])
		if err != nil || n < 0 {
			return BoardState{}, fmt.Errorf("position: invalid FEN %q: bad halfmove clock %q", fen, fields[4])
		}
		b.HalfmoveClock = n
	}
	if len(fields) >= 6 {
		n, err := strconv.Atoi(fields[5])
		if err != nil || n < 1 {
			return BoardState{}, fmt.Errorf("position: invalid FEN %q: bad fullmove number %q", fen, fields[5])
		}
		b.FullmoveNumber = n
	}

	b.recompute()
	return b, nil
}

// FEN renders b back into Forsyth-Edwards Notation.
func (b *BoardState) FEN() string {
	var sb strings.Builder
	for r := types.Rank8; r < types.RankNone; r++ {
		empty := 0
		for f := types.FileA; f < types.FileNone; f++ {
			sq := types.SquareOf(f, r)
			p, c, ok := b.PieceOn(sq)
			if !ok {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			sb.WriteByte(types.FenChar(c, p))
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		if r != types.Rank1 {
			sb.WriteByte('/')
		}
	}
	sb.WriteByte(' ')
	sb.WriteString(b.SideToMove.String())
	sb.WriteByte(' ')
	sb.WriteString(types.CastlingRightsString(b.CastleRights))
	sb.WriteByte(' ')
	sb.WriteString(b.EpSquare.String())
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(b.HalfmoveClock))
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(b.FullmoveNumber))
	return sb.String()
}

// String renders an ASCII board diagram followed by the side to move,
// castling rights, en-passant square and move clocks.
func (b *BoardState) String() string {
	var sb strings.Builder
	for r := types.Rank8; r < types.RankNone; r++ {
		sb.WriteString(r.String())
		sb.WriteString("  ")
		for f := types.FileA; f < types.FileNone; f++ {
			p, c, ok := b.PieceOn(types.SquareOf(f, r))
			if !ok {
				sb.WriteByte('.')
			} else {
				sb.WriteByte(types.FenChar(c, p))
			}
			sb.WriteByte(' ')
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("   a b c d e f g h\n")
	fmt.Fprintf(&sb, "side=%s castle=%s ep=%s half=%d full=%d\n",
		b.SideToMove.String(), types.CastlingRightsString(b.CastleRights), b.EpSquare.String(),
		b.HalfmoveClock, b.FullmoveNumber)
	return sb.String()
}

// MakeMove applies m to b and returns the resulting position. b is never
// mutated. Steps, in order: lift the piece off its source; resolve a
// capture (ordinary or en passant); place the piece, or its promotion, on
// the destination; move the rook on a castle; update castling rights; update the en-passant square; update the halfmove clock;
// flip the side to move; advance the fullmove number on Black's move.
func MakeMove(b BoardState, m types.Move) BoardState {
	next := b
	us := b.SideToMove
	them := us.Flip()
	from, to := m.From(), m.To()
	moved := m.MovedPiece()

	// 1. Move the piece off its source square.
	next.Pieces[us][moved].PopSquare(from)

	// 2. Resolve a capture: the en-passant victim sits behind the
	// destination, any other captured piece on it.
	if m.IsEnPassant() {
		capSq := to.To(us.Flip().MoveDirection())
		next.Pieces[them][types.Pawn].PopSquare(capSq)
	} else if m.IsCapture() {
		for p := types.Piece(0); p < types.PieceLength; p++ {
			if next.Pieces[them][p].Has(to) {
				next.Pieces[them][p].PopSquare(to)
				break
			}
		}
	}

	// 3. Place the moving piece (or its promotion) on the destination.
	placed := moved
	if m.IsPromotion() {
		placed = m.Promoted()
	}
	next.Pieces[us][placed].PushSquare(to)

	// 4. Move the rook on a castle.
	if m.IsCastleKS() {
		rookFrom := types.SquareOf(types.FileH, from.RankOf())
		rookTo := types.SquareOf(types.FileF, from.RankOf())
		next.Pieces[us][types.Rook].MoveSquare(rookFrom, rookTo)
	} else if m.IsCastleQS() {
		rookFrom := types.SquareOf(types.FileA, from.RankOf())
		rookTo := types.SquareOf(types.FileD, from.RankOf())
		next.Pieces[us][types.Rook].MoveSquare(rookFrom, rookTo)
	}

	// 5. Castling rights: clear any right whose home square was vacated
	// or captured on, for both source and destination squares.
	next.CastleRights &^= from.Bb() | to.Bb()

	// 6. En-passant target: set only behind a double push.
	if m.IsDoublePush() {
		next.EpSquare = from.To(us.MoveDirection())
	} else {
		next.EpSquare = types.SqNone
	}

	// 7. Halfmove clock: reset on a pawn move or any capture, else tick.
	if moved == types.Pawn || m.IsCapture() {
		next.HalfmoveClock = 0
	} else {
		next.HalfmoveClock = b.HalfmoveClock + 1
	}

	// 8. Side to move flips; fullmove number advances after Black moves.
	next.SideToMove = them
	if us == types.Black {
		next.FullmoveNumber = b.FullmoveNumber + 1
	}

	// 9. Recompute aggregate occupancy from the updated piece bitboards.
	next.recompute()

	if assert.DEBUG {
		assert.Assert(next.Pieces[us][placed].Has(to), "MakeMove: destination square not occupied after move %s", m.String())
	}
	return next
}
