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

package types

import "fmt"

// Move packs a single chess move into one 32-bit word:
//
//	bits  0- 5  source square
//	bits  6-11  destination square
//	bits 12-15  moved piece
//	bits 16-27  flags (capture, en passant, double push, castle KS/QS)
//	bits 28-31  promoted piece (PieceNone if none)
type Move uint32

// Flag bits, one per mutually-exclusive (mostly) property a move can carry.
const (
	FlagCapture     uint32 = 1 << 0
	FlagEnPassant   uint32 = 1 << 1
	FlagDoublePush  uint32 = 1 << 2
	FlagCastleKS    uint32 = 1 << 3
	FlagCastleQS    uint32 = 1 << 4
)

const (
	moveSrcShift   = 0
	moveDstShift   = 6
	movePieceShift = 12
	moveFlagShift  = 16
	movePromoShift = 28

	moveSqMask    = 0x3F
	movePieceMask = 0xF
)

// MoveNone is the zero move; it never appears in a legal MoveList.
const MoveNone Move = 0

// NewMove packs a move. flags is the OR of any FlagXxx constants; promoted
// is PieceNone unless this is a promotion.
func NewMove(src, dst Square, moved Piece, flags uint32, promoted Piece) Move {
	return Move(uint32(src)<<moveSrcShift |
		uint32(dst)<<moveDstShift |
		uint32(moved)<<movePieceShift |
		flags<<moveFlagShift |
		uint32(promoted)<<movePromoShift)
}

// From returns the move's source square.
func (m Move) From() Square {
	return Square(uint32(m) >> moveSrcShift & moveSqMask)
}

// To returns the move's destination square.
func (m Move) To() Square {
	return Square(uint32(m) >> moveDstShift & moveSqMask)
}

// MovedPiece returns the kind of piece that moved.
func (m Move) MovedPiece() Piece {
	return Piece(uint32(m) >> movePieceShift & movePieceMask)
}

// Promoted returns the promotion piece, or PieceNone if this isn't a
// promotion.
func (m Move) Promoted() Piece {
	return Piece(uint32(m) >> movePromoShift & movePieceMask)
}

// IsPromotion reports whether this move promotes a pawn.
func (m Move) IsPromotion() bool {
	return m.Promoted() != PieceNone
}

func (m Move) flags() uint32 {
	return uint32(m) >> moveFlagShift
}

// IsCapture reports whether this move captures a piece (ordinary or en
// passant). The generator sets it on every capturing move, and MakeMove
// relies on it to remove the captured piece.
func (m Move) IsCapture() bool {
	return m.flags()&FlagCapture != 0
}

// IsEnPassant reports whether this move is an en-passant capture.
func (m Move) IsEnPassant() bool {
	return m.flags()&FlagEnPassant != 0
}

// IsDoublePush reports whether this move is a pawn double push.
func (m Move) IsDoublePush() bool {
	return m.flags()&FlagDoublePush != 0
}

// IsCastleKS reports whether this move is a king-side castle.
func (m Move) IsCastleKS() bool {
	return m.flags()&FlagCastleKS != 0
}

// IsCastleQS reports whether this move is a queen-side castle.
func (m Move) IsCastleQS() bool {
	return m.flags()&FlagCastleQS != 0
}

// IsCastle reports whether this move is a castle of either side.
func (m Move) IsCastle() bool {
	return m.IsCastleKS() || m.IsCastleQS()
}

// String renders the move in coordinate notation (e.g. "e2e4", "e7e8q").
func (m Move) String() string {
	if m == MoveNone {
		return "none"
	}
	s := m.From().String() + m.To().String()
	if m.IsPromotion() {
		s += string(m.Promoted().PromoLabel() + ('a' - 'A'))
	}
	return s
}

// GoString supports %#v debug printing.
func (m Move) GoString() string {
	return fmt.Sprintf("Move(%s)", m.String())
}
