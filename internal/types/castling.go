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

// CastlingRights is a Bitboard carrying set bits at E1/A1/H1/E8/A8/H8 (the
// king and rook home squares). A move clears castling rights by AND-masking
// off its source and destination squares from this bitboard, which
// correctly invalidates king moves, rook moves and captures of a rook on
// its home square without any further case analysis.
type CastlingRights = Bitboard

// Castling home squares, set once the board numbering is known.
var (
	CastleWhiteOO  CastlingRights // E1, H1
	CastleWhiteOOO CastlingRights // E1, A1
	CastleBlackOO  CastlingRights // E8, H8
	CastleBlackOOO CastlingRights // E8, A8
	CastleAll      CastlingRights
)

func init() {
	CastleWhiteOO = SqE1.Bb() | SqH1.Bb()
	CastleWhiteOOO = SqE1.Bb() | SqA1.Bb()
	CastleBlackOO = SqE8.Bb() | SqH8.Bb()
	CastleBlackOOO = SqE8.Bb() | SqA8.Bb()
	CastleAll = CastleWhiteOO | CastleWhiteOOO | CastleBlackOO | CastleBlackOOO
}

// KingSideRight returns the bit identifying c's king-side castling right.
func KingSideRight(c Color) CastlingRights {
	if c == White {
		return CastleWhiteOO
	}
	return CastleBlackOO
}

// QueenSideRight returns the bit identifying c's queen-side castling right.
func QueenSideRight(c Color) CastlingRights {
	if c == White {
		return CastleWhiteOOO
	}
	return CastleBlackOOO
}

// HasKingSide reports whether rights still permits c's king-side castle.
func HasKingSide(rights CastlingRights, c Color) bool {
	return rights&KingSideRight(c) == KingSideRight(c)
}

// HasQueenSide reports whether rights still permits c's queen-side castle.
func HasQueenSide(rights CastlingRights, c Color) bool {
	return rights&QueenSideRight(c) == QueenSideRight(c)
}

// CastlingRightsString renders rights in FEN order (KQkq), or "-" if none
// remain.
func CastlingRightsString(rights CastlingRights) string {
	s := ""
	if HasKingSide(rights, White) {
		s += "K"
	}
	if HasQueenSide(rights, White) {
		s += "Q"
	}
	if HasKingSide(rights, Black) {
		s += "k"
	}
	if HasQueenSide(rights, Black) {
		s += "q"
	}
	if s == "" {
		return "-"
	}
	return s
}
