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

import "math/bits"

// Magic holds one square's magic-bitboard entry: the relevant-occupancy
// mask, the multiplier, the precomputed attack table indexed by the hashed
// occupancy, and the shift that turns a masked occupancy into a table
// index. Initialization follows the well-known Stockfish magic search.
type Magic struct {
	Mask   Bitboard
	Number Bitboard
	Shift  uint
	table  []Bitboard
}

func (m *Magic) index(occupied Bitboard) uint64 {
	return uint64((occupied&m.Mask)*m.Number) >> m.Shift
}

// Attacks returns the attack set for occupied, the full board occupancy.
func (m *Magic) Attacks(occupied Bitboard) Bitboard {
	return m.table[m.index(occupied)]
}

var (
	bishopMagics [SqLength]Magic
	rookMagics   [SqLength]Magic
)

var bishopDirs = [4]Direction{Northeast, Southeast, Southwest, Northwest}
var rookDirs = [4]Direction{North, South, East, West}

func init() {
	initMagics(&bishopMagics, bishopDirs)
	initMagics(&rookMagics, rookDirs)
}

// slidingAttack brute-force walks each of dirs from sq until it runs off
// the board or hits an occupied square (the hit square is included, since
// it may hold a capturable enemy piece; the caller masks friendly pieces
// out separately). Used only at init time to populate the magic tables and
// to verify candidate magic numbers.
func slidingAttack(sq Square, occupied Bitboard, dirs [4]Direction) Bitboard {
	var attacks Bitboard
	for _, d := range dirs {
		s := sq
		for {
			next := s.To(d)
			if next == SqNone {
				break
			}
			s = next
			attacks.PushSquare(s)
			if occupied.Has(s) {
				break
			}
		}
	}
	return attacks
}

// relevantOccupancyMask returns the squares whose occupancy can possibly
// affect sliding attacks from sq in dirs, excluding the board edge squares
// a ray terminates on anyway (a piece there can never block further since
// there's nowhere further to go).
func relevantOccupancyMask(sq Square, dirs [4]Direction) Bitboard {
	var mask Bitboard
	for _, d := range dirs {
		s := sq
		for {
			next := s.To(d)
			if next == SqNone {
				break
			}
			s = next
			if s.To(d) == SqNone {
				break
			}
			mask.PushSquare(s)
		}
	}
	return mask
}

// prng is a xorshift64star pseudo-random generator, used only to search
// for magic numbers at package init time.
type prng struct{ state uint64 }

func newPrng(seed uint64) *prng {
	return &prng{state: seed}
}

func (p *prng) next() uint64 {
	p.state ^= p.state >> 12
	p.state ^= p.state << 25
	p.state ^= p.state >> 27
	return p.state * 2685821657736338717
}

// sparse returns a random 64 bit value with relatively few set bits, which
// empirically converges to a valid magic number faster than a uniform
// random word.
func (p *prng) sparse() uint64 {
	return p.next() & p.next() & p.next()
}

// magicSeeds are per-rank seeds for the candidate-magic search. Any
// nonzero seeds work; these make the search converge in a few hundred
// candidates per square.
var magicSeeds = [8]uint64{728, 10316, 55013, 32803, 12281, 15100, 16645, 255}

func initMagics(magics *[SqLength]Magic, dirs [4]Direction) {
	var occupancies [4096]Bitboard
	var references [4096]Bitboard

	for sq := Square(0); sq < SqLength; sq++ {
		mask := relevantOccupancyMask(sq, dirs)
		relevantBits := mask.PopCount()
		shift := uint(64 - relevantBits)

		// Carry-Rippler: enumerate every subset of mask.
		size := 0
		var subset Bitboard
		for {
			occupancies[size] = subset
			references[size] = slidingAttack(sq, subset, dirs)
			size++
			subset = (subset - mask) & mask
			if subset == 0 {
				break
			}
		}

		m := &magics[sq]
		m.Mask = mask
		m.Shift = shift
		m.table = make([]Bitboard, size)

		rng := newPrng(magicSeeds[sq.RankOf()])
	search:
		for {
			var candidate Bitboard
			for {
				candidate = Bitboard(rng.sparse())
				if bits.OnesCount64(uint64((mask*candidate)>>56)) >= 6 {
					break
				}
			}
			for i := range m.table {
				m.table[i] = 0
			}
			for i := 0; i < size; i++ {
				idx := uint64((occupancies[i]&mask)*candidate) >> shift
				if m.table[idx] != 0 && m.table[idx] != references[i] {
					continue search
				}
				m.table[idx] = references[i]
			}
			m.Number = candidate
			break
		}
	}
}

// BishopAttack returns a bishop's attack set on sq given board occupancy.
func BishopAttack(sq Square, occupied Bitboard) Bitboard {
	return bishopMagics[sq].Attacks(occupied)
}

// RookAttack returns a rook's attack set on sq given board occupancy.
func RookAttack(sq Square, occupied Bitboard) Bitboard {
	return rookMagics[sq].Attacks(occupied)
}

// QueenAttack returns a queen's attack set on sq given board occupancy.
func QueenAttack(sq Square, occupied Bitboard) Bitboard {
	return BishopAttack(sq, occupied) | RookAttack(sq, occupied)
}

// SliderAttack dispatches to BishopAttack, RookAttack or QueenAttack by
// piece kind. p must be Bishop, Rook or Queen.
func SliderAttack(p Piece, sq Square, occupied Bitboard) Bitboard {
	switch p {
	case Bishop:
		return BishopAttack(sq, occupied)
	case Rook:
		return RookAttack(sq, occupied)
	case Queen:
		return QueenAttack(sq, occupied)
	default:
		return BbZero
	}
}
