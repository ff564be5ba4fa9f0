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

import "github.com/kittygo/kittygo/assert"

// MaxMoves bounds the legal moves reachable from any single chess position;
// 218 is the known maximum and 256 leaves headroom without wasting much
// stack space.
const MaxMoves = 256

// MoveList is a fixed-capacity, stack-allocatable buffer of moves. It never
// grows past MaxMoves, so a move generator can build one on the stack per
// recursion level instead of allocating a slice per node.
type MoveList struct {
	moves [MaxMoves]Move
	size  int
}

// Len returns the number of moves currently stored.
func (l *MoveList) Len() int {
	return l.size
}

// Push appends m to the list. It asserts in debug builds if the list is
// already full; a full list here means MaxMoves was undersized and the
// generator has a bug.
func (l *MoveList) Push(m Move) {
	if assert.DEBUG {
		assert.Assert(l.size < MaxMoves, "MoveList overflow, size=%d", l.size)
	}
	l.moves[l.size] = m
	l.size++
}

// At returns the i'th move. i must be in [0, Len()).
func (l *MoveList) At(i int) Move {
	return l.moves[i]
}

// Clear empties the list without releasing its backing array.
func (l *MoveList) Clear() {
	l.size = 0
}

// Slice returns the populated portion of the list as a slice. The slice
// aliases the list's backing array and is only valid until the next Push
// or Clear.
func (l *MoveList) Slice() []Move {
	return l.moves[:l.size]
}

// Contains reports whether m is present in the list. Used by tests, not by
// the generator itself.
func (l *MoveList) Contains(m Move) bool {
	for i := 0; i < l.size; i++ {
		if l.moves[i] == m {
			return true
		}
	}
	return false
}
