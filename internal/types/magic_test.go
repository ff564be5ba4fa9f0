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

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRookAttackEmptyBoardCenter(t *testing.T) {
	attack := RookAttack(SqD4, BbZero)
	assert.Equal(t, 14, attack.PopCount())
}

func TestRookAttackBlocked(t *testing.T) {
	var occ Bitboard
	occ.PushSquare(SqD6)
	attack := RookAttack(SqD4, occ)
	assert.True(t, attack.Has(SqD5))
	assert.True(t, attack.Has(SqD6))
	assert.False(t, attack.Has(SqD7))
}

func TestBishopAttackEmptyBoardCenter(t *testing.T) {
	attack := BishopAttack(SqD4, BbZero)
	assert.Equal(t, 13, attack.PopCount())
}

func TestBishopAttackBlocked(t *testing.T) {
	var occ Bitboard
	occ.PushSquare(SqF6)
	attack := BishopAttack(SqD4, occ)
	assert.True(t, attack.Has(SqE5))
	assert.True(t, attack.Has(SqF6))
	assert.False(t, attack.Has(SqG7))
}

func TestQueenAttackIsUnionOfRookAndBishop(t *testing.T) {
	occ := SqB2.Bb()
	want := RookAttack(SqD4, occ) | BishopAttack(SqD4, occ)
	assert.Equal(t, want, QueenAttack(SqD4, occ))
}

func TestSliderAttackDispatch(t *testing.T) {
	assert.Equal(t, RookAttack(SqA1, BbZero), SliderAttack(Rook, SqA1, BbZero))
	assert.Equal(t, BishopAttack(SqA1, BbZero), SliderAttack(Bishop, SqA1, BbZero))
	assert.Equal(t, QueenAttack(SqA1, BbZero), SliderAttack(Queen, SqA1, BbZero))
}
