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

func TestMovePackUnpack(t *testing.T) {
	m := NewMove(SqE2, SqE4, Pawn, FlagDoublePush, PieceNone)
	assert.Equal(t, SqE2, m.From())
	assert.Equal(t, SqE4, m.To())
	assert.Equal(t, Pawn, m.MovedPiece())
	assert.True(t, m.IsDoublePush())
	assert.False(t, m.IsCapture())
	assert.False(t, m.IsPromotion())
	assert.Equal(t, "e2e4", m.String())
}

func TestMovePromotion(t *testing.T) {
	m := NewMove(SqE7, SqE8, Pawn, FlagCapture, Queen)
	assert.True(t, m.IsPromotion())
	assert.Equal(t, Queen, m.Promoted())
	assert.True(t, m.IsCapture())
	assert.Equal(t, "e7e8q", m.String())
}

func TestMoveCastleFlags(t *testing.T) {
	ks := NewMove(SqE1, SqG1, King, FlagCastleKS, PieceNone)
	assert.True(t, ks.IsCastle())
	assert.True(t, ks.IsCastleKS())
	assert.False(t, ks.IsCastleQS())

	qs := NewMove(SqE1, SqC1, King, FlagCastleQS, PieceNone)
	assert.True(t, qs.IsCastle())
	assert.True(t, qs.IsCastleQS())
}

func TestMoveNoneString(t *testing.T) {
	assert.Equal(t, "none", MoveNone.String())
}

func TestMoveListPushAndIterate(t *testing.T) {
	var list MoveList
	m1 := NewMove(SqA2, SqA3, Pawn, 0, PieceNone)
	m2 := NewMove(SqB2, SqB4, Pawn, FlagDoublePush, PieceNone)
	list.Push(m1)
	list.Push(m2)

	assert.Equal(t, 2, list.Len())
	assert.Equal(t, m1, list.At(0))
	assert.Equal(t, m2, list.At(1))
	assert.True(t, list.Contains(m2))
	assert.ElementsMatch(t, []Move{m1, m2}, list.Slice())

	list.Clear()
	assert.Equal(t, 0, list.Len())
}
