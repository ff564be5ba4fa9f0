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

func TestCastlingRightsString(t *testing.T) {
	assert.Equal(t, "KQkq", CastlingRightsString(CastleAll))
	assert.Equal(t, "-", CastlingRightsString(BbZero))
	assert.Equal(t, "Kk", CastlingRightsString(CastleWhiteOO|CastleBlackOO))
}

func TestHasKingSideQueenSide(t *testing.T) {
	rights := CastleWhiteOO | CastleBlackOOO
	assert.True(t, HasKingSide(rights, White))
	assert.False(t, HasQueenSide(rights, White))
	assert.False(t, HasKingSide(rights, Black))
	assert.True(t, HasQueenSide(rights, Black))
}

func TestCastleRightClearedByRookCapture(t *testing.T) {
	rights := CastleAll
	rights &^= SqH1.Bb()
	assert.False(t, HasKingSide(rights, White))
	assert.True(t, HasQueenSide(rights, White))
}
