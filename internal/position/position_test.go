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

package position

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kittygo/kittygo/internal/types"
)

func TestFromFENStartPosition(t *testing.T) {
	b, err := FromFEN(StartFEN)
	assert.NoError(t, err)
	assert.Equal(t, types.White, b.SideToMove)
	assert.Equal(t, types.CastleAll, b.CastleRights)
	assert.Equal(t, types.SqNone, b.EpSquare)
	assert.Equal(t, 16, b.Occupied(types.White).PopCount())
	assert.Equal(t, 16, b.Occupied(types.Black).PopCount())
	assert.Equal(t, types.SqE1, b.KingSquare(types.White))
	assert.Equal(t, types.SqE8, b.KingSquare(types.Black))
}

func TestFENRoundTrip(t *testing.T) {
	for _, fen := range []string{
		StartFEN,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
	} {
		b, err := FromFEN(fen)
		assert.NoError(t, err)
		assert.Equal(t, fen, b.FEN())
	}
}

func TestFromFENRejectsMalformedInput(t *testing.T) {
	_, err := FromFEN("not a fen")
	assert.Error(t, err)

	_, err = FromFEN("8/8/8/8/8/8/8 w - - 0 1")
	assert.Error(t, err)
}

func TestMakeMoveQuietPush(t *testing.T) {
	b, _ := FromFEN(StartFEN)
	m := types.NewMove(types.SqE2, types.SqE4, types.Pawn, types.FlagDoublePush, types.PieceNone)
	next := MakeMove(b, m)

	assert.False(t, next.AllOccupied().Has(types.SqE2))
	assert.True(t, next.AllOccupied().Has(types.SqE4))
	assert.Equal(t, types.Black, next.SideToMove)
	assert.Equal(t, types.SqE3, next.EpSquare)
	assert.Equal(t, 0, next.HalfmoveClock)

	// original position must be unmodified (copy-make).
	assert.True(t, b.AllOccupied().Has(types.SqE2))
	assert.False(t, b.AllOccupied().Has(types.SqE4))
}

func TestMakeMoveCaptureResetsHalfmoveClock(t *testing.T) {
	b, _ := FromFEN("4k3/8/8/8/8/4p3/3P4/4K3 w - - 5 10")
	diag := types.NewMove(types.SqD2, types.SqE3, types.Pawn, types.FlagCapture, types.PieceNone)
	next := MakeMove(b, diag)
	assert.Equal(t, 0, next.HalfmoveClock)
	p, c, ok := next.PieceOn(types.SqE3)
	assert.True(t, ok)
	assert.Equal(t, types.Pawn, p)
	assert.Equal(t, types.White, c)
}

func TestMakeMoveCastlingRightsClearedOnRookCapture(t *testing.T) {
	b, _ := FromFEN("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	// a rook captures straight across to the enemy rook's home square.
	capture := types.NewMove(types.SqA1, types.SqA8, types.Rook, types.FlagCapture, types.PieceNone)
	next := MakeMove(b, capture)
	assert.False(t, types.HasQueenSide(next.CastleRights, types.White))
	assert.False(t, types.HasQueenSide(next.CastleRights, types.Black))
	assert.True(t, types.HasKingSide(next.CastleRights, types.White))
	assert.True(t, types.HasKingSide(next.CastleRights, types.Black))
}

func TestMakeMoveCastleMovesRook(t *testing.T) {
	b, _ := FromFEN("4k3/8/8/8/8/8/8/4K2R w K - 0 1")
	castle := types.NewMove(types.SqE1, types.SqG1, types.King, types.FlagCastleKS, types.PieceNone)
	next := MakeMove(b, castle)
	p, c, ok := next.PieceOn(types.SqF1)
	assert.True(t, ok)
	assert.Equal(t, types.Rook, p)
	assert.Equal(t, types.White, c)
	assert.False(t, next.AllOccupied().Has(types.SqH1))
}

func TestMakeMoveEnPassantRemovesCapturedPawn(t *testing.T) {
	b, _ := FromFEN("4k3/8/8/3pP3/8/8/8/4K3 w - d6 0 1")
	ep := types.NewMove(types.SqE5, types.SqD6, types.Pawn, types.FlagCapture|types.FlagEnPassant, types.PieceNone)
	next := MakeMove(b, ep)
	assert.False(t, next.AllOccupied().Has(types.SqD5))
	assert.True(t, next.AllOccupied().Has(types.SqD6))
	assert.False(t, next.AllOccupied().Has(types.SqE5))
}

func TestMakeMovePromotion(t *testing.T) {
	b, _ := FromFEN("4k3/4P3/8/8/8/8/8/4K3 w - - 0 1")
	promo := types.NewMove(types.SqE7, types.SqE8, types.Pawn, 0, types.Queen)
	next := MakeMove(b, promo)
	p, c, ok := next.PieceOn(types.SqE8)
	assert.True(t, ok)
	assert.Equal(t, types.Queen, p)
	assert.Equal(t, types.White, c)
}
