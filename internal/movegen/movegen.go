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

// Package movegen produces fully legal moves directly, without a
// pseudo-legal generate-then-filter pass. It builds a check mask (the
// squares a non-king move must land on while in check: capture the
// checker or interpose on the ray to it) and a pin mask (the squares a
// pinned piece may still move to: the ray between its king and the
// pinning slider), then only ever emits moves inside those constraints.
package movegen

import (
	"github.com/kittygo/kittygo/internal/attacks"
	"github.com/kittygo/kittygo/internal/position"
	"github.com/kittygo/kittygo/internal/types"
)

// attackersTo returns every piece, of either color, that attacks sq given
// board occupancy occ. Pawn attackers are found with the usual bitboard
// trick: the squares a pawn of color c standing on sq would attack are
// exactly the squares from which an opposing-colored pawn attacks sq.
func attackersTo(b *position.BoardState, sq types.Square, occ types.Bitboard) types.Bitboard {
	var a types.Bitboard
	a |= types.PawnAttack(types.Black, sq) & b.Pieces[types.White][types.Pawn]
	a |= types.PawnAttack(types.White, sq) & b.Pieces[types.Black][types.Pawn]
	a |= types.KnightAttack(sq) & (b.Pieces[types.White][types.Knight] | b.Pieces[types.Black][types.Knight])
	a |= types.KingAttack(sq) & (b.Pieces[types.White][types.King] | b.Pieces[types.Black][types.King])
	diag := b.Pieces[types.White][types.Bishop] | b.Pieces[types.Black][types.Bishop] |
		b.Pieces[types.White][types.Queen] | b.Pieces[types.Black][types.Queen]
	a |= types.BishopAttack(sq, occ) & diag
	straight := b.Pieces[types.White][types.Rook] | b.Pieces[types.Black][types.Rook] |
		b.Pieces[types.White][types.Queen] | b.Pieces[types.Black][types.Queen]
	a |= types.RookAttack(sq, occ) & straight
	return a
}

// attackedSquares returns every square attacked by color by, given board
// occupancy occ. Used to keep the king off squares an enemy slider
// defends through where the king currently stands.
func attackedSquares(b *position.BoardState, by types.Color, occ types.Bitboard) types.Bitboard {
	var bb types.Bitboard
	pawns := b.Pieces[by][types.Pawn]
	for pawns != 0 {
		bb |= types.PawnAttack(by, pawns.PopLsb())
	}
	knights := b.Pieces[by][types.Knight]
	for knights != 0 {
		bb |= types.KnightAttack(knights.PopLsb())
	}
	king := b.Pieces[by][types.King]
	for king != 0 {
		bb |= types.KingAttack(king.PopLsb())
	}
	diag := b.Pieces[by][types.Bishop] | b.Pieces[by][types.Queen]
	for diag != 0 {
		bb |= types.BishopAttack(diag.PopLsb(), occ)
	}
	straight := b.Pieces[by][types.Rook] | b.Pieces[by][types.Queen]
	for straight != 0 {
		bb |= types.RookAttack(straight.PopLsb(), occ)
	}
	return bb
}

// pinnedPieces returns the bitboard of us's pieces pinned to its king, and
// for each pinned square the line it may still move along.
func pinnedPieces(b *position.BoardState, us types.Color, kingSq types.Square) (types.Bitboard, [types.SqLength]types.Bitboard) {
	them := us.Flip()
	occAll := b.AllOccupied()
	ownOcc := b.Occupied(us)

	var pinnedMask types.Bitboard
	var pinLines [types.SqLength]types.Bitboard

	consider := func(sliders types.Bitboard, rayFromKing types.Bitboard) {
		for sliders != 0 {
			s := sliders.PopLsb()
			if !rayFromKing.Has(s) {
				continue
			}
			between := attacks.Between(kingSq, s)
			blockers := between & occAll
			if blockers.PopCount() == 1 && blockers&ownOcc == blockers {
				sq := blockers.Lsb()
				pinnedMask |= blockers
				pinLines[sq] = attacks.Line(kingSq, s)
			}
		}
	}

	consider(b.Pieces[them][types.Rook]|b.Pieces[them][types.Queen], types.RookAttack(kingSq, types.BbZero))
	consider(b.Pieces[them][types.Bishop]|b.Pieces[them][types.Queen], types.BishopAttack(kingSq, types.BbZero))

	return pinnedMask, pinLines
}

// InCheck reports whether the side to move is in check.
func InCheck(b *position.BoardState) bool {
	us := b.SideToMove
	kingSq := b.KingSquare(us)
	return attackersTo(b, kingSq, b.AllOccupied())&b.Occupied(us.Flip()) != 0
}

// GenerateLegalMoves returns every legal move available to the side to
// move in b.
func GenerateLegalMoves(b *position.BoardState) types.MoveList {
	var list types.MoveList

	us := b.SideToMove
	them := us.Flip()
	kingSq := b.KingSquare(us)
	occAll := b.AllOccupied()
	ownOcc := b.Occupied(us)
	enemyOcc := b.Occupied(them)

	attackedByThem := attackedSquares(b, them, occAll&^kingSq.Bb())

	checkers := attackersTo(b, kingSq, occAll) & enemyOcc
	doubleCheck := checkers.PopCount() >= 2

	var checkMask types.Bitboard
	switch {
	case checkers == 0:
		checkMask = types.BbAll
	case doubleCheck:
		checkMask = types.BbZero
	default:
		c := checkers.Lsb()
		checkMask = attacks.Between(kingSq, c) | c.Bb()
	}

	pinnedMask, pinLines := pinnedPieces(b, us, kingSq)

	generateKingMoves(b, kingSq, ownOcc, enemyOcc, attackedByThem, &list)
	if checkers == 0 {
		generateCastling(b, us, attackedByThem, occAll, &list)
	}

	if !doubleCheck {
		generatePieceMoves(b, us, types.Knight, occAll, ownOcc, enemyOcc, checkMask, pinnedMask, pinLines, &list)
		generatePieceMoves(b, us, types.Bishop, occAll, ownOcc, enemyOcc, checkMask, pinnedMask, pinLines, &list)
		generatePieceMoves(b, us, types.Rook, occAll, ownOcc, enemyOcc, checkMask, pinnedMask, pinLines, &list)
		generatePieceMoves(b, us, types.Queen, occAll, ownOcc, enemyOcc, checkMask, pinnedMask, pinLines, &list)
		generatePawnMoves(b, us, kingSq, occAll, ownOcc, enemyOcc, checkMask, pinnedMask, pinLines, &list)
	}

	return list
}

func generateKingMoves(b *position.BoardState, kingSq types.Square, ownOcc, enemyOcc, attackedByThem types.Bitboard, list *types.MoveList) {
	targets := types.KingAttack(kingSq) &^ ownOcc &^ attackedByThem
	for targets != 0 {
		to := targets.PopLsb()
		var flags uint32
		if enemyOcc.Has(to) {
			flags |= types.FlagCapture
		}
		list.Push(types.NewMove(kingSq, to, types.King, flags, types.PieceNone))
	}
}

func homeRank(c types.Color) types.Rank {
	if c == types.White {
		return types.Rank1
	}
	return types.Rank8
}

func generateCastling(b *position.BoardState, us types.Color, attackedByThem, occAll types.Bitboard, list *types.MoveList) {
	rank := homeRank(us)
	kingHome := types.SquareOf(types.FileE, rank)

	if types.HasKingSide(b.CastleRights, us) {
		f := types.SquareOf(types.FileF, rank)
		g := types.SquareOf(types.FileG, rank)
		if !occAll.Has(f) && !occAll.Has(g) && !attackedByThem.Has(f) && !attackedByThem.Has(g) {
			list.Push(types.NewMove(kingHome, g, types.King, types.FlagCastleKS, types.PieceNone))
		}
	}
	if types.HasQueenSide(b.CastleRights, us) {
		b1 := types.SquareOf(types.FileB, rank)
		c := types.SquareOf(types.FileC, rank)
		d := types.SquareOf(types.FileD, rank)
		if !occAll.Has(b1) && !occAll.Has(c) && !occAll.Has(d) && !attackedByThem.Has(c) && !attackedByThem.Has(d) {
			list.Push(types.NewMove(kingHome, c, types.King, types.FlagCastleQS, types.PieceNone))
		}
	}
}

func generatePieceMoves(b *position.BoardState, us types.Color, pt types.Piece, occAll, ownOcc, enemyOcc, checkMask, pinnedMask types.Bitboard, pinLines [types.SqLength]types.Bitboard, list *types.MoveList) {
	pieces := b.Pieces[us][pt]
	for pieces != 0 {
		from := pieces.PopLsb()

		var attackBB types.Bitboard
		if pt == types.Knight {
			attackBB = types.KnightAttack(from)
		} else {
			attackBB = types.SliderAttack(pt, from, occAll)
		}

		targets := attackBB &^ ownOcc & checkMask
		if pinnedMask.Has(from) {
			targets &= pinLines[from]
		}
		for targets != 0 {
			to := targets.PopLsb()
			var flags uint32
			if enemyOcc.Has(to) {
				flags |= types.FlagCapture
			}
			list.Push(types.NewMove(from, to, pt, flags, types.PieceNone))
		}
	}
}

func pawnCaptureDirs(c types.Color) [2]types.Direction {
	if c == types.White {
		return [2]types.Direction{types.Northeast, types.Northwest}
	}
	return [2]types.Direction{types.Southeast, types.Southwest}
}

func addPawnMove(list *types.MoveList, from, to types.Square, promoRank types.Rank, flags uint32) {
	if to.RankOf() == promoRank {
		for _, promo := range [4]types.Piece{types.Queen, types.Rook, types.Bishop, types.Knight} {
			list.Push(types.NewMove(from, to, types.Pawn, flags, promo))
		}
		return
	}
	list.Push(types.NewMove(from, to, types.Pawn, flags, types.PieceNone))
}

// kingExposedAfterEnPassant re-validates an en-passant capture by removing
// both the moving pawn and the captured pawn from the board, placing the
// moving pawn on the en-passant square, and checking whether any enemy
// piece then attacks the king (this covers a rook or queen on the rank the
// two pawns shared). This is the one place the cheap pin mask is insufficient: the
// en-passant capture can remove two pawns from the same rank at once,
// exposing the king to a slider that neither pawn looked individually
// pinned to.
func kingExposedAfterEnPassant(b *position.BoardState, us types.Color, kingSq, from, to, capturedSq types.Square) bool {
	them := us.Flip()
	occAfter := (b.AllOccupied() &^ from.Bb() &^ capturedSq.Bb()) | to.Bb()
	attackers := attackersTo(b, kingSq, occAfter) & b.Occupied(them) &^ capturedSq.Bb()
	return attackers != 0
}

func generatePawnMoves(b *position.BoardState, us types.Color, kingSq types.Square, occAll, ownOcc, enemyOcc, checkMask, pinnedMask types.Bitboard, pinLines [types.SqLength]types.Bitboard, list *types.MoveList) {
	them := us.Flip()
	dir := us.MoveDirection()
	promoRank := us.PromotionRank()
	startRank := us.PawnRank()

	pawns := b.Pieces[us][types.Pawn]
	for pawns != 0 {
		from := pawns.PopLsb()

		var allowed types.Bitboard = types.BbAll
		pinned := pinnedMask.Has(from)
		if pinned {
			allowed = pinLines[from]
		}

		if to1 := from.To(dir); to1 != types.SqNone && !occAll.Has(to1) {
			if checkMask.Has(to1) && allowed.Has(to1) {
				addPawnMove(list, from, to1, promoRank, 0)
			}
			if from.RankOf() == startRank {
				if to2 := to1.To(dir); to2 != types.SqNone && !occAll.Has(to2) &&
					checkMask.Has(to2) && allowed.Has(to2) {
					list.Push(types.NewMove(from, to2, types.Pawn, types.FlagDoublePush, types.PieceNone))
				}
			}
		}

		for _, capDir := range pawnCaptureDirs(us) {
			to := from.To(capDir)
			if to == types.SqNone {
				continue
			}
			if enemyOcc.Has(to) {
				if checkMask.Has(to) && allowed.Has(to) {
					addPawnMove(list, from, to, promoRank, types.FlagCapture)
				}
				continue
			}
			if b.EpSquare != types.SqNone && to == b.EpSquare {
				capturedSq := b.EpSquare.To(them.MoveDirection())
				// En passant resolves a check either by capturing the
				// checker (capturedSq in checkMask) or by interposing on
				// the en-passant square itself; a pinned pawn is further
				// restricted to its pin line same as any other capture.
				if (checkMask.Has(to) || checkMask.Has(capturedSq)) && allowed.Has(to) &&
					!kingExposedAfterEnPassant(b, us, kingSq, from, to, capturedSq) {
					list.Push(types.NewMove(from, to, types.Pawn, types.FlagCapture|types.FlagEnPassant, types.PieceNone))
				}
			}
		}
	}
}
