package hashing

import (
	"github.com/lgbarn/movecheck-go/internal/chess"
)

// mix is the splitmix64 finalizer. Square keys come from it instead of a
// random table, so boards of any size can be hashed.
func mix(x uint64) uint64 {
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	return x ^ (x >> 31)
}

func squareKey(c chess.Coordinate) uint64 {
	return uint64(uint32(c.Row))<<32 | uint64(uint32(c.Column))
}

// pieceKey is the Zobrist key of a piece standing on a square.
func pieceKey(p *chess.Piece, c chess.Coordinate) uint64 {
	tag := uint64(p.Descriptor()) << 1
	if p.HasMoved() {
		tag |= 1
	}
	return mix(mix(squareKey(c)) ^ tag)
}

// PositionHash returns a Zobrist hash of the board. Placement order does not
// matter; the has-moved latch of every piece is part of the hash.
func PositionHash(b *chess.Board) uint64 {
	var hash uint64
	for _, pl := range b.Placements() {
		hash ^= pieceKey(pl.Piece, pl.Square)
	}
	return hash
}

// QueryHash hashes a legality query: the position plus the move asked about.
func QueryHash(b *chess.Board, from, to chess.Coordinate) uint64 {
	move := mix(squareKey(from)) ^ mix(mix(squareKey(to)))
	return PositionHash(b) ^ mix(move)
}
