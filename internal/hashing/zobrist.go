package hashing

import (
	"math/rand/v2"

	"github.com/lgbarn/chainsolve-go/internal/chess"
	"github.com/lgbarn/chainsolve-go/internal/puzzle"
)

// Fixed seeds keep fingerprints stable across runs.
const (
	seedHi = 0x9e3779b97f4a7c15
	seedLo = 0xbf58476d1ce4e5b9
)

var (
	pieceKeys    [chess.NumKinds][chess.NumSquares]uint64
	obstacleKeys [chess.NumSquares]uint64
	playerKeys   [chess.NumSquares]uint64
)

func init() {
	r := rand.New(rand.NewPCG(seedHi, seedLo))
	for k := range pieceKeys {
		for sq := range pieceKeys[k] {
			pieceKeys[k][sq] = r.Uint64()
		}
	}
	for sq := range obstacleKeys {
		obstacleKeys[sq] = r.Uint64()
		playerKeys[sq] = r.Uint64()
	}
}

// GenerateZobristHash fingerprints the layout of p: its obstacles, every
// piece kind and square, and the player's square.
func GenerateZobristHash(p *puzzle.Puzzle) uint64 {
	var hash uint64
	for _, sq := range p.Obstacles().Squares() {
		hash ^= obstacleKeys[sq]
	}
	for i := 0; i < p.NumPieces(); i++ {
		hash ^= pieceKeys[p.Kind(i)][p.Square(i)]
	}
	return hash ^ playerKeys[p.Square(p.Player())]
}

// WeakHash packs the piece and obstacle counts into a cheap pre-filter.
// Layouts with equal weak hashes may still differ.
func WeakHash(p *puzzle.Puzzle) uint32 {
	return uint32(p.NumPieces())<<8 | uint32(p.Obstacles().Count())
}
