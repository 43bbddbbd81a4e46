package chessmg

import "math/rand"

// Zobrist hashing tables for pieces, castling, en passant, and side to move.
var zobristPiece [15][64]uint64 // indexed by piece code, then square
var zobristCastle [16]uint64    // one key per castling rights state
var zobristEnPassant [8]uint64  // en passant file
var zobristSide uint64          // black to move

func init() {
	initZobrist()
}

func initZobrist() {
	// Fixed seed: keys are identical across runs, so hashes are stable in tests.
	rnd := rand.New(rand.NewSource(0xC0DE))

	for p := 0; p < 15; p++ {
		for sq := 0; sq < 64; sq++ {
			zobristPiece[p][sq] = rnd.Uint64()
		}
	}
	for cr := 0; cr < 16; cr++ {
		zobristCastle[cr] = rnd.Uint64()
	}
	for f := 0; f < 8; f++ {
		zobristEnPassant[f] = rnd.Uint64()
	}
	zobristSide = rnd.Uint64()
}

// ComputeZobrist recomputes the hash of the current position from scratch.
// Incremental updates in MakeMove must always agree with it.
func (p *Position) ComputeZobrist() uint64 {
	var key uint64
	for sq := 0; sq < 64; sq++ {
		if pc := p.squares[sq]; pc != NoPiece {
			key ^= zobristPiece[pc][sq]
		}
	}
	if p.sideToMove == Black {
		key ^= zobristSide
	}
	key ^= zobristCastle[p.castlingRights]
	if p.enPassantSquare != NoSquare {
		key ^= zobristEnPassant[p.enPassantSquare.File()]
	}
	return key
}
