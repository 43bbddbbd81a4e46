package chessmg

// Perft counts leaf nodes (move sequences) from the position for a given depth.
// Per-depth buffers are reused so the walk does not allocate.
func Perft(p *Position, depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	bufs := make([][]Move, depth+1)
	for i := range bufs {
		bufs[i] = make([]Move, 0, 256)
	}
	return perftRec(p, depth, bufs)
}

func perftRec(p *Position, depth int, bufs [][]Move) uint64 {
	moves := p.GenerateMovesInto(bufs[depth])
	if depth == 1 {
		return uint64(len(moves))
	}
	var nodes uint64
	for _, m := range moves {
		p.MakeMove(m)
		nodes += perftRec(p, depth-1, bufs)
		p.UnmakeMove(m)
	}
	return nodes
}

// PerftDivide returns, for each legal root move, the number of leaf nodes below it.
func PerftDivide(p *Position, depth int) map[Move]uint64 {
	result := make(map[Move]uint64)
	if depth <= 0 {
		return result
	}
	for _, m := range p.GenerateMoves() {
		p.MakeMove(m)
		result[m] = Perft(p, depth-1)
		p.UnmakeMove(m)
	}
	return result
}
