package engine

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync/atomic"
	"time"

	"magicbot/chessmg"
)

// =============================================================================
// SCORE CONSTANTS
// =============================================================================
const (
	MaxDepth   = 100
	Infinity   = 1_000_000_000
	MatedScore = -1_000_000
	DrawScore  = 0
)

// Limits bounds one search. A zero Limits searches until Stop is called or
// the context is cancelled.
type Limits struct {
	Depth     int           // deepest iteration, 0 means MaxDepth
	MoveTime  time.Duration // fixed budget for this move
	Remaining time.Duration // clock left; used with Increment when MoveTime is zero
	Increment time.Duration
	Infinite  bool // ignore every time field
}

func (l Limits) budget(pos *chessmg.Position) time.Duration {
	switch {
	case l.Infinite:
		return 0
	case l.MoveTime > 0:
		return l.MoveTime
	case l.Remaining > 0:
		return AllocateTime(pos, l.Remaining, l.Increment)
	}
	return 0
}

// Result is the outcome of the deepest completed iteration.
type Result struct {
	Move    chessmg.Move
	Score   int
	Depth   int
	Nodes   uint64
	PV      []chessmg.Move
	Elapsed time.Duration
}

type PVLine struct {
	Moves []chessmg.Move
}

func (pv *PVLine) Clear() { pv.Moves = pv.Moves[:0] }

func (pv *PVLine) Update(m chessmg.Move, child *PVLine) {
	pv.Moves = append(pv.Moves[:0], m)
	pv.Moves = append(pv.Moves, child.Moves...)
}

func (pv *PVLine) Clone() []chessmg.Move {
	return append([]chessmg.Move(nil), pv.Moves...)
}

func (pv *PVLine) String() string {
	parts := make([]string, len(pv.Moves))
	for i, m := range pv.Moves {
		parts[i] = m.String()
	}
	return strings.Join(parts, " ")
}

// Searcher owns everything one search needs. A Searcher runs one search at a
// time; the TransTable may be shared between searchers.
type Searcher struct {
	TT     *TransTable
	Eval   Evaluator
	Output io.Writer // per-iteration info lines, nil for silence

	stop     atomic.Bool
	nodes    uint64
	killers  KillerStruct
	rootBest chessmg.Move

	genBufs [MaxDepth + 1][]chessmg.Move
	lists   [MaxDepth + 1]moveList
	pvs     [MaxDepth + 2]PVLine
}

// NewSearcher returns a searcher using tt and eval. Nil arguments get a
// DefaultTTEntries table and MaterialEvaluator.
func NewSearcher(tt *TransTable, eval Evaluator) *Searcher {
	if tt == nil {
		tt = NewTransTable(DefaultTTEntries)
	}
	if eval == nil {
		eval = MaterialEvaluator{}
	}
	s := &Searcher{TT: tt, Eval: eval}
	for i := range s.genBufs {
		s.genBufs[i] = make([]chessmg.Move, 0, 64)
		s.lists[i].moves = make([]move, 0, 64)
	}
	return s
}

// Stop asks the running search to return. Safe from any goroutine.
func (s *Searcher) Stop() { s.stop.Store(true) }

// Stopped reports whether the current or last search was cut short.
func (s *Searcher) Stopped() bool { return s.stop.Load() }

// Reset forgets everything learnt in earlier searches.
func (s *Searcher) Reset() {
	s.TT.Clear()
	s.killers.ClearKillers()
}

// Search runs iterative deepening on pos within limits and returns the best
// move of the last completed iteration. pos is used as scratch space and is
// restored before Search returns. A search stopped before finishing depth 1
// still returns a legal move when one exists.
func (s *Searcher) Search(ctx context.Context, pos *chessmg.Position, limits Limits) Result {
	s.stop.Store(false)
	s.nodes = 0
	start := time.Now()

	if budget := limits.budget(pos); budget > 0 {
		timer := time.AfterFunc(budget, s.Stop)
		defer timer.Stop()
	}
	if ctx != nil {
		if ctx.Err() != nil {
			s.Stop()
		}
		stopOnCancel := context.AfterFunc(ctx, s.Stop)
		defer stopOnCancel()
	}

	maxDepth := limits.Depth
	if maxDepth <= 0 || maxDepth > MaxDepth {
		maxDepth = MaxDepth
	}

	var result Result
	for depth := 1; depth <= maxDepth; depth++ {
		if s.stop.Load() {
			break
		}
		s.rootBest = chessmg.NullMove
		score := s.negamax(pos, depth, 0, -Infinity, Infinity)
		if s.stop.Load() {
			// Partial iterations are discarded.
			break
		}

		result.Move = s.rootBest
		result.Score = score
		result.Depth = depth
		result.PV = s.pvs[0].Clone()
		if len(result.PV) == 0 && !result.Move.IsNull() {
			result.PV = []chessmg.Move{result.Move}
		}
		s.report(depth, score, start, result.PV)

		if result.Move.IsNull() || abs(score) > -MatedScore {
			break
		}
	}

	if result.Move.IsNull() {
		result.Move = s.fallbackMove(pos)
	}
	result.Nodes = s.nodes
	result.Elapsed = time.Since(start)
	return result
}

func (s *Searcher) report(depth, score int, start time.Time, pv []chessmg.Move) {
	if s.Output == nil {
		return
	}
	timeSpent := time.Since(start).Milliseconds()
	if timeSpent == 0 {
		timeSpent = 1
	}
	nps := s.nodes * 1000 / uint64(timeSpent)
	line := PVLine{Moves: pv}
	fmt.Fprintln(s.Output,
		"info depth", depth,
		"score", getMateOrCPScore(score, depth),
		"nodes", s.nodes,
		"time", timeSpent,
		"nps", nps,
		"hashfull", s.TT.Hashfull(),
		"pv", line.String(),
	)
}

// fallbackMove picks the best-ordered legal move without searching.
func (s *Searcher) fallbackMove(pos *chessmg.Position) chessmg.Move {
	moves := pos.GenerateMoves()
	if len(moves) == 0 {
		return chessmg.NullMove
	}
	hashMove := chessmg.NullMove
	if entry, ok := s.TT.Probe(pos.Hash()); ok {
		hashMove = entry.Move
	}
	var list moveList
	scoreMoves(pos, moves, &list, hashMove, &s.killers, 0)
	orderNextMove(0, &list)
	return list.moves[0].move
}

// getMateOrCPScore formats score for an info line. Mate scores carry the
// remaining depth of the mated node, so the distance follows from the
// iteration depth.
func getMateOrCPScore(score, depth int) string {
	if abs(score) <= -MatedScore {
		return fmt.Sprintf("cp %d", score)
	}
	plies := depth - (abs(score) + MatedScore)
	if plies < 0 {
		plies = 0
	}
	mateInN := (plies + 1) / 2
	if score < 0 {
		mateInN = -mateInN
	}
	return fmt.Sprintf("mate %d", mateInN)
}

func containsMove(moves []chessmg.Move, m chessmg.Move) bool {
	for _, x := range moves {
		if x == m {
			return true
		}
	}
	return false
}

// negamax is a fail-hard alpha-beta search returning a score in [alpha, beta].
func (s *Searcher) negamax(pos *chessmg.Position, depth, ply, alpha, beta int) int {
	pv := &s.pvs[ply]
	pv.Clear()
	if s.stop.Load() {
		return 0
	}

	isRoot := ply == 0
	if !isRoot && (pos.IsDrawBy50() || pos.IsRepetition(2)) {
		s.nodes++
		return DrawScore
	}
	if depth <= 0 {
		return s.quiescence(pos, ply, alpha, beta)
	}
	s.nodes++
	if ply >= MaxDepth {
		return s.Eval.Evaluate(pos)
	}

	hash := pos.Hash()
	hashMove := chessmg.NullMove
	entry, hit := s.TT.Probe(hash)
	usable, ttScore := false, 0
	if hit {
		hashMove = entry.Move
		usable, ttScore = useEntry(entry, depth, alpha, beta)
		if usable && !isRoot {
			return ttScore
		}
	}

	moves := pos.GenerateMovesInto(s.genBufs[ply])
	s.genBufs[ply] = moves

	// The root only trusts a hash move it can actually play.
	if usable && containsMove(moves, entry.Move) {
		s.rootBest = entry.Move
		pv.Moves = append(pv.Moves, entry.Move)
		return ttScore
	}

	if len(moves) == 0 {
		if pos.InCheck() {
			return MatedScore - depth
		}
		return DrawScore
	}

	list := &s.lists[ply]
	scoreMoves(pos, moves, list, hashMove, &s.killers, ply)

	bestMove := chessmg.NullMove
	flag := AlphaFlag
	for i := range list.moves {
		orderNextMove(i, list)
		m := list.moves[i].move
		quiet := pos.PieceAt(m.To()) == chessmg.NoPiece && !m.IsEnPassant() && !m.IsPromotion()

		pos.MakeMove(m)
		score := -s.negamax(pos, depth-1, ply+1, -beta, -alpha)
		pos.UnmakeMove(m)

		if s.stop.Load() {
			return 0
		}
		if score >= beta {
			s.TT.Store(hash, depth, m, beta, BetaFlag)
			if quiet {
				s.killers.InsertKiller(m, ply)
			}
			return beta
		}
		if score > alpha {
			alpha = score
			bestMove = m
			flag = ExactFlag
			pv.Update(m, &s.pvs[ply+1])
			if isRoot {
				s.rootBest = m
			}
		}
	}

	s.TT.Store(hash, depth, bestMove, alpha, flag)
	return alpha
}

// quiescence resolves captures until the position is quiet. The side to move
// may always stand pat on the static evaluation.
func (s *Searcher) quiescence(pos *chessmg.Position, ply, alpha, beta int) int {
	if s.stop.Load() {
		return 0
	}
	s.nodes++

	standpat := s.Eval.Evaluate(pos)
	if ply >= MaxDepth {
		return standpat
	}
	if standpat >= beta {
		return beta
	}
	if standpat > alpha {
		alpha = standpat
	}

	moves := pos.GenerateCapturesInto(s.genBufs[ply])
	s.genBufs[ply] = moves
	list := &s.lists[ply]
	scoreMoves(pos, moves, list, chessmg.NullMove, nil, ply)

	for i := range list.moves {
		orderNextMove(i, list)
		m := list.moves[i].move

		pos.MakeMove(m)
		score := -s.quiescence(pos, ply+1, -beta, -alpha)
		pos.UnmakeMove(m)

		if s.stop.Load() {
			return 0
		}
		if score >= beta {
			return beta
		}
		if score > alpha {
			alpha = score
		}
	}
	return alpha
}
