package engine

import (
	"context"
	"io"
	"time"

	"magicbot/chessmg"
)

// DefaultThinkTime is the per-move budget when the caller has no clock.
const DefaultThinkTime = time.Second

type Options struct {
	TTEntries int       // 0 means DefaultTTEntries
	Book      *Book     // nil disables the opening book
	Eval      Evaluator // nil means MaterialEvaluator
	Output    io.Writer // search info lines, nil for silence
}

// Bot picks moves for one game at a time: book first, search otherwise.
type Bot struct {
	book     *Book
	searcher *Searcher

	LastResult Result
}

func NewBot(opts Options) *Bot {
	entries := opts.TTEntries
	if entries <= 0 {
		entries = DefaultTTEntries
	}
	s := NewSearcher(NewTransTable(entries), opts.Eval)
	s.Output = opts.Output
	return &Bot{book: opts.Book, searcher: s}
}

// Searcher exposes the bot's searcher, e.g. to Stop it from another goroutine.
func (b *Bot) Searcher() *Searcher { return b.searcher }

// Think returns a move for the side to move in pos, or NullMove when there
// is none. timeRemaining is the mover's clock; zero or less means think for
// DefaultThinkTime. pos is restored before Think returns.
func (b *Bot) Think(pos *chessmg.Position, timeRemaining time.Duration) chessmg.Move {
	return b.ThinkContext(context.Background(), pos, Limits{Remaining: timeRemaining})
}

// ThinkContext is Think with explicit limits and cancellation.
func (b *Bot) ThinkContext(ctx context.Context, pos *chessmg.Position, limits Limits) chessmg.Move {
	if !pos.HasLegalMoves() {
		b.LastResult = Result{}
		return chessmg.NullMove
	}
	if b.book != nil && pos.FromStartpos() {
		if m := b.book.Lookup(pos.Moves()); !m.IsNull() {
			b.LastResult = Result{Move: m, PV: []chessmg.Move{m}}
			return m
		}
	}
	if limits.Depth == 0 && limits.MoveTime == 0 && limits.Remaining <= 0 && !limits.Infinite {
		limits.MoveTime = DefaultThinkTime
	}
	b.LastResult = b.searcher.Search(ctx, pos, limits)
	return b.LastResult.Move
}

// NewGame drops the transposition table and killer moves.
func (b *Bot) NewGame() { b.searcher.Reset() }
