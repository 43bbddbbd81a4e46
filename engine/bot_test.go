package engine

import (
	"strings"
	"testing"
	"time"

	"magicbot/chessmg"
)

func TestBotUsesBookFromStartpos(t *testing.T) {
	book, err := LoadBook(strings.NewReader("e2e4 e7e5 g1f3\n"))
	if err != nil {
		t.Fatal(err)
	}
	bot := NewBot(Options{TTEntries: 1 << 12, Book: book})
	pos := chessmg.NewPosition("")
	for _, want := range []string{"e2e4", "e7e5", "g1f3"} {
		m := bot.Think(pos, time.Minute)
		if m.String() != want {
			t.Fatalf("book move: got %s want %s", m, want)
		}
		if bot.LastResult.Nodes != 0 {
			t.Fatalf("book move %s was searched", m)
		}
		pos.MakeMove(m)
	}
	// Out of book: the bot searches.
	m := bot.Think(pos, 2*time.Second)
	if m.IsNull() || bot.LastResult.Nodes == 0 {
		t.Fatalf("after the book: got %s with %d nodes", m, bot.LastResult.Nodes)
	}
}

func TestBotIgnoresBookAwayFromStartpos(t *testing.T) {
	book, err := LoadBook(strings.NewReader("e2e4 e7e5\n"))
	if err != nil {
		t.Fatal(err)
	}
	bot := NewBot(Options{TTEntries: 1 << 12, Book: book})
	// Set up from a FEN, so the move history is unknown.
	pos := chessmg.NewPosition("rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq - 0 1")
	bot.Think(pos, time.Second)
	if bot.LastResult.Nodes == 0 {
		t.Fatalf("book consulted for a position without history")
	}
}

func TestBotNoLegalMoves(t *testing.T) {
	bot := NewBot(Options{TTEntries: 1 << 10})
	pos := chessmg.NewPosition("7k/5Q2/6K1/8/8/8/8/8 b - - 0 1")
	if m := bot.Think(pos, time.Second); !m.IsNull() {
		t.Fatalf("stalemate: got %s want none", m)
	}
}

func TestBotNewGameClearsTable(t *testing.T) {
	bot := NewBot(Options{TTEntries: 1 << 12})
	pos := chessmg.NewPosition(kiwipete)
	bot.Think(pos, 0)
	if bot.Searcher().TT.Hashfull() == 0 {
		t.Fatalf("search left the table empty")
	}
	bot.NewGame()
	if got := bot.Searcher().TT.Hashfull(); got != 0 {
		t.Fatalf("hashfull after NewGame: got %d want 0", got)
	}
}
