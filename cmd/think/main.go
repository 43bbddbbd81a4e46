package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"time"

	"magicbot/chessmg"
	"magicbot/engine"
)

func main() {
	fenFlag := flag.String("fen", "", "starting FEN (empty = startpos)")
	movesFlag := flag.String("moves", "", "space-separated UCI moves played from -fen")
	depthFlag := flag.Int("depth", 0, "fixed search depth (0 = use time limits)")
	moveTime := flag.Duration("movetime", 0, "fixed time for this move")
	clock := flag.Duration("clock", 0, "time left on the mover's clock")
	inc := flag.Duration("inc", 0, "increment per move")
	bookPath := flag.String("book", "", "opening book file (one line of UCI moves per game)")
	seed := flag.Int64("seed", 0, "book random seed (0 = time based)")
	ttEntries := flag.Int("tt", engine.DefaultTTEntries, "transposition table entries")
	quiet := flag.Bool("q", false, "suppress info lines")
	flag.Parse()

	if *depthFlag < 0 || *depthFlag > engine.MaxDepth {
		log.Fatalf("depth must be in 0..%d, got %d", engine.MaxDepth, *depthFlag)
	}

	fen := *fenFlag
	if fen == "" {
		fen = chessmg.FENStartPos
	}
	pos, err := chessmg.ParseFEN(fen)
	if err != nil {
		log.Fatalf("bad -fen: %v", err)
	}
	for _, s := range strings.Fields(*movesFlag) {
		m, err := chessmg.ParseMove(pos, s)
		if err != nil {
			log.Fatalf("bad -moves: %v", err)
		}
		pos.MakeMove(m)
	}

	opts := engine.Options{TTEntries: *ttEntries}
	if !*quiet {
		opts.Output = os.Stdout
	}
	if *bookPath != "" {
		book, err := engine.LoadBookFile(*bookPath)
		if err != nil {
			log.Fatalf("loading book: %v", err)
		}
		if *seed != 0 {
			book.Seed(*seed)
		}
		opts.Book = book
	}
	bot := engine.NewBot(opts)

	// Ctrl-C stops the search and still prints the best move so far.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	limits := engine.Limits{Depth: *depthFlag, MoveTime: *moveTime, Remaining: *clock, Increment: *inc}
	if *depthFlag > 0 && *moveTime == 0 && *clock == 0 {
		limits.Infinite = true
	}
	if !*quiet {
		fmt.Println(pos)
	}
	start := time.Now()
	best := bot.ThinkContext(ctx, pos, limits)
	if best.IsNull() {
		fmt.Printf("no legal moves: %v\n", pos.Status())
		return
	}
	fmt.Printf("bestmove %s (%v)\n", best, time.Since(start).Round(time.Millisecond))
}
