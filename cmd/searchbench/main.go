package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"runtime/pprof"
	"time"

	"magicbot/chessmg"
	"magicbot/engine"
)

// Fixed-depth searches over a small position set. Each run starts from an
// empty table so node counts are comparable between builds.
var benchPositions = []string{
	chessmg.FENStartPos,
	"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
	"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
	"r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1",
	"rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8",
}

func main() {
	// --- Flags ---
	depthFlag := flag.Int("depth", 5, "search depth in plies")
	repeatFlag := flag.Int("repeat", 1, "number of passes over the positions")
	fenFlag := flag.String("fen", "", "FEN to search (empty = built-in position set)")
	ttFlag := flag.Int("tt", engine.DefaultTTEntries, "transposition table entries")
	verbose := flag.Bool("v", false, "print info lines for every iteration")
	cpuProfile := flag.String("cpuprofile", "", "write CPU profile to file")
	memProfile := flag.String("memprofile", "", "write memory profile (heap) to file")
	flag.Parse()

	if *depthFlag <= 0 || *depthFlag > engine.MaxDepth {
		log.Fatalf("depth must be in 1..%d, got %d", engine.MaxDepth, *depthFlag)
	}

	// --- Optional CPU profiling setup ---
	if *cpuProfile != "" {
		cpuFile, err := os.Create(*cpuProfile)
		if err != nil {
			log.Fatalf("could not create CPU profile: %v", err)
		}
		if err := pprof.StartCPUProfile(cpuFile); err != nil {
			log.Fatalf("could not start CPU profile: %v", err)
		}
		defer func() {
			pprof.StopCPUProfile()
			cpuFile.Close()
		}()
	}

	fens := benchPositions
	if *fenFlag != "" {
		if _, err := chessmg.ParseFEN(*fenFlag); err != nil {
			log.Fatalf("bad -fen: %v", err)
		}
		fens = []string{*fenFlag}
	}

	searcher := engine.NewSearcher(engine.NewTransTable(*ttFlag), nil)
	if *verbose {
		searcher.Output = os.Stdout
	}

	fmt.Printf("searchbench: positions=%d depth=%d repeat=%d\n", len(fens), *depthFlag, *repeatFlag)

	var totalNodes uint64
	startAll := time.Now()
	for i := 0; i < *repeatFlag; i++ {
		for _, fen := range fens {
			// Fresh position and table for each run
			pos := chessmg.NewPosition(fen)
			searcher.Reset()

			res := searcher.Search(context.Background(), pos, engine.Limits{Depth: *depthFlag})
			totalNodes += res.Nodes
			fmt.Printf("bestmove %v score %d nodes %d time=%v\n", res.Move, res.Score, res.Nodes, res.Elapsed)
		}
	}
	totalElapsed := time.Since(startAll)
	fmt.Printf("total nodes %d time %v nps %.0f\n", totalNodes, totalElapsed, float64(totalNodes)/totalElapsed.Seconds())

	// --- Optional heap profile at the end ---
	if *memProfile != "" {
		f, err := os.Create(*memProfile)
		if err != nil {
			log.Fatalf("could not create memory profile: %v", err)
		}
		defer f.Close()

		runtime.GC() // get up-to-date heap info
		if err := pprof.WriteHeapProfile(f); err != nil {
			log.Fatalf("could not write memory profile: %v", err)
		}
	}
}
