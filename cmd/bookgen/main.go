package main

import (
	"bufio"
	"bytes"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/notnil/chess"

	"magicbot/chessmg"
	"magicbot/engine"
)

// bookgen turns PGN game collections into opening book lines:
//
//	go run ./cmd/bookgen -plies 16 -o book.txt games1.pgn games2.pgn
func main() {
	plies := flag.Int("plies", 16, "moves per line, in plies")
	minPlies := flag.Int("min", 6, "skip games shorter than this many plies")
	unique := flag.Bool("unique", false, "drop duplicate lines (removes popularity weighting)")
	outPath := flag.String("o", "", "output file (default stdout)")
	flag.Parse()

	if flag.NArg() == 0 {
		log.Fatalf("usage: bookgen [flags] file.pgn...")
	}
	if *plies <= 0 || *minPlies < 0 {
		log.Fatalf("-plies must be positive and -min non-negative")
	}

	var buf bytes.Buffer
	seen := make(map[string]bool)
	games, kept := 0, 0
	for _, path := range flag.Args() {
		f, err := os.Open(path)
		if err != nil {
			log.Fatalf("opening %s: %v", path, err)
		}
		n, lines, err := readLines(f, *plies, *minPlies)
		f.Close()
		if err != nil {
			log.Fatalf("%s: %v", path, err)
		}
		games += n
		for _, line := range lines {
			if *unique && seen[line] {
				continue
			}
			seen[line] = true
			buf.WriteString(line)
			buf.WriteByte('\n')
			kept++
		}
	}

	// Read the result back through the engine's loader so a bad line fails here.
	book, err := engine.LoadBook(bytes.NewReader(buf.Bytes()))
	if err != nil {
		log.Fatalf("generated book does not load: %v", err)
	}

	var out io.Writer = os.Stdout
	if *outPath != "" {
		f, err := os.Create(*outPath)
		if err != nil {
			log.Fatalf("creating %s: %v", *outPath, err)
		}
		defer f.Close()
		out = f
	}
	w := bufio.NewWriter(out)
	if _, err := w.Write(buf.Bytes()); err != nil {
		log.Fatalf("writing book: %v", err)
	}
	if err := w.Flush(); err != nil {
		log.Fatalf("writing book: %v", err)
	}

	counts := book.Continuations(nil)
	var first []string
	for _, m := range book.NextMoves(nil) {
		first = append(first, fmt.Sprintf("%s:%d", m, counts[m]))
	}
	log.Printf("%d games, %d lines, first moves %s", games, kept, strings.Join(first, " "))
}

// readLines returns the number of games read and one book line per game that
// starts from the standard position and is at least minPlies long.
func readLines(r io.Reader, plies, minPlies int) (int, []string, error) {
	scanner := chess.NewScanner(r)
	var lines []string
	games := 0
	for scanner.Scan() {
		game := scanner.Next()
		games++
		positions := game.Positions()
		moves := game.Moves()
		if len(moves) < minPlies || !isStartPosition(positions[0]) {
			continue
		}
		if len(moves) > plies {
			moves = moves[:plies]
		}
		var line []string
		for i, m := range moves {
			line = append(line, chess.UCINotation{}.Encode(positions[i], m))
		}
		lines = append(lines, strings.Join(line, " "))
	}
	if err := scanner.Err(); err != nil && err != io.EOF {
		return games, lines, err
	}
	return games, lines, nil
}

func isStartPosition(pos *chess.Position) bool {
	got := strings.Fields(pos.String())
	want := strings.Fields(chessmg.FENStartPos)
	return len(got) >= 4 && strings.Join(got[:4], " ") == strings.Join(want[:4], " ")
}
