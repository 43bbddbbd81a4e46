package engine

import (
	"bufio"
	"fmt"
	"io"
	"math/rand"
	"os"
	"strings"
	"sync"
	"time"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"magicbot/chessmg"
)

// Book is a set of opening lines, each a move sequence from the standard
// start position.
type Book struct {
	lines [][]chessmg.Move

	mu  sync.Mutex
	rnd *rand.Rand
}

// NewBook builds a book from already-resolved lines.
func NewBook(lines [][]chessmg.Move) *Book {
	return &Book{lines: lines, rnd: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

// LoadBook reads one game per line, moves in UCI notation separated by
// spaces. A fifth character of c or p (castle, en passant) is accepted and
// ignored, as is a blank line or one starting with '#'. Every line is replayed
// from the start position; an illegal move fails the whole load.
func LoadBook(r io.Reader) (*Book, error) {
	var lines [][]chessmg.Move
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 1024*1024)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		text := strings.TrimSpace(sc.Text())
		if text == "" || text[0] == '#' {
			continue
		}
		line, err := parseBookLine(text)
		if err != nil {
			return nil, fmt.Errorf("book line %d: %w", lineNo, err)
		}
		if len(line) > 0 {
			lines = append(lines, line)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading book: %w", err)
	}
	return NewBook(lines), nil
}

// LoadBookFile is LoadBook on the named file.
func LoadBookFile(path string) (*Book, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return LoadBook(f)
}

func parseBookLine(text string) ([]chessmg.Move, error) {
	pos := chessmg.NewPosition("")
	var line []chessmg.Move
	for _, tok := range strings.Fields(text) {
		if len(tok) == 5 && (tok[4] == 'c' || tok[4] == 'p') {
			tok = tok[:4]
		}
		m, err := chessmg.ParseMove(pos, tok)
		if err != nil {
			return nil, fmt.Errorf("move %d: %w", len(line)+1, err)
		}
		pos.MakeMove(m)
		line = append(line, m)
	}
	return line, nil
}

// Seed makes the choice between equal continuations reproducible.
func (b *Book) Seed(seed int64) {
	b.mu.Lock()
	b.rnd = rand.New(rand.NewSource(seed))
	b.mu.Unlock()
}

// Len returns the number of lines.
func (b *Book) Len() int { return len(b.lines) }

func hasPrefix(line, played []chessmg.Move) bool {
	if len(line) <= len(played) {
		return false
	}
	for i, m := range played {
		if line[i] != m {
			return false
		}
	}
	return true
}

// Lookup picks a random line that extends played and returns its next move,
// or NullMove when no line does. Lines are weighted by how often they occur.
func (b *Book) Lookup(played []chessmg.Move) chessmg.Move {
	var candidates []chessmg.Move
	for _, line := range b.lines {
		if hasPrefix(line, played) {
			candidates = append(candidates, line[len(played)])
		}
	}
	if len(candidates) == 0 {
		return chessmg.NullMove
	}
	b.mu.Lock()
	i := b.rnd.Intn(len(candidates))
	b.mu.Unlock()
	return candidates[i]
}

// Continuations counts how many lines continue played with each move.
func (b *Book) Continuations(played []chessmg.Move) map[chessmg.Move]int {
	counts := make(map[chessmg.Move]int)
	for _, line := range b.lines {
		if hasPrefix(line, played) {
			counts[line[len(played)]]++
		}
	}
	return counts
}

// NextMoves returns the distinct continuations of played in move order.
func (b *Book) NextMoves(played []chessmg.Move) []chessmg.Move {
	moves := maps.Keys(b.Continuations(played))
	slices.Sort(moves)
	return moves
}
