package generator

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/artificialis/othello-gen/internal/game"
	"github.com/artificialis/othello-gen/internal/game/core"
)

// WriteRecords serializes records to w in the corpus line format: one
// game per line, moves comma-separated, each line newline-terminated.
func WriteRecords(w io.Writer, records []game.Record) error {
	bw := bufio.NewWriter(w)
	for i, r := range records {
		if _, err := bw.WriteString(r.Notation()); err != nil {
			return fmt.Errorf("generator: writing game %d: %w", i, err)
		}
		if err := bw.WriteByte('\n'); err != nil {
			return fmt.Errorf("generator: writing game %d: %w", i, err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("generator: flushing output: %w", err)
	}
	return nil
}

// WriteFile writes records to path, creating parent directories as
// needed. An existing file is truncated.
func WriteFile(path string, records []game.Record) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("generator: creating output directory: %w", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("generator: creating output file: %w", err)
	}

	if err := WriteRecords(f, records); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("generator: closing output file: %w", err)
	}
	return nil
}

// ReadRecords parses a corpus stream back into coordinate sequences, one
// game per line. Blank lines are skipped.
func ReadRecords(r io.Reader) ([][]core.Coordinate, error) {
	var games [][]core.Coordinate
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		coords, err := game.ParseRecord(scanner.Text())
		if err != nil {
			return nil, fmt.Errorf("generator: line %d: %w", line, err)
		}
		if coords == nil {
			continue
		}
		games = append(games, coords)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("generator: reading corpus: %w", err)
	}
	return games, nil
}
