package catalog

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"

	"golang.org/x/sync/errgroup"
)

// Load builds a catalog from the two sources. A nil reader is treated as a
// missing source and contributes nothing.
func Load(roster, tanks io.Reader) (*Catalog, error) {
	b := NewBuilder()

	if roster != nil {
		stats, err := ParseRoster(roster, b)
		if err != nil {
			return nil, fmt.Errorf("failed to read roster: %w", err)
		}
		logStats("roster", stats)
	}

	if tanks != nil {
		stats, err := ParseTanks(tanks, b)
		if err != nil {
			return nil, fmt.Errorf("failed to read tanks: %w", err)
		}
		logStats("tanks", stats)
	}

	return b.Build(), nil
}

// LoadFiles reads the roster and tank files concurrently. A file that does
// not exist yields an empty dataset; the bot keeps working with whatever
// data it has.
func LoadFiles(rosterPath, tankPath string) (*Catalog, error) {
	b := NewBuilder()

	// The two parsers write to disjoint maps inside the builder.
	var g errgroup.Group
	g.Go(func() error {
		return parseFile(rosterPath, "roster", func(r io.Reader) (ParseStats, error) {
			return ParseRoster(r, b)
		})
	})
	g.Go(func() error {
		return parseFile(tankPath, "tanks", func(r io.Reader) (ParseStats, error) {
			return ParseTanks(r, b)
		})
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	cat := b.Build()
	log.Printf("[Catalog] Loaded %d characters and %d tanks", cat.CharacterCount(), cat.TankCount())
	return cat, nil
}

func parseFile(path, label string, parse func(io.Reader) (ParseStats, error)) error {
	if path == "" {
		log.Printf("[Catalog] No %s file configured", label)
		return nil
	}

	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			log.Printf("[Catalog] File %s not found, %s will be empty", path, label)
			return nil
		}
		return fmt.Errorf("failed to open %s file %s: %w", label, path, err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil {
			log.Printf("[Catalog] Failed to close %s: %v", path, closeErr)
		}
	}()

	stats, err := parse(f)
	if err != nil {
		return fmt.Errorf("failed to read %s file %s: %w", label, path, err)
	}
	logStats(label, stats)
	return nil
}

func logStats(label string, stats ParseStats) {
	if stats.Skipped > 0 {
		log.Printf("[Catalog] %s: accepted %d lines, skipped %d", label, stats.Accepted, stats.Skipped)
	}
}
