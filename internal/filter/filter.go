// Package filter splits a monolithic feed dump into per-season files.
//
// The dump is newline-delimited JSON. Splitting only needs two fields per
// line, so records are probed with gjson instead of being fully decoded.
package filter

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/tidwall/gjson"
)

// maxLineBytes bounds one feed record. The largest observed records are
// election results at a few hundred kilobytes.
const maxLineBytes = 8 << 20

// Stats reports what one Split run did.
type Stats struct {
	Lines     int
	Written   int
	Malformed int
	Files     []string
}

// Split reads ndjson records from r and appends each to an ndjson file
// named for its sim and season under outDir. Lines that are not JSON
// objects or lack the routing fields are counted, not fatal.
func Split(r io.Reader, outDir string) (Stats, error) {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return Stats{}, fmt.Errorf("create output dir: %w", err)
	}

	outputs := map[string]*bufio.Writer{}
	files := map[string]*os.File{}
	defer func() {
		for _, f := range files {
			_ = f.Close()
		}
	}()

	var stats Stats
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64<<10), maxLineBytes)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		stats.Lines++

		if !gjson.ValidBytes(line) {
			stats.Malformed++
			continue
		}
		sim := gjson.GetBytes(line, "sim")
		season := gjson.GetBytes(line, "season")
		if sim.Type != gjson.String || !season.Exists() {
			stats.Malformed++
			continue
		}

		name := fmt.Sprintf("%s-s%d.ndjson", sim.String(), season.Int())
		w, ok := outputs[name]
		if !ok {
			path := filepath.Join(outDir, name)
			f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
			if err != nil {
				return stats, fmt.Errorf("open %s: %w", path, err)
			}
			files[name] = f
			w = bufio.NewWriter(f)
			outputs[name] = w
			stats.Files = append(stats.Files, path)
		}
		if _, err := w.Write(line); err != nil {
			return stats, fmt.Errorf("write %s: %w", name, err)
		}
		if err := w.WriteByte('\n'); err != nil {
			return stats, fmt.Errorf("write %s: %w", name, err)
		}
		stats.Written++
	}
	if err := scanner.Err(); err != nil {
		return stats, fmt.Errorf("read dump: %w", err)
	}

	for name, w := range outputs {
		if err := w.Flush(); err != nil {
			return stats, fmt.Errorf("flush %s: %w", name, err)
		}
	}
	return stats, nil
}

// SplitFile is Split over a dump on disk.
func SplitFile(path, outDir string) (Stats, error) {
	f, err := os.Open(path)
	if err != nil {
		return Stats{}, fmt.Errorf("open dump: %w", err)
	}
	defer f.Close()
	return Split(f, outDir)
}
