// smoketest runs the scanner and candidate generator over a directory of
// plain-text documents and reports aggregate statistics: match counts per
// pattern class, candidate counts, and any flatten round-trip failures.
//
// Usage:
//
//	smoketest <directory>
//
// It walks the directory for .txt files, processes them concurrently, and
// prints a summary to stdout. Diagnostics go to stderr. Exits nonzero when
// any invariant check fails.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/EmesEmes/matriz-sub000/editor"
	"github.com/EmesEmes/matriz-sub000/scan"
)

const (
	maxWorkers   = 4
	expectedArgs = 2
)

type stats struct {
	mu             sync.Mutex
	filesScanned   int
	totalBytes     int64
	totalMatches   int
	totalCands     int
	emptyCandSpans int
	flattenOK      int
	flattenFail    int
	offsetFail     int
	kindCounts     map[scan.Kind]int
}

type fileState struct {
	path        string
	bytes       int64
	matches     int
	cands       int
	emptySpans  int
	flattenFail bool
	offsetFail  bool
	kindCounts  map[scan.Kind]int
}

func main() {
	if len(os.Args) != expectedArgs {
		fmt.Fprintf(os.Stderr, "Usage: %s <directory>\n", os.Args[0])
		os.Exit(1)
	}

	dirPath := os.Args[1]
	agg := &stats{kindCounts: make(map[scan.Kind]int)}

	var filePaths []string
	err := filepath.WalkDir(dirPath, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(d.Name(), ".txt") {
			return nil
		}
		filePaths = append(filePaths, path)
		return nil
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error walking directory: %v\n", err)
		os.Exit(1)
	}

	fmt.Fprintf(os.Stderr, "Found %d files to process\n", len(filePaths))
	start := time.Now()

	semaphore := make(chan struct{}, maxWorkers)
	var wg sync.WaitGroup

	for _, path := range filePaths {
		wg.Add(1)
		semaphore <- struct{}{}
		go func(p string) {
			defer wg.Done()
			defer func() { <-semaphore }()
			processFile(p, agg)
		}(path)
	}

	wg.Wait()

	fmt.Fprintf(os.Stderr, "\nCompleted in %s\n\n", time.Since(start).Round(time.Millisecond))
	printStats(agg)

	if agg.flattenFail > 0 || agg.offsetFail > 0 {
		os.Exit(1)
	}
}

func processFile(path string, agg *stats) {
	raw, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading %s: %v\n", path, err)
		return
	}
	text := string(raw)

	state := &fileState{
		path:       path,
		bytes:      int64(len(raw)),
		kindCounts: make(map[scan.Kind]int),
	}

	matches := scan.Scan(text)
	state.matches = len(matches)
	for _, m := range matches {
		state.kindCounts[m.Kind]++
		if m.Start < 0 || m.End > len(text) || text[m.Start:m.End] != m.Text {
			state.offsetFail = true
			fmt.Fprintf(os.Stderr, "OFFSET_FAIL: %s: [%d:%d) does not slice to %q\n",
				path, m.Start, m.End, m.Text)
		}
		cands := scan.Options(m)
		state.cands += len(cands)
		if len(cands) == 0 {
			state.emptySpans++
		}
	}

	b := editor.New(text, nil)
	b.MarkNumbers()
	if got := b.Finalize(); got != text {
		state.flattenFail = true
		pos := firstDivergence(text, got)
		fmt.Fprintf(os.Stderr, "FLATTEN_FAIL: %s: first divergence at byte %d\n", path, pos)
	}

	fmt.Fprintf(os.Stderr, "DONE  %s (%d matches, %d candidates)\n",
		filepath.Base(path), state.matches, state.cands)

	merge(state, agg)
}

func merge(fs *fileState, agg *stats) {
	agg.mu.Lock()
	defer agg.mu.Unlock()

	agg.filesScanned++
	agg.totalBytes += fs.bytes
	agg.totalMatches += fs.matches
	agg.totalCands += fs.cands
	agg.emptyCandSpans += fs.emptySpans

	if fs.flattenFail {
		agg.flattenFail++
	} else {
		agg.flattenOK++
	}
	if fs.offsetFail {
		agg.offsetFail++
	}

	for kind, count := range fs.kindCounts {
		agg.kindCounts[kind] += count
	}
}

// firstDivergence finds the byte position where two strings first differ.
func firstDivergence(a, b string) int {
	n := min(len(a), len(b))
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			return i
		}
	}
	return n
}

func printStats(agg *stats) {
	fmt.Printf("Files scanned:        %d\n", agg.filesScanned)
	fmt.Printf("Total bytes:          %d\n", agg.totalBytes)
	fmt.Printf("Total matches:        %d\n", agg.totalMatches)
	fmt.Printf("Total candidates:     %d\n", agg.totalCands)
	fmt.Printf("Empty-menu spans:     %d\n", agg.emptyCandSpans)
	fmt.Printf("Flatten OK:           %d\n", agg.flattenOK)
	fmt.Printf("Flatten FAIL:         %d\n", agg.flattenFail)
	fmt.Printf("Offset FAIL:          %d\n", agg.offsetFail)
	fmt.Println()

	fmt.Println("Match kind distribution:")
	printKindStats("Abbreviation", scan.Abbreviation, agg)
	printKindStats("Address", scan.Address, agg)
	printKindStats("Measurement", scan.Measurement, agg)
	printKindStats("Percentage", scan.Percentage, agg)
	printKindStats("Signed", scan.Signed, agg)
	printKindStats("Number", scan.Number, agg)
}

func printKindStats(label string, kind scan.Kind, agg *stats) {
	count := agg.kindCounts[kind]
	percentage := 0.0
	if agg.totalMatches > 0 {
		percentage = float64(count) / float64(agg.totalMatches) * 100
	}
	fmt.Printf("  %-15s %d  (%.1f%%)\n", label+":", count, percentage)
}
