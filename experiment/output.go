package experiment

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"
)

// ErrMalformedLine is returned by ReadResults for a line that is not "<int> <float>".
var ErrMalformedLine = errors.New("experiment: malformed result line")

// WriteResults writes one "%d %f\n" line (size, mean diameter) per result,
// in ascending size order.
func WriteResults(w io.Writer, results []Result) error {
	sorted := make([]Result, len(results))
	copy(sorted, results)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Size < sorted[j].Size })

	bw := bufio.NewWriter(w)
	for _, r := range sorted {
		if _, err := fmt.Fprintf(bw, "%d %f\n", r.Size, r.Mean); err != nil {
			return err
		}
	}

	return bw.Flush()
}

// WriteFile creates (or truncates) path and writes results to it.
func WriteFile(path string, results []Result) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("experiment: create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("experiment: close %s: %w", path, cerr)
		}
	}()

	if err := WriteResults(f, results); err != nil {
		return fmt.Errorf("experiment: write %s: %w", path, err)
	}

	return nil
}

// ReadResults parses the format written by WriteResults. Blank lines are
// skipped; only Size and Mean are populated.
func ReadResults(r io.Reader) ([]Result, error) {
	var out []Result
	sc := bufio.NewScanner(r)
	for line := 1; sc.Scan(); line++ {
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		fields := strings.Fields(text)
		if len(fields) != 2 {
			return nil, fmt.Errorf("%w %d: %q", ErrMalformedLine, line, text)
		}
		size, err := strconv.Atoi(fields[0])
		if err != nil {
			return nil, fmt.Errorf("%w %d: size: %w", ErrMalformedLine, line, err)
		}
		mean, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return nil, fmt.Errorf("%w %d: mean: %w", ErrMalformedLine, line, err)
		}
		out = append(out, Result{Size: size, Mean: mean})
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	return out, nil
}
