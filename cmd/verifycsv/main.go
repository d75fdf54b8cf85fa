// verifycsv scores labelled sample pairs from a CSV file and prints a
// per-row summary, for tuning thresholds against curated datasets offline.
//
// The input needs a header with <field>_ocr and <field>_user columns for the
// comparable fields plus an optional label column.
package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"io"
	"math"
	"os"
	"runtime"
	"strconv"

	"golang.org/x/sync/errgroup"

	"idverify/internal/verification"
)

func main() {
	workers := flag.Int("workers", runtime.NumCPU(), "concurrent verification workers")
	flag.Parse()
	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: verifycsv [-workers n] <samples.csv>")
		os.Exit(2)
	}

	if err := run(flag.Arg(0), *workers, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "verifycsv: %v\n", err)
		os.Exit(1)
	}
}

type sample struct {
	label     string
	extracted verification.Record
	stated    verification.Record
}

type scored struct {
	label  string
	result verification.Result
}

func run(path string, workers int, out io.Writer) error {
	samples, err := readSamples(path)
	if err != nil {
		return err
	}
	if workers < 1 {
		workers = 1
	}

	engine := verification.MustEngine()
	results := make([]scored, len(samples))

	var g errgroup.Group
	g.SetLimit(workers)
	for i, s := range samples {
		g.Go(func() error {
			results[i] = scored{label: s.label, result: engine.Verify(s.extracted, s.stated)}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	return writeSummary(out, results)
}

func readSamples(path string) ([]sample, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	reader := csv.NewReader(f)
	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	column := make(map[string]int, len(header))
	for i, name := range header {
		column[name] = i
	}

	get := func(row []string, name string) string {
		i, ok := column[name]
		if !ok || i >= len(row) {
			return ""
		}
		return row[i]
	}

	var samples []sample
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row: %w", err)
		}
		s := sample{
			label:     get(row, "label"),
			extracted: verification.Record{},
			stated:    verification.Record{},
		}
		for _, field := range verification.Fields {
			s.extracted[field] = get(row, string(field)+"_ocr")
			s.stated[field] = get(row, string(field)+"_user")
		}
		samples = append(samples, s)
	}
	return samples, nil
}

func writeSummary(out io.Writer, results []scored) error {
	w := csv.NewWriter(out)

	header := []string{"label", "decision", "overall_confidence"}
	for _, field := range verification.Fields {
		header = append(header, "field_"+string(field))
	}
	if err := w.Write(header); err != nil {
		return err
	}

	for _, r := range results {
		row := []string{r.label, string(r.result.Decision), formatScore(r.result.OverallScore)}
		for _, field := range verification.Fields {
			if score, ok := r.result.FieldScores[field]; ok {
				row = append(row, formatScore(score))
			} else {
				row = append(row, "")
			}
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	w.Flush()
	return w.Error()
}

func formatScore(v float64) string {
	return strconv.FormatFloat(math.Round(v*10000)/10000, 'f', -1, 64)
}
