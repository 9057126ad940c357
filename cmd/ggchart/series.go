package main

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gogpu/ggchart/config"
	"github.com/gogpu/ggchart/signal"
)

var errBadCSV = errors.New("bad csv")

// resolvePath interprets a series file relative to the configuration file.
func resolvePath(configFile, file string) string {
	if filepath.IsAbs(file) || configFile == "" {
		return file
	}
	return filepath.Join(filepath.Dir(configFile), file)
}

// loadSeries reads the columns of s from path. Without an X column the
// samples are equally spaced by s.Period starting at s.XStart.
func loadSeries(path string, s config.Series) (signal.Source, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("series %q: %w", s.Name, err)
	}
	defer f.Close()

	xs, ys, err := readColumns(f, s)
	if err != nil {
		return nil, fmt.Errorf("series %q: %s: %w", s.Name, path, err)
	}
	if xs == nil {
		src, err := signal.NewUniform(ys, s.Period, s.XStart)
		if err != nil {
			return nil, fmt.Errorf("series %q: %w", s.Name, err)
		}
		return src, nil
	}
	src, err := signal.NewXY(xs, ys)
	if err != nil {
		return nil, fmt.Errorf("series %q: %w", s.Name, err)
	}
	return src, nil
}

// readColumns parses the Y column, and the X column when configured.
// X values must not decrease.
func readColumns(r io.Reader, s config.Series) (xs, ys []float64, err error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.ReuseRecord = true
	cr.TrimLeadingSpace = true

	for line := 1; ; line++ {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, err
		}
		if line == 1 && s.Header {
			continue
		}

		y, err := field(rec, s.YColumn, line)
		if err != nil {
			return nil, nil, err
		}
		ys = append(ys, y)

		if s.XColumn == nil {
			continue
		}
		x, err := field(rec, *s.XColumn, line)
		if err != nil {
			return nil, nil, err
		}
		if n := len(xs); n > 0 && x < xs[n-1] {
			return nil, nil, fmt.Errorf("%w: line %d: x %g decreases", errBadCSV, line, x)
		}
		xs = append(xs, x)
	}
	if len(ys) == 0 {
		return nil, nil, fmt.Errorf("%w: no samples", errBadCSV)
	}
	return xs, ys, nil
}

func field(rec []string, col, line int) (float64, error) {
	if col >= len(rec) {
		return 0, fmt.Errorf("%w: line %d has no column %d", errBadCSV, line, col)
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(rec[col]), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: line %d: %v", errBadCSV, line, err)
	}
	return v, nil
}
