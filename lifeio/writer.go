package lifeio

import (
	"bufio"
	"io"
	"os"
	"slices"
	"strconv"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-sparse-gol/model"
)

// ResultHeader is the first line of every result file
const ResultHeader = "#Life 1.06"

// WriteResults writes the header and one "x y" line per cell, sorted by row then column
func WriteResults(w io.Writer, cells []model.Coord) error {
	sorted := slices.Clone(cells)
	slices.SortFunc(sorted, model.CompareCoords)

	bw := bufio.NewWriter(w)
	if _, err := bw.WriteString(ResultHeader + "\n"); err != nil {
		return errors.Wrap(err, "[WriteResults] failed to write header")
	}

	var buf []byte
	for _, c := range sorted {
		buf = strconv.AppendInt(buf[:0], c.X, 10)
		buf = append(buf, ' ')
		buf = strconv.AppendInt(buf, c.Y, 10)
		buf = append(buf, '\n')
		if _, err := bw.Write(buf); err != nil {
			return errors.Wrapf(err, "[WriteResults] failed to write cell %v", c)
		}
	}

	if err := bw.Flush(); err != nil {
		return errors.Wrap(err, "[WriteResults] failed to flush output")
	}
	return nil
}

// WriteResultsFile creates or truncates the named file and writes the results to it
func WriteResultsFile(filename string, cells []model.Coord) error {
	f, err := os.Create(filename)
	if err != nil {
		return errors.Wrapf(err, "[WriteResultsFile] failed to create file: %+v", filename)
	}

	if err = WriteResults(f, cells); err != nil {
		f.Close()
		return errors.Wrapf(err, "[WriteResultsFile] failed to write file: %+v", filename)
	}
	if err = f.Close(); err != nil {
		return errors.Wrapf(err, "[WriteResultsFile] failed to close file: %+v", filename)
	}
	return nil
}
