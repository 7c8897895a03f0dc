package lifeio

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-sparse-gol/model"
)

// commentPrefix marks header and comment lines, such as the one WriteResults emits
const commentPrefix = "#"

// ReadSeeds parses whitespace-separated "x y" integer pairs. Pairs may span lines
// and lines have no length limit; lines starting with '#' are skipped.
func ReadSeeds(r io.Reader) ([]model.Coord, error) {
	var (
		seeds   []model.Coord
		pending []int64
		line    int
		br      = bufio.NewReader(r)
	)

	for {
		raw, readErr := br.ReadString('\n')
		if readErr != nil && readErr != io.EOF {
			return nil, errors.Wrapf(readErr, "[ReadSeeds] failed to read line %d", line+1)
		}
		if readErr == io.EOF && raw == "" {
			break
		}
		line++

		text := strings.TrimSpace(raw)
		if text != "" && !strings.HasPrefix(text, commentPrefix) {
			for _, field := range strings.Fields(text) {
				v, err := strconv.ParseInt(field, 10, 64)
				if err != nil {
					return nil, errors.Wrapf(err, "[ReadSeeds] failed to parse coordinate on line %d", line)
				}
				pending = append(pending, v)
				if len(pending) == 2 {
					seeds = append(seeds, model.Coord{X: pending[0], Y: pending[1]})
					pending = pending[:0]
				}
			}
		}

		if readErr == io.EOF {
			break
		}
	}
	if len(pending) != 0 {
		return nil, errors.Errorf("[ReadSeeds] dangling x coordinate %d without y at end of input", pending[0])
	}

	return seeds, nil
}

// ReadSeedsFile reads seeds from the named file
func ReadSeedsFile(filename string) ([]model.Coord, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, errors.Wrapf(err, "[ReadSeedsFile] failed to open file: %+v", filename)
	}
	defer f.Close()

	seeds, err := ReadSeeds(f)
	if err != nil {
		return nil, errors.Wrapf(err, "[ReadSeedsFile] failed to read seeds from file: %+v", filename)
	}
	return seeds, nil
}
