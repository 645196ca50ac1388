package fluent

import (
	"bufio"
	"fmt"
	"os"
	"regexp"
	"strconv"
)

// ResidualHistory holds the iteration-aligned residual columns scraped
// from a solver console transcript.
type ResidualHistory struct {
	Iter       []int
	Continuity []float64
	XVelocity  []float64
	YVelocity  []float64
}

// Len returns the number of usable residual rows.
func (h *ResidualHistory) Len() int { return len(h.Iter) }

// residualLine matches the iteration rows of a Fluent transcript:
// iteration count followed by at least three residual columns.
var residualLine = regexp.MustCompile(`^\s+(\d+)\s+([\d.e+-]+)\s+([\d.e+-]+)\s+([\d.e+-]+)`)

// residualFloor keeps exact zeros finite for log-scale plots.
const residualFloor = 1e-15

// ReadResiduals scrapes the residual history from a console transcript.
// Lines that do not look like iteration rows are skipped. Rows where
// all three residuals are exactly zero are discarded: they are the
// solver's restart sentinel, not a converged state. A zero alongside
// nonzero companions is replaced with 1e-15.
func ReadResiduals(path string) (*ResidualHistory, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	h := &ResidualHistory{}
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		m := residualLine.FindStringSubmatch(scanner.Text())
		if m == nil {
			continue
		}
		iter, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		cont, err1 := strconv.ParseFloat(m[2], 64)
		xv, err2 := strconv.ParseFloat(m[3], 64)
		yv, err3 := strconv.ParseFloat(m[4], 64)
		if err1 != nil || err2 != nil || err3 != nil {
			continue
		}
		if cont == 0 && xv == 0 && yv == 0 {
			continue
		}
		h.Iter = append(h.Iter, iter)
		h.Continuity = append(h.Continuity, floor(cont))
		h.XVelocity = append(h.XVelocity, floor(xv))
		h.YVelocity = append(h.YVelocity, floor(yv))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%s: scanning transcript: %w", path, err)
	}
	return h, nil
}

func floor(v float64) float64 {
	if v == 0 {
		return residualFloor
	}
	return v
}
