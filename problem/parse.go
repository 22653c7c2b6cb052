package problem

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/unixpickle/essentials"

	"github.com/chaitanyabirla/transportcost/matrix"
)

// closedTokens mark a route that cannot be used. Compared lower-cased.
var closedTokens = map[string]bool{"x": true, "-": true, "inf": true}

// ParseVector parses a comma-separated list of integers such as
// "20, 30, 50". Whitespace around entries is ignored. Sign checks are left
// to the solver.
//
// Errors: ErrEmpty, ErrSyntax (with the 1-based entry number).
func ParseVector(text string) ([]int, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmpty
	}
	fields := strings.Split(text, ",")
	out := make([]int, len(fields))
	for k, f := range fields {
		v, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			return nil, fmt.Errorf("%w: entry %d: %q", ErrSyntax, k+1, strings.TrimSpace(f))
		}
		out[k] = v
	}

	return out, nil
}

// ParseMatrix parses a cost grid: one row per line, cells separated by
// commas. Blank lines are skipped. A cell reading x, - or inf closes the
// route.
//
// Errors: ErrEmpty, ErrSyntax (with row and column), matrix.ErrRagged,
// matrix.ErrNegativeCost.
func ParseMatrix(text string) (*matrix.Costs, error) {
	var (
		rows   [][]int
		closed [][2]int
	)
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		i := len(rows)
		fields := strings.Split(line, ",")
		if i > 0 && len(fields) != len(rows[0]) {
			return nil, fmt.Errorf("%w: row %d has %d entries, row 1 has %d", matrix.ErrRagged, i+1, len(fields), len(rows[0]))
		}
		row := make([]int, len(fields))
		for j, f := range fields {
			v, open, err := parseCell(f)
			if err != nil {
				return nil, fmt.Errorf("%w: row %d, column %d", err, i+1, j+1)
			}
			if !open {
				closed = append(closed, [2]int{i, j})
			}
			row[j] = v
		}
		rows = append(rows, row)
	}
	if len(rows) == 0 {
		return nil, ErrEmpty
	}

	return newCosts(rows, closed)
}

// ParseText parses the three free-text inputs of a problem. Errors are
// prefixed with the input they came from.
func ParseText(supply, demand, costs string) (*Problem, error) {
	s, err := ParseVector(supply)
	if err != nil {
		return nil, essentials.AddCtx("supply", err)
	}
	d, err := ParseVector(demand)
	if err != nil {
		return nil, essentials.AddCtx("demand", err)
	}
	c, err := ParseMatrix(costs)
	if err != nil {
		return nil, essentials.AddCtx("costs", err)
	}

	return New(s, d, c)
}

// parseCell reads one cost cell. open is false for a closed-route marker.
func parseCell(text string) (cost int, open bool, err error) {
	text = strings.TrimSpace(text)
	if closedTokens[strings.ToLower(text)] {
		return 0, false, nil
	}
	v, err := strconv.Atoi(text)
	if err != nil {
		return 0, false, fmt.Errorf("%w: %q", ErrSyntax, text)
	}

	return v, true, nil
}

// newCosts builds the cost grid and closes the listed cells.
func newCosts(rows [][]int, closed [][2]int) (*matrix.Costs, error) {
	c, err := matrix.NewCostsFrom(rows)
	if err != nil {
		return nil, err
	}
	for _, ij := range closed {
		if err = c.Forbid(ij[0], ij[1]); err != nil {
			return nil, err
		}
	}

	return c, nil
}
