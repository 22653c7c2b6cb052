package vam

import "fmt"

// Penalty is the VAM opportunity cost of a row or column.
//
//   - Ordinary: Value = second-smallest open cost − smallest open cost.
//   - Forced:   only one open cell is left; Value is 0 and the line ranks
//     above every ordinary penalty.
//
// Min is the smallest open cost and At the index of the first cell holding
// it, so the chosen line's target cell is known without a second scan.
type Penalty struct {
	Value  int
	Forced bool
	Min    int
	At     int
}

// String implements fmt.Stringer.
func (p Penalty) String() string {
	if p.Forced {
		return fmt.Sprintf("forced(%d)", p.Min)
	}

	return fmt.Sprintf("%d", p.Value)
}

// Compare returns +1 if p ranks above q, -1 if below, 0 if they tie.
// Forced beats ordinary; two forced penalties rank by Min, lower first.
func (p Penalty) Compare(q Penalty) int {
	switch {
	case p.Forced && !q.Forced:
		return 1
	case !p.Forced && q.Forced:
		return -1
	case p.Forced && q.Forced:
		return cmpInt(q.Min, p.Min)
	default:
		return cmpInt(p.Value, q.Value)
	}
}

func cmpInt(a, b int) int {
	switch {
	case a > b:
		return 1
	case a < b:
		return -1
	default:
		return 0
	}
}

// linePenalty scans the costs of one line; open(k) reports whether cell k
// of the line is still open. ok is false when the line has no open cell.
func linePenalty(size int, cost func(k int) int, open func(k int) bool) (p Penalty, ok bool) {
	count := 0
	min1, min2 := 0, 0
	at := -1
	for k := 0; k < size; k++ {
		if !open(k) {
			continue
		}
		c := cost(k)
		switch {
		case count == 0:
			min1, at = c, k
		case c < min1:
			min2 = min1
			min1, at = c, k
		case count == 1 || c < min2:
			min2 = c
		}
		count++
	}

	switch count {
	case 0:
		return Penalty{}, false
	case 1:
		return Penalty{Forced: true, Min: min1, At: at}, true
	default:
		return Penalty{Value: min2 - min1, Min: min1, At: at}, true
	}
}
