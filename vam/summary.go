package vam

import "github.com/shopspring/decimal"

// Summary aggregates a Result for reporting.
type Summary struct {
	TotalCost     int
	TotalQuantity int
	// Routes counts allocations that moved a positive quantity.
	Routes int
	// AverageUnitCost is TotalCost/TotalQuantity rounded to 4 places;
	// zero when nothing was shipped.
	AverageUnitCost decimal.Decimal
	// SupplyCost[i] is the cost of everything shipped from supply point i.
	SupplyCost []int
	// SupplyShare[i] is SupplyCost[i] as a percentage of TotalCost,
	// rounded to 2 places; all zero when TotalCost is zero.
	SupplyShare []decimal.Decimal
}

// Summary computes the aggregate view of r.
func (r Result) Summary() Summary {
	s := Summary{
		TotalCost:       r.TotalCost,
		AverageUnitCost: decimal.Zero,
		SupplyCost:      make([]int, r.Rows),
		SupplyShare:     make([]decimal.Decimal, r.Rows),
	}
	for _, a := range r.Allocations {
		s.TotalQuantity += a.Quantity
		if a.Quantity > 0 {
			s.Routes++
		}
		s.SupplyCost[a.Supply] += a.Cost()
	}

	if s.TotalQuantity > 0 {
		s.AverageUnitCost = decimal.NewFromInt(int64(r.TotalCost)).
			Div(decimal.NewFromInt(int64(s.TotalQuantity))).
			Round(4)
	}
	hundred := decimal.NewFromInt(100)
	total := decimal.NewFromInt(int64(r.TotalCost))
	for i, c := range s.SupplyCost {
		if r.TotalCost == 0 {
			s.SupplyShare[i] = decimal.Zero
			continue
		}
		s.SupplyShare[i] = decimal.NewFromInt(int64(c)).Mul(hundred).Div(total).Round(2)
	}

	return s
}
