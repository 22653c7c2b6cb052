package report

import (
	"github.com/chaitanyabirla/transportcost/problem"
	"github.com/chaitanyabirla/transportcost/vam"
)

// Route is one allocation with resolved point names.
type Route struct {
	Step     int    `json:"step" yaml:"step"`
	From     string `json:"from" yaml:"from"`
	To       string `json:"to" yaml:"to"`
	Quantity int    `json:"quantity" yaml:"quantity"`
	UnitCost int    `json:"unitCost" yaml:"unitCost"`
	Cost     int    `json:"cost" yaml:"cost"`
}

// SourceCost is the cost attributed to one supply point.
type SourceCost struct {
	Source string `json:"source" yaml:"source"`
	Cost   int    `json:"cost" yaml:"cost"`
	Share  string `json:"sharePercent" yaml:"sharePercent"`
}

// Plan is the serializable view of a solution. Decimal values are kept as
// strings so json and yaml print them identically.
type Plan struct {
	Sources         []string     `json:"sources" yaml:"sources"`
	Destinations    []string     `json:"destinations" yaml:"destinations"`
	Supply          []int        `json:"supply" yaml:"supply"`
	Demand          []int        `json:"demand" yaml:"demand"`
	Routes          []Route      `json:"routes" yaml:"routes"`
	TotalCost       int          `json:"totalCost" yaml:"totalCost"`
	TotalQuantity   int          `json:"totalQuantity" yaml:"totalQuantity"`
	AverageUnitCost string       `json:"averageUnitCost" yaml:"averageUnitCost"`
	BySource        []SourceCost `json:"bySource" yaml:"bySource"`
	Currency        string       `json:"currency,omitempty" yaml:"currency,omitempty"`
}

// NewPlan joins p and res into a Plan.
func NewPlan(p *problem.Problem, res vam.Result, currency string) Plan {
	sum := res.Summary()
	plan := Plan{
		Supply:          p.Supply,
		Demand:          p.Demand,
		Routes:          make([]Route, 0, len(res.Allocations)),
		TotalCost:       res.TotalCost,
		TotalQuantity:   sum.TotalQuantity,
		AverageUnitCost: sum.AverageUnitCost.StringFixed(2),
		Currency:        currency,
	}
	for i := 0; i < p.Rows(); i++ {
		plan.Sources = append(plan.Sources, p.SourceName(i))
	}
	for j := 0; j < p.Cols(); j++ {
		plan.Destinations = append(plan.Destinations, p.DestinationName(j))
	}
	for k, a := range res.Allocations {
		plan.Routes = append(plan.Routes, Route{
			Step:     k + 1,
			From:     p.SourceName(a.Supply),
			To:       p.DestinationName(a.Demand),
			Quantity: a.Quantity,
			UnitCost: a.UnitCost,
			Cost:     a.Cost(),
		})
	}
	for i, c := range sum.SupplyCost {
		plan.BySource = append(plan.BySource, SourceCost{
			Source: p.SourceName(i),
			Cost:   c,
			Share:  sum.SupplyShare[i].StringFixed(2),
		})
	}

	return plan
}
