package report

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"gopkg.in/yaml.v3"

	"github.com/chaitanyabirla/transportcost/problem"
	"github.com/chaitanyabirla/transportcost/vam"
)

// Format selects the renderer.
type Format string

const (
	Text Format = "text"
	JSON Format = "json"
	YAML Format = "yaml"
	CSV  Format = "csv"
)

// ErrUnknownFormat is returned by ParseFormat and Render.
var ErrUnknownFormat = errors.New("report: unsupported output format")

// ParseFormat accepts text, json, yaml (or yml) and csv in any case.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case Text, JSON, YAML, CSV:
		return f, nil
	case "yml":
		return YAML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

// Option configures rendering.
type Option func(*options)

type options struct {
	currency string
}

// WithCurrency prefixes money amounts in the text report and sets the
// currency field of structured output.
func WithCurrency(symbol string) Option {
	return func(o *options) { o.currency = symbol }
}

// Render writes the solution of p in format f.
func Render(w io.Writer, p *problem.Problem, res vam.Result, f Format, opts ...Option) error {
	var o options
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	plan := NewPlan(p, res, o.currency)

	switch f {
	case Text:
		return renderText(w, p, plan)
	case JSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")

		return enc.Encode(plan)
	case YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(plan); err != nil {
			return err
		}

		return enc.Close()
	case CSV:
		return renderCSV(w, plan)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, f)
	}
}

// renderText mirrors the confirmation-then-result layout of the form the
// tool grew out of.
func renderText(w io.Writer, p *problem.Problem, plan Plan) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	var b strings.Builder

	b.WriteString("Input Data Confirmation\n")
	fmt.Fprintf(&b, "Supply: %v\n", plan.Supply)
	fmt.Fprintf(&b, "Demand: %v\n", plan.Demand)
	b.WriteString("Cost Matrix:\n")
	if _, err := io.WriteString(tw, b.String()); err != nil {
		return err
	}
	b.Reset()

	b.WriteString("\t")
	for _, d := range plan.Destinations {
		b.WriteString(d + "\t")
	}
	b.WriteString("Supply\t\n")
	grid := p.Costs.Grid()
	for i, s := range plan.Sources {
		b.WriteString(s + "\t")
		row, err := grid.Row(i)
		if err != nil {
			return err
		}
		for j, v := range row {
			if !p.Costs.Allowed(i, j) {
				b.WriteString("x\t")
				continue
			}
			b.WriteString(strconv.Itoa(v) + "\t")
		}
		b.WriteString(strconv.Itoa(plan.Supply[i]) + "\t\n")
	}
	b.WriteString("Demand\t")
	for _, d := range plan.Demand {
		b.WriteString(strconv.Itoa(d) + "\t")
	}
	b.WriteString("\t\n\n")

	b.WriteString("Allocation Plan\n")
	b.WriteString("Step\tFrom\tTo\tQuantity\tUnit Cost\tCost\t\n")
	for _, r := range plan.Routes {
		fmt.Fprintf(&b, "%d\t%s\t%s\t%d\t%d\t%d\t\n", r.Step, r.From, r.To, r.Quantity, r.UnitCost, r.Cost)
	}
	b.WriteString("\n")

	if _, err := io.WriteString(tw, b.String()); err != nil {
		return err
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	_, err := fmt.Fprintf(w, "Units shipped: %d\nAverage unit cost: %s%s\nThe Basic Feasible Solution is: %s%d\n",
		plan.TotalQuantity, plan.Currency, plan.AverageUnitCost, plan.Currency, plan.TotalCost)

	return err
}

// renderCSV writes one row per route plus a closing total row.
func renderCSV(w io.Writer, plan Plan) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"step", "from", "to", "quantity", "unit_cost", "cost"}); err != nil {
		return err
	}
	for _, r := range plan.Routes {
		rec := []string{
			strconv.Itoa(r.Step), r.From, r.To,
			strconv.Itoa(r.Quantity), strconv.Itoa(r.UnitCost), strconv.Itoa(r.Cost),
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	if err := cw.Write([]string{"total", "", "", strconv.Itoa(plan.TotalQuantity), plan.AverageUnitCost, strconv.Itoa(plan.TotalCost)}); err != nil {
		return err
	}
	cw.Flush()

	return cw.Error()
}
