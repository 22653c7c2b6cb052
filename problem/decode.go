package problem

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/unixpickle/essentials"
	"gopkg.in/yaml.v3"
)

// Format names a problem document encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
	FormatCSV  Format = "csv"
)

// ParseFormat accepts yaml, yml, json or csv in any case.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "yaml", "yml":
		return FormatYAML, nil
	case "json":
		return FormatJSON, nil
	case "csv":
		return FormatCSV, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrFormat, s)
	}
}

// FormatFromPath infers the format from the file extension.
func FormatFromPath(path string) (Format, error) {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		return "", fmt.Errorf("%w: no extension on %q", ErrFormat, path)
	}

	return ParseFormat(ext)
}

// Load reads a problem file, picking the decoder from its extension.
// Errors are prefixed with the path.
func Load(path string) (*Problem, error) {
	f, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	return LoadAs(path, f)
}

// LoadAs reads a problem file in format f regardless of its extension.
func LoadAs(path string, f Format) (*Problem, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open problem file %s: %w", path, err)
	}
	defer file.Close()

	p, err := Decode(file, f)
	if err != nil {
		return nil, essentials.AddCtx(path, err)
	}

	return p, nil
}

// Decode reads one problem document from r.
func Decode(r io.Reader, f Format) (*Problem, error) {
	switch f {
	case FormatYAML, FormatJSON:
		return decodeDocument(r)
	case FormatCSV:
		return decodeCSV(r)
	default:
		return nil, fmt.Errorf("%w: %q", ErrFormat, f)
	}
}

// Cell is one cost entry in a YAML or JSON document: an integer, or one of
// the closed-route markers as a string.
type Cell struct {
	Cost int
	Open bool
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (c *Cell) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("%w: line %d: cost cell must be a scalar", ErrSyntax, node.Line)
	}
	v, open, err := parseCell(node.Value)
	if err != nil {
		return fmt.Errorf("%w: line %d", err, node.Line)
	}
	c.Cost, c.Open = v, open

	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (c Cell) MarshalYAML() (interface{}, error) {
	if !c.Open {
		return "x", nil
	}

	return c.Cost, nil
}

// Document is the YAML/JSON shape of a problem.
type Document struct {
	Sources      []string `yaml:"sources,omitempty"`
	Destinations []string `yaml:"destinations,omitempty"`
	Supply       []int    `yaml:"supply"`
	Demand       []int    `yaml:"demand"`
	Costs        [][]Cell `yaml:"costs"`
}

// Problem converts the document, checking labels against the vectors.
func (d Document) Problem() (*Problem, error) {
	rows := make([][]int, len(d.Costs))
	var closed [][2]int
	for i, r := range d.Costs {
		rows[i] = make([]int, len(r))
		for j, c := range r {
			rows[i][j] = c.Cost
			if !c.Open {
				closed = append(closed, [2]int{i, j})
			}
		}
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: no costs", ErrEmpty)
	}
	costs, err := newCosts(rows, closed)
	if err != nil {
		return nil, err
	}
	p, err := New(d.Supply, d.Demand, costs)
	if err != nil {
		return nil, err
	}
	if len(d.Sources) > 0 && len(d.Sources) != len(d.Supply) {
		return nil, fmt.Errorf("%w: %d source labels for %d supply points", ErrCountMismatch, len(d.Sources), len(d.Supply))
	}
	if len(d.Destinations) > 0 && len(d.Destinations) != len(d.Demand) {
		return nil, fmt.Errorf("%w: %d destination labels for %d demand points", ErrCountMismatch, len(d.Destinations), len(d.Demand))
	}
	p.Sources, p.Destinations = d.Sources, d.Destinations

	return p, nil
}

// DocumentOf is the inverse of Document.Problem.
func DocumentOf(p *Problem) Document {
	d := Document{
		Sources:      p.Sources,
		Destinations: p.Destinations,
		Supply:       p.Supply,
		Demand:       p.Demand,
		Costs:        make([][]Cell, p.Rows()),
	}
	for i := range d.Costs {
		d.Costs[i] = make([]Cell, p.Cols())
	}
	p.Costs.Grid().Do(func(i, j int, v int) bool {
		d.Costs[i][j] = Cell{Cost: v, Open: p.Costs.Allowed(i, j)}
		return true
	})

	return d
}

// decodeDocument handles YAML and JSON alike; JSON is a YAML subset.
func decodeDocument(r io.Reader) (*Problem, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var d Document
	if err := dec.Decode(&d); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmpty
		}
		if errors.Is(err, ErrSyntax) {
			return nil, err
		}

		return nil, fmt.Errorf("%w: %v", ErrFormat, err)
	}

	return d.Problem()
}

// decodeCSV reads the sheet layout:
//
//	,D1,D2,D3,supply
//	S1,8,6,10,20
//	S2,9,12,13,30
//	demand,10,25,15
//
// The first cell of the header and anything after the last demand value
// are ignored. Lines starting with # are comments.
func decodeCSV(r io.Reader) (*Problem, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true
	reader.Comment = '#'

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFormat, err)
	}
	if len(records) < 3 {
		return nil, fmt.Errorf("%w: CSV needs a header, at least one source row and a demand row", ErrEmpty)
	}

	header := records[0]
	m := len(header) - 2
	if m < 1 || !strings.EqualFold(strings.TrimSpace(header[len(header)-1]), "supply") {
		return nil, fmt.Errorf("%w: CSV header must end with a supply column", ErrFormat)
	}
	last := records[len(records)-1]
	if !strings.EqualFold(strings.TrimSpace(last[0]), "demand") {
		return nil, fmt.Errorf("%w: CSV must end with a demand row", ErrFormat)
	}

	p := &Problem{Destinations: trimAll(header[1 : m+1])}
	body := records[1 : len(records)-1]
	rows := make([][]int, len(body))
	var closed [][2]int
	for i, rec := range body {
		if len(rec) != m+2 {
			return nil, fmt.Errorf("%w: CSV row %d: expected %d columns, got %d", ErrCountMismatch, i+2, m+2, len(rec))
		}
		p.Sources = append(p.Sources, strings.TrimSpace(rec[0]))
		rows[i] = make([]int, m)
		for j := 0; j < m; j++ {
			v, open, err := parseCell(rec[j+1])
			if err != nil {
				return nil, fmt.Errorf("%w: CSV row %d, column %d", err, i+2, j+2)
			}
			if !open {
				closed = append(closed, [2]int{i, j})
			}
			rows[i][j] = v
		}
		s, err := strconv.Atoi(strings.TrimSpace(rec[m+1]))
		if err != nil {
			return nil, fmt.Errorf("%w: CSV row %d: supply %q", ErrSyntax, i+2, rec[m+1])
		}
		p.Supply = append(p.Supply, s)
	}

	if len(last) < m+1 {
		return nil, fmt.Errorf("%w: demand row has %d values for %d destinations", ErrCountMismatch, len(last)-1, m)
	}
	for j := 1; j <= m; j++ {
		d, err := strconv.Atoi(strings.TrimSpace(last[j]))
		if err != nil {
			return nil, fmt.Errorf("%w: CSV demand column %d: %q", ErrSyntax, j+1, last[j])
		}
		p.Demand = append(p.Demand, d)
	}

	if p.Costs, err = newCosts(rows, closed); err != nil {
		return nil, err
	}

	return p, nil
}

func trimAll(in []string) []string {
	out := make([]string, len(in))
	for k, s := range in {
		out[k] = strings.TrimSpace(s)
	}

	return out
}
