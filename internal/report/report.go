// SPDX-License-Identifier: MIT

// Package report renders polygons, sequences and comparisons for the CLI,
// either as an aligned text table or as a YAML document.
package report

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"text/tabwriter"

	"github.com/katalvlaran/regpoly/internal/config"
	"github.com/katalvlaran/regpoly/polygon"
	"github.com/katalvlaran/regpoly/sequence"
	"gopkg.in/yaml.v3"
)

// Renderer writes reports according to its options.
type Renderer struct {
	cfg renderConfig
}

// New returns a Renderer; options apply in order.
func New(opts ...Option) *Renderer {
	cfg := defaultRenderConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Renderer{cfg: cfg}
}

type polygonDoc struct {
	Polygon          string `yaml:"polygon"`
	polygon.Snapshot `yaml:",inline"`
	Efficiency       float64           `yaml:"efficiency"`
	Calls            map[string]uint64 `yaml:"calls,omitempty"`
}

type sequenceDoc struct {
	Sequence string       `yaml:"sequence"`
	Length   int          `yaml:"length"`
	Polygons []polygonDoc `yaml:"polygons"`
}

type comparisonDoc struct {
	A     string `yaml:"a"`
	B     string `yaml:"b"`
	Order string `yaml:"order"`
	Equal bool   `yaml:"equal"`
}

// Polygon writes every derived property of p. Reading them fills p's cache;
// counters, when enabled, are sampled afterwards.
func (r *Renderer) Polygon(w io.Writer, p *polygon.Polygon) error {
	doc := r.document(p)
	if r.cfg.format == config.FormatYAML {
		return r.encode(w, doc)
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "polygon\t%s\n", doc.Polygon)
	fmt.Fprintf(tw, "vertices\t%d\n", doc.VertexCount)
	fmt.Fprintf(tw, "circumradius\t%s\n", r.num(doc.Circumradius))
	for _, prop := range polygon.Properties {
		fmt.Fprintf(tw, "%s\t%s\n", prop, r.num(p.Value(prop)))
	}
	fmt.Fprintf(tw, "efficiency\t%s\n", r.num(doc.Efficiency))
	if r.cfg.calls {
		for _, prop := range polygon.Properties {
			fmt.Fprintf(tw, "calls.%s\t%d\n", prop, doc.Calls[prop.String()])
		}
	}

	return tw.Flush()
}

// Sequence writes one row per polygon of s, in ascending vertex count.
func (r *Renderer) Sequence(w io.Writer, s *sequence.Sequence) error {
	doc := sequenceDoc{Sequence: s.String(), Length: s.Len()}
	for p := range s.All() {
		doc.Polygons = append(doc.Polygons, r.document(p))
	}
	if r.cfg.format == config.FormatYAML {
		return r.encode(w, doc)
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprint(tw, "n\t")
	for _, prop := range polygon.Properties {
		fmt.Fprintf(tw, "%s\t", prop)
	}
	fmt.Fprint(tw, "efficiency\t\n")
	for _, d := range doc.Polygons {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\t%s\t\n",
			d.VertexCount,
			r.num(d.InteriorAngle), r.num(d.SideLength), r.num(d.Apothem),
			r.num(d.Area), r.num(d.Perimeter), r.num(d.Efficiency))
	}

	return tw.Flush()
}

// Comparison writes the ordering symbol ("<", "=", ">") and equality of a vs b.
func (r *Renderer) Comparison(w io.Writer, a, b *polygon.Polygon) error {
	c, err := a.Compare(b)
	if err != nil {
		return err
	}
	eq, err := a.Equal(b)
	if err != nil {
		return err
	}
	doc := comparisonDoc{A: a.String(), B: b.String(), Order: orderSymbol(c), Equal: eq}
	if r.cfg.format == config.FormatYAML {
		return r.encode(w, doc)
	}
	_, err = fmt.Fprintf(w, "%s %s %s (equal: %t)\n", doc.A, doc.Order, doc.B, doc.Equal)

	return err
}

func (r *Renderer) document(p *polygon.Polygon) polygonDoc {
	snap := p.Snapshot()
	doc := polygonDoc{
		Polygon:    p.String(),
		Snapshot:   snap,
		Efficiency: r.round(p.Efficiency()),
	}
	doc.InteriorAngle = r.round(snap.InteriorAngle)
	doc.SideLength = r.round(snap.SideLength)
	doc.Apothem = r.round(snap.Apothem)
	doc.Area = r.round(snap.Area)
	doc.Perimeter = r.round(snap.Perimeter)
	if r.cfg.calls {
		doc.Calls = make(map[string]uint64, len(polygon.Properties))
		for _, prop := range polygon.Properties {
			doc.Calls[prop.String()] = p.Calls(prop)
		}
	}

	return doc
}

func (r *Renderer) encode(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("report: encode yaml: %w", err)
	}

	return enc.Close()
}

func (r *Renderer) num(v float64) string {
	return strconv.FormatFloat(v, 'f', r.cfg.precision, 64)
}

func (r *Renderer) round(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return v
	}
	scale := math.Pow(10, float64(r.cfg.precision))

	return math.Round(v*scale) / scale
}

func orderSymbol(c int) string {
	switch {
	case c < 0:
		return "<"
	case c > 0:
		return ">"
	default:
		return "="
	}
}
