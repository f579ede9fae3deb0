package cli

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/regpoly/internal/report"
	"github.com/katalvlaran/regpoly/polygon"
)

func describeCmd(a *app) *cobra.Command {
	var (
		vertices    int
		radius      float64
		setVertices int
		setRadius   float64
		showCalls   bool
	)

	c := &cobra.Command{
		Use:   "describe",
		Short: "Print the derived properties of one regular polygon",
		Long: "Print interior angle, side length, apothem, area, perimeter and efficiency.\n" +
			"With --set-vertices or --set-radius the polygon is read once, mutated, and\n" +
			"read again, so --calls shows each property recomputed after invalidation.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !cmd.Flags().Changed("radius") {
				radius = a.cfg.Circumradius
			}
			p, err := polygon.New(vertices, radius)
			if err != nil {
				return a.fail("describe", err)
			}
			a.log.Debug("polygon created", zap.Stringer("polygon", p))

			mutate := cmd.Flags().Changed("set-vertices") || cmd.Flags().Changed("set-radius")
			if mutate {
				_ = p.Snapshot()
				if cmd.Flags().Changed("set-vertices") {
					if err := p.SetVertexCount(setVertices); err != nil {
						return a.fail("describe", err)
					}
				}
				if cmd.Flags().Changed("set-radius") {
					p.SetCircumradius(setRadius)
				}
				a.log.Debug("polygon mutated", zap.Stringer("polygon", p))
			}

			if err := a.renderer(report.WithCalls(showCalls)).Polygon(a.out, p); err != nil {
				return a.fail("describe", err)
			}
			for _, prop := range polygon.Properties {
				a.log.Debug("cache counter", zap.Stringer("property", prop), zap.Uint64("calls", p.Calls(prop)))
			}

			return nil
		},
	}

	c.Flags().IntVarP(&vertices, "vertices", "n", 3, "vertex count (>= 3)")
	c.Flags().Float64VarP(&radius, "radius", "r", 1, "circumradius (defaults to config)")
	c.Flags().IntVar(&setVertices, "set-vertices", 0, "vertex count to switch to after the first read")
	c.Flags().Float64Var(&setRadius, "set-radius", 0, "circumradius to switch to after the first read")
	c.Flags().BoolVar(&showCalls, "calls", false, "include per-property computation counters")

	_ = c.MarkFlagRequired("vertices")
	return c
}
