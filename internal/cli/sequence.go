package cli

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/regpoly/sequence"
)

// sequenceFlags binds -m/-r, falling back to config for any flag not given.
type sequenceFlags struct {
	max    int
	radius float64
}

func (f *sequenceFlags) bind(c *cobra.Command) {
	c.Flags().IntVarP(&f.max, "max", "m", 10, "maximum vertex count (>= 3; defaults to config)")
	c.Flags().Float64VarP(&f.radius, "radius", "r", 1, "shared circumradius (defaults to config)")
}

func (f *sequenceFlags) build(a *app, cmd *cobra.Command) (*sequence.Sequence, error) {
	if !cmd.Flags().Changed("max") {
		f.max = a.cfg.MaxVertices
	}
	if !cmd.Flags().Changed("radius") {
		f.radius = a.cfg.Circumradius
	}
	s, err := sequence.New(f.max, f.radius)
	if err != nil {
		return nil, err
	}
	a.log.Debug("sequence created", zap.Stringer("sequence", s), zap.Int("len", s.Len()))

	return s, nil
}

func sequenceCmd(a *app) *cobra.Command {
	var f sequenceFlags

	c := &cobra.Command{
		Use:   "sequence",
		Short: "Print every polygon with 3..m vertices sharing one circumradius",
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := f.build(a, cmd)
			if err != nil {
				return a.fail("sequence", err)
			}
			if err := a.renderer().Sequence(a.out, s); err != nil {
				return a.fail("sequence", err)
			}

			return nil
		},
	}
	f.bind(c)

	return c
}

func bestCmd(a *app) *cobra.Command {
	var f sequenceFlags

	c := &cobra.Command{
		Use:   "best",
		Short: "Print the polygon with the greatest area/perimeter ratio in 3..m",
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := f.build(a, cmd)
			if err != nil {
				return a.fail("best", err)
			}
			p, err := s.MaxEfficiency()
			if err != nil {
				return a.fail("best", err)
			}
			a.log.Info("max efficiency", zap.Stringer("sequence", s), zap.Stringer("polygon", p))
			if err := a.renderer().Polygon(a.out, p); err != nil {
				return a.fail("best", err)
			}

			return nil
		},
	}
	f.bind(c)

	return c
}
