package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/regpoly/polygon"
)

func compareCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "compare N1 R1 N2 R2",
		Short: "Order two polygons by vertex count and check equality",
		Args:  cobra.ExactArgs(4),
		RunE: func(_ *cobra.Command, args []string) error {
			left, err := parsePolygon(args[0], args[1])
			if err != nil {
				return a.fail("compare", err)
			}
			right, err := parsePolygon(args[2], args[3])
			if err != nil {
				return a.fail("compare", err)
			}
			if err := a.renderer().Comparison(a.out, left, right); err != nil {
				return a.fail("compare", err)
			}

			return nil
		},
	}
}

func parsePolygon(nArg, rArg string) (*polygon.Polygon, error) {
	n, err := strconv.Atoi(nArg)
	if err != nil {
		return nil, fmt.Errorf("vertex count %q: %w", nArg, err)
	}
	r, err := strconv.ParseFloat(rArg, 64)
	if err != nil {
		return nil, fmt.Errorf("circumradius %q: %w", rArg, err)
	}

	return polygon.New(n, r)
}
