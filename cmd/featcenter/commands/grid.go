package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-sphere/sphere/grid"
)

func gridCmd(ro *rootOptions) *cobra.Command {
	var (
		typeName string
		nlat     int
		nlon     int
	)

	cmd := &cobra.Command{
		Use:   "grid",
		Short: "Print the latitude and longitude axes of a grid",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			typ, err := grid.ParseType(typeName)
			if err != nil {
				return err
			}
			lat, err := grid.Latitudes(typ, nlat)
			if err != nil {
				return err
			}
			lon := grid.Longitudes(nlon)
			if lon == nil {
				return fmt.Errorf("--nlon must be > 0, got %d", nlon)
			}

			ro.logger.Debug("grid axes", "type", typ.String(), "nlat", nlat, "nlon", nlon)

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintf(tw, "# %s grid, %d x %d\n", typ, nlat, nlon)
			fmt.Fprintln(tw, "axis\tindex\tdegrees")
			for i, v := range lat {
				fmt.Fprintf(tw, "lat\t%d\t%.6f\n", i, v)
			}
			for i, v := range lon {
				fmt.Fprintf(tw, "lon\t%d\t%.6f\n", i, v)
			}
			return tw.Flush()
		},
	}

	cmd.Flags().StringVar(&typeName, "type", "regular", "grid type (regular, gaussian)")
	cmd.Flags().IntVar(&nlat, "nlat", 180, "number of latitudes")
	cmd.Flags().IntVar(&nlon, "nlon", 360, "number of longitudes")
	return cmd
}
