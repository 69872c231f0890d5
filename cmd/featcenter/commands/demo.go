package commands

import (
	"fmt"
	"io"
	"log/slog"
	"math"
	"time"

	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-sphere/sphere/center"
	"github.com/cwbudde/algo-sphere/sphere/field"
	"github.com/cwbudde/algo-sphere/sphere/grid"
)

type demoOptions struct {
	typeName   string
	nlat, nlon int
	truncation int
	lat, lon   float64
	twist      float64
	sigma      float64
}

func demoCmd(ro *rootOptions) *cobra.Command {
	var o demoOptions

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Center a Gaussian bump and report where its peak lands",
		Long: `Builds a Gaussian bump at --lat/--lon on the requested grid, centers the
field on that point and restores it again. The centered peak should sit at
latitude 0, longitude 180, and the restored field should match the input up
to truncation error.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo(cmd, ro.logger, o)
		},
	}

	f := cmd.Flags()
	f.StringVar(&o.typeName, "type", "regular", "grid type (regular, gaussian)")
	f.IntVar(&o.nlat, "nlat", 180, "number of latitudes")
	f.IntVar(&o.nlon, "nlon", 360, "number of longitudes")
	f.IntVar(&o.truncation, "truncation", center.DefaultTruncation, "spectral truncation")
	f.Float64Var(&o.lat, "lat", 30, "bump latitude in degrees")
	f.Float64Var(&o.lon, "lon", 200, "bump longitude in degrees")
	f.Float64Var(&o.twist, "twist", 0, "twist about the bump in degrees")
	f.Float64Var(&o.sigma, "sigma", 10, "bump width in degrees")
	return cmd
}

func runDemo(cmd *cobra.Command, logger *slog.Logger, o demoOptions) error {
	typ, err := grid.ParseType(o.typeName)
	if err != nil {
		return err
	}
	lat, err := grid.Latitudes(typ, o.nlat)
	if err != nil {
		return err
	}
	lon := grid.Longitudes(o.nlon)

	start := clock.Now()
	p, err := center.New(lat, lon,
		center.WithTruncation(o.truncation),
		center.WithGridType(typ),
		center.WithLogger(logger),
	)
	if err != nil {
		return err
	}
	setup := clock.Since(start)

	in, err := field.Generate(len(lat), len(lon), func(i, j int) float64 {
		d := greatCircle(lat[i], lon[j], o.lat, o.lon)
		return math.Exp(-d * d / (2 * o.sigma * o.sigma))
	})
	if err != nil {
		return err
	}

	start = clock.Now()
	out, err := p.CenterAndRotate(in, o.lat, o.lon, o.twist)
	if err != nil {
		return err
	}
	centered := clock.Since(start)

	back, err := p.Restore(out, o.lat, o.lon, o.twist)
	if err != nil {
		return err
	}

	logger.Info("demo finished",
		"setup", setup,
		"center", centered,
	)

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "grid         %s %dx%d, truncation %d\n", typ, len(lat), len(lon), p.Truncation())
	printPeak(w, "input peak  ", in, lat, lon)
	printPeak(w, "output peak ", out, lat, lon)
	fmt.Fprintf(w, "restore err  %.3g\n", maxAbsDiff(back.Data(), in.Data()))
	fmt.Fprintf(w, "setup        %v\n", setup.Round(time.Microsecond))
	fmt.Fprintf(w, "center       %v\n", centered.Round(time.Microsecond))
	return nil
}

func printPeak(w io.Writer, label string, f *field.Field, lat, lon []float64) {
	i, j := f.ArgMax()
	if i < 0 {
		fmt.Fprintf(w, "%s none\n", label)
		return
	}
	fmt.Fprintf(w, "%s lat %.2f lon %.2f value %.6f\n", label, lat[i], lon[j], f.At(i, j))
}

func maxAbsDiff(a, b []float64) float64 {
	worst := 0.0
	for i := range a {
		worst = math.Max(worst, math.Abs(a[i]-b[i]))
	}
	return worst
}

func greatCircle(lat1, lon1, lat2, lon2 float64) float64 {
	r := math.Pi / 180
	c := math.Sin(lat1*r)*math.Sin(lat2*r) + math.Cos(lat1*r)*math.Cos(lat2*r)*math.Cos((lon1-lon2)*r)
	return math.Acos(math.Max(-1, math.Min(1, c))) / r
}
