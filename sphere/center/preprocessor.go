package center

import (
	"fmt"
	"log/slog"

	"github.com/cwbudde/algo-sphere/sphere/field"
	"github.com/cwbudde/algo-sphere/sphere/grid"
	"github.com/cwbudde/algo-sphere/sphere/sht"
)

// Engine is the spectral transform a Preprocessor runs on. Data passed to
// Analyze and Synthesize is row-major in the engine's latitude order, the
// order reported by Latitudes.
type Engine interface {
	Latitudes() []float64
	Analyze(data []float64) (sht.Coeffs, error)
	Synthesize(dst []float64, c sht.Coeffs) error
}

// Preprocessor centers fields of one grid on arbitrary feature points.
//
// Construction is comparatively expensive and meant to be amortized over many
// calls. A Preprocessor exclusively owns its engine and rotation operator and
// is not safe for concurrent use; see [Synchronized].
type Preprocessor struct {
	grid     grid.Grid
	engine   Engine
	composer *Composer
	logger   *slog.Logger

	// reversed is true when the grid's latitude axis runs opposite to the
	// engine's row order.
	reversed bool
	buf      []float64
}

// New builds a Preprocessor for the lat/lon axes (degrees). It initializes a
// spectral transform for the configured truncation and grid type, checks
// that the transform's latitudes and longitudes match the given axes, and
// prepares a rotation operator.
//
// A latitude axis that does not match the transform grid returns a
// [*grid.MismatchError]; usually the grid type is wrong.
func New(lat, lon []float64, opts ...Option) (*Preprocessor, error) {
	cfg := ApplyOptions(opts...)

	g, err := grid.New(lat, lon, cfg.GridType, cfg.Truncation)
	if err != nil {
		return nil, fmt.Errorf("center: %w", err)
	}

	tr, err := sht.NewTransform(cfg.Truncation, cfg.GridType, len(lat), len(lon))
	if err != nil {
		return nil, fmt.Errorf("center: init transform: %w", err)
	}

	rot, err := sht.NewRotation(tr.LMax())
	if err != nil {
		return nil, fmt.Errorf("center: init rotation: %w", err)
	}

	return newPreprocessor(g, tr, rot, cfg)
}

// NewWithEngine builds a Preprocessor on a caller-supplied engine and
// rotation operator. The grid's truncation and type are taken as given; only
// the logger option applies.
func NewWithEngine(g grid.Grid, eng Engine, rot Rotator, opts ...Option) (*Preprocessor, error) {
	cfg := ApplyOptions(opts...)
	cfg.Truncation = g.Truncation()
	cfg.GridType = g.Type()
	return newPreprocessor(g, eng, rot, cfg)
}

func newPreprocessor(g grid.Grid, eng Engine, rot Rotator, cfg Config) (*Preprocessor, error) {
	reversed, err := grid.Orientation(g.Lat(), g.Type(), eng.Latitudes())
	if err != nil {
		return nil, err
	}
	if err := grid.ValidateLongitudes(g.Lon()); err != nil {
		return nil, err
	}

	nlat, nlon := g.Shape()
	cfg.Logger.Debug("feature preprocessor ready",
		slog.Int("nlat", nlat),
		slog.Int("nlon", nlon),
		slog.Int("truncation", g.Truncation()),
		slog.String("grid", g.Type().String()),
		slog.Bool("lat_reversed", reversed),
	)

	return &Preprocessor{
		grid:     g,
		engine:   eng,
		composer: NewComposer(rot),
		logger:   cfg.Logger,
		reversed: reversed,
		buf:      make([]float64, nlat*nlon),
	}, nil
}

// Grid returns the validated grid.
func (p *Preprocessor) Grid() grid.Grid { return p.grid }

// Truncation returns the spectral truncation degree.
func (p *Preprocessor) Truncation() int { return p.grid.Truncation() }

// CenterAndRotate returns a copy of f rotated on the sphere so the point
// (lat, lon) sits at latitude 0, longitude 180 of the grid, twisted about it
// by twist degrees. f must be 2-D with the grid's (nlat, nlon) shape and is
// left untouched.
//
// lon may be given in [-180, 180] or [0, 360], lat in [-90, 90] and twist in
// [0, 360]. Invalid input returns [ErrShape] or [ErrRange] before any
// spectral work is done.
func (p *Preprocessor) CenterAndRotate(f *field.Field, lat, lon, twist float64) (*field.Field, error) {
	out, err := field.New(p.grid.Shape())
	if err != nil {
		return nil, err
	}
	if err := p.run(out, f, lat, lon, twist, p.composer.Apply); err != nil {
		return nil, err
	}
	return out, nil
}

// CenterAndRotateInPlace is [Preprocessor.CenterAndRotate] overwriting f.
// A call that returns an error leaves f unmodified.
func (p *Preprocessor) CenterAndRotateInPlace(f *field.Field, lat, lon, twist float64) error {
	return p.run(f, f, lat, lon, twist, p.composer.Apply)
}

// Restore undoes [Preprocessor.CenterAndRotate] with the same arguments,
// moving a centered field back to its original position.
func (p *Preprocessor) Restore(f *field.Field, lat, lon, twist float64) (*field.Field, error) {
	out, err := field.New(p.grid.Shape())
	if err != nil {
		return nil, err
	}
	if err := p.run(out, f, lat, lon, twist, p.composer.Restore); err != nil {
		return nil, err
	}
	return out, nil
}

// RestoreInPlace is [Preprocessor.Restore] overwriting f.
func (p *Preprocessor) RestoreInPlace(f *field.Field, lat, lon, twist float64) error {
	return p.run(f, f, lat, lon, twist, p.composer.Restore)
}

type rotateFunc func(sht.Coeffs, Request) (sht.Coeffs, error)

func (p *Preprocessor) run(dst, src *field.Field, lat, lon, twist float64, rotate rotateFunc) error {
	if err := p.checkShape(src); err != nil {
		return err
	}
	req, err := NewRequest(lat, lon, twist)
	if err != nil {
		return err
	}

	p.logger.Debug("centering field",
		slog.Float64("lat", req.Lat),
		slog.Float64("lon", req.Lon),
		slog.Float64("twist", req.Twist),
	)

	p.toEngineOrder(p.buf, src.Data())

	coeffs, err := p.engine.Analyze(p.buf)
	if err != nil {
		return fmt.Errorf("center: forward transform: %w", err)
	}

	rotated, err := rotate(coeffs, req)
	if err != nil {
		return err
	}

	if err := p.engine.Synthesize(p.buf, rotated); err != nil {
		return fmt.Errorf("center: inverse transform: %w", err)
	}

	p.toEngineOrder(dst.Data(), p.buf)
	return nil
}

func (p *Preprocessor) checkShape(f *field.Field) error {
	nlat, nlon := p.grid.Shape()
	if f == nil {
		return &ShapeError{Want: []int{nlat, nlon}}
	}
	shape := f.Shape()
	if len(shape) != 2 || shape[0] != nlat || shape[1] != nlon {
		return &ShapeError{Got: shape, Want: []int{nlat, nlon}}
	}
	return nil
}

// toEngineOrder copies src into dst, flipping the row order when the grid and
// engine disagree. The flip is its own inverse, so it also maps back.
func (p *Preprocessor) toEngineOrder(dst, src []float64) {
	if !p.reversed {
		copy(dst, src)
		return
	}
	nlat, nlon := p.grid.Shape()
	for i := 0; i < nlat; i++ {
		copy(dst[(nlat-1-i)*nlon:(nlat-i)*nlon], src[i*nlon:(i+1)*nlon])
	}
}
