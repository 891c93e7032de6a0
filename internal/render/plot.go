// Package render draws the animation frames for a computed series.
//
// Every frame shares one fixed coordinate system so the line appears to
// sweep left to right across a stationary plot; frame k reveals the
// first k samples.
package render

import (
	"bufio"
	"context"
	"fmt"
	"math"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/full2null/fallingsimulator/internal/sim"
)

const framePattern = "frame_%06d.png"

// Plotter renders PNG frames with gonum/plot. The zero value is not
// usable; construct with NewPlotter.
type Plotter struct {
	WidthIn  float64 // frame width, inches
	HeightIn float64 // frame height, inches
	DPI      int
}

func NewPlotter() *Plotter {
	// 8x6 in at 96 DPI gives 768x576, even on both axes as the H.264
	// yuv420p pixel format requires.
	return &Plotter{WidthIn: 8, HeightIn: 6, DPI: 96}
}

// RenderFrames writes one frame per sample of s into dir and returns
// the filename pattern. Frame k draws samples 0..k-1, so the first
// frame shows an empty plot and the final frame all but the last
// sample.
func (pl *Plotter) RenderFrames(ctx context.Context, s *sim.Series, cfg sim.Config, dir string) (string, error) {
	pattern := filepath.Join(dir, framePattern)

	for k := 0; k < s.Len(); k++ {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		if err := pl.renderFrame(s, cfg, k, fmt.Sprintf(pattern, k)); err != nil {
			return "", fmt.Errorf("frame %d: %w", k, err)
		}
	}
	return pattern, nil
}

func (pl *Plotter) renderFrame(s *sim.Series, cfg sim.Config, k int, filename string) error {
	p := plot.New()
	p.Title.Text = Title(cfg)
	p.X.Label.Text = "Time (s)"
	p.Y.Label.Text = yLabel(cfg.Mode)
	stylePlot(p)

	if k > 0 {
		pts := make(plotter.XYs, k)
		for i := 0; i < k; i++ {
			pts[i].X = s.Times[i]
			pts[i].Y = s.Values[i]
		}
		line, err := plotter.NewLine(pts)
		if err != nil {
			return err
		}
		line.LineStyle.Width = vg.Points(2.0)
		p.Add(line)
	}

	p.X.Min, p.X.Max = XBounds(s)
	p.Y.Min, p.Y.Max = YBounds(s, cfg.Mode)

	return pl.savePNG(p, filename)
}

// XBounds returns the fixed x-axis limits: [0, last·1.1].
func XBounds(s *sim.Series) (min, max float64) {
	return s.Times[0], s.Times[s.Len()-1] * 1.1
}

// YBounds returns the fixed y-axis limits. Velocity grows from zero so
// the axis runs [0, last·1.1]; height falls so the final (lowest) value
// forms the bottom bound and the initial height the top.
func YBounds(s *sim.Series, mode sim.Mode) (min, max float64) {
	first := s.Values[0]
	last := s.Values[s.Len()-1]
	if mode == sim.ModeVelocity {
		return 0, last * 1.1
	}
	return last * 1.1, first * 1.1
}

// Title names the physical model a series was computed under.
func Title(cfg sim.Config) string {
	if cfg.AirResistance {
		return "Fall Motion with Air Resistance"
	}
	return "Free Fall Motion"
}

func yLabel(mode sim.Mode) string {
	if mode == sim.ModeVelocity {
		return "Velocity (m/s)"
	}
	return "Height (m)"
}

func stylePlot(p *plot.Plot) {
	p.Title.TextStyle.Font.Size = vg.Points(14)
	p.X.Label.TextStyle.Font.Size = vg.Points(12)
	p.Y.Label.TextStyle.Font.Size = vg.Points(12)
	p.X.Tick.Marker = limitedTicker(8, "%.1f")
	p.Y.Tick.Marker = limitedTicker(8, "%.1f")
}

// limitedTicker caps the tick count so dense grids keep readable axes.
func limitedTicker(maxLabels int, labelFmt string) plot.Ticker {
	if maxLabels < 2 {
		maxLabels = 2
	}
	return plot.TickerFunc(func(min, max float64) []plot.Tick {
		if math.IsNaN(min) || math.IsNaN(max) || math.IsInf(min, 0) || math.IsInf(max, 0) {
			return nil
		}
		if min == max {
			return []plot.Tick{{Value: min, Label: fmt.Sprintf(labelFmt, min)}}
		}
		step := (max - min) / float64(maxLabels-1)
		ticks := make([]plot.Tick, 0, maxLabels)
		for i := 0; i < maxLabels; i++ {
			v := min + float64(i)*step
			ticks = append(ticks, plot.Tick{Value: v, Label: fmt.Sprintf(labelFmt, v)})
		}
		return ticks
	})
}

func (pl *Plotter) savePNG(p *plot.Plot, filename string) error {
	c := vgimg.NewWith(
		vgimg.UseWH(vg.Length(pl.WidthIn)*vg.Inch, vg.Length(pl.HeightIn)*vg.Inch),
		vgimg.UseDPI(pl.DPI),
	)
	p.Draw(draw.New(c))

	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()

	bw := bufio.NewWriter(f)
	pngc := vgimg.PngCanvas{Canvas: c}
	if _, err := pngc.WriteTo(bw); err != nil {
		return err
	}
	return bw.Flush()
}
