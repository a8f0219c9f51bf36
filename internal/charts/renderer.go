package charts

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/color"
	"image/png"

	"github.com/Akash89-eng/StockMarketAnalysis/internal/models"
)

// palette matches the series colors of the original dashboard.
var palette = []color.RGBA{
	{R: 0x1f, G: 0x77, B: 0xb4, A: 0xff},
	{R: 0xff, G: 0x7f, B: 0x0e, A: 0xff},
	{R: 0x2c, G: 0xa0, B: 0x2c, A: 0xff},
	{R: 0xd6, G: 0x27, B: 0x28, A: 0xff},
	{R: 0x94, G: 0x67, B: 0xbd, A: 0xff},
}

var (
	white    = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	axisGray = color.RGBA{R: 0x66, G: 0x66, B: 0x66, A: 0xff}
	gridGray = color.RGBA{R: 0xdd, G: 0xdd, B: 0xdd, A: 0xff}
)

// Renderer rasterizes analysis results into base64-encoded PNGs. Every call
// allocates its own drawing surface, so renderers are safe to share across
// concurrent requests.
type Renderer struct {
	width  int
	height int
	margin int
}

// NewRenderer creates a renderer with the default canvas size.
func NewRenderer() *Renderer {
	return &Renderer{width: 1000, height: 600, margin: 60}
}

// TrendChart renders the first-eigenvector weight of each instrument as a
// bar chart: the instruments' influence on the main market trend.
func (r *Renderer) TrendChart(symbols []string, eig *models.EigenDecomposition) (string, error) {
	if eig == nil || eig.Dim() == 0 || len(symbols) == 0 {
		return "", fmt.Errorf("no eigen-decomposition to render")
	}
	weights := eig.Column(0)

	lo, hi := minMax(weights)
	if lo > 0 {
		lo = 0
	}
	if hi < 0 {
		hi = 0
	}
	if hi == lo {
		hi = lo + 1
	}

	c := r.newCanvas()
	plotW := r.width - 2*r.margin
	plotH := r.height - 2*r.margin

	yOf := func(v float64) int {
		return r.margin + int(float64(plotH)*(hi-v)/(hi-lo))
	}

	// Zero baseline and frame.
	zero := yOf(0)
	c.hline(r.margin, r.width-r.margin, zero, axisGray)
	c.vline(r.margin, r.margin, r.height-r.margin, axisGray)

	barSpan := plotW / len(weights)
	barW := barSpan * 3 / 5
	for i, w := range weights {
		x0 := r.margin + i*barSpan + (barSpan-barW)/2
		y := yOf(w)
		top, bottom := y, zero
		if top > bottom {
			top, bottom = bottom, top
		}
		c.fillRect(x0, top, x0+barW, bottom, palette[i%len(palette)])
	}

	return c.encode()
}

// ReturnsChart renders cumulative returns over time, one polyline per
// instrument.
func (r *Renderer) ReturnsChart(returns []models.ReturnSeries) (string, error) {
	cumulative := make([][]float64, 0, len(returns))
	maxLen := 0
	for _, rs := range returns {
		if rs.Len() == 0 {
			continue
		}
		line := make([]float64, rs.Len())
		acc := 1.0
		for i, p := range rs.Points {
			acc *= 1 + p.Return
			line[i] = acc
		}
		cumulative = append(cumulative, line)
		if len(line) > maxLen {
			maxLen = len(line)
		}
	}
	if len(cumulative) == 0 {
		return "", fmt.Errorf("no return series to render")
	}

	lo, hi := minMax(cumulative[0])
	for _, line := range cumulative[1:] {
		l, h := minMax(line)
		if l < lo {
			lo = l
		}
		if h > hi {
			hi = h
		}
	}
	if hi == lo {
		hi = lo + 1
	}

	c := r.newCanvas()
	plotW := r.width - 2*r.margin
	plotH := r.height - 2*r.margin

	// Unit gridline: cumulative return of 1 means break-even.
	if lo <= 1 && 1 <= hi {
		y := r.margin + int(float64(plotH)*(hi-1)/(hi-lo))
		c.hline(r.margin, r.width-r.margin, y, gridGray)
	}
	c.hline(r.margin, r.width-r.margin, r.height-r.margin, axisGray)
	c.vline(r.margin, r.margin, r.height-r.margin, axisGray)

	for s, line := range cumulative {
		col := palette[s%len(palette)]
		denom := len(line) - 1
		if denom == 0 {
			denom = 1
		}
		prevX, prevY := 0, 0
		for i, v := range line {
			x := r.margin + i*plotW/denom
			y := r.margin + int(float64(plotH)*(hi-v)/(hi-lo))
			if i > 0 {
				c.line(prevX, prevY, x, y, col)
			}
			prevX, prevY = x, y
		}
	}

	return c.encode()
}

// canvas is a single-call drawing surface. It is never shared between calls.
type canvas struct {
	img *image.RGBA
}

func (r *Renderer) newCanvas() *canvas {
	img := image.NewRGBA(image.Rect(0, 0, r.width, r.height))
	c := &canvas{img: img}
	c.fillRect(0, 0, r.width, r.height, white)
	return c
}

func (c *canvas) fillRect(x0, y0, x1, y1 int, col color.RGBA) {
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			c.img.SetRGBA(x, y, col)
		}
	}
}

func (c *canvas) hline(x0, x1, y int, col color.RGBA) {
	for x := x0; x <= x1; x++ {
		c.img.SetRGBA(x, y, col)
	}
}

func (c *canvas) vline(x, y0, y1 int, col color.RGBA) {
	for y := y0; y <= y1; y++ {
		c.img.SetRGBA(x, y, col)
	}
}

// line draws a straight segment using integer DDA stepping.
func (c *canvas) line(x0, y0, x1, y1 int, col color.RGBA) {
	dx, dy := x1-x0, y1-y0
	steps := abs(dx)
	if abs(dy) > steps {
		steps = abs(dy)
	}
	if steps == 0 {
		c.img.SetRGBA(x0, y0, col)
		return
	}
	for i := 0; i <= steps; i++ {
		x := x0 + dx*i/steps
		y := y0 + dy*i/steps
		c.img.SetRGBA(x, y, col)
	}
}

func (c *canvas) encode() (string, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, c.img); err != nil {
		return "", fmt.Errorf("failed to encode chart: %w", err)
	}
	return base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

func minMax(values []float64) (lo, hi float64) {
	lo, hi = values[0], values[0]
	for _, v := range values[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	return lo, hi
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
