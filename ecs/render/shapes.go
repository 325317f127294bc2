package render

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// ellipseSegments is the fan resolution for circles and ellipses.
const ellipseSegments = 24

var (
	whiteImage    = ebiten.NewImage(3, 3)
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
)

func init() {
	whiteImage.Fill(color.White)
}

// pen draws flat shapes through a local transform, the way a canvas
// context does after translate/scale/rotate.
type pen struct {
	dst   *ebiten.Image
	geo   ebiten.GeoM
	alpha float32
}

func newPen(dst *ebiten.Image) *pen {
	return &pen{dst: dst, alpha: 1}
}

func (p *pen) with(geo ebiten.GeoM, alpha float32) *pen {
	return &pen{dst: p.dst, geo: geo, alpha: alpha}
}

func (p *pen) vertex(x, y float64, clr color.Color) ebiten.Vertex {
	dx, dy := p.geo.Apply(x, y)
	r, g, b, a := clr.RGBA()
	return ebiten.Vertex{
		DstX:   float32(dx),
		DstY:   float32(dy),
		SrcX:   1,
		SrcY:   1,
		ColorR: float32(r) / 0xffff * p.alpha,
		ColorG: float32(g) / 0xffff * p.alpha,
		ColorB: float32(b) / 0xffff * p.alpha,
		ColorA: float32(a) / 0xffff * p.alpha,
	}
}

func (p *pen) triangles(vs []ebiten.Vertex, is []uint16) {
	op := &ebiten.DrawTrianglesOptions{ColorScaleMode: ebiten.ColorScaleModePremultipliedAlpha}
	p.dst.DrawTriangles(vs, is, whiteSubImage, op)
}

// rect fills an axis-aligned rectangle in local space.
func (p *pen) rect(x, y, w, h float64, clr color.Color) {
	if w <= 0 || h <= 0 {
		return
	}
	vs := []ebiten.Vertex{
		p.vertex(x, y, clr),
		p.vertex(x+w, y, clr),
		p.vertex(x+w, y+h, clr),
		p.vertex(x, y+h, clr),
	}
	p.triangles(vs, []uint16{0, 1, 2, 0, 2, 3})
}

// gradient fills a rectangle blending from top to bottom.
func (p *pen) gradient(x, y, w, h float64, top, bottom color.Color) {
	vs := []ebiten.Vertex{
		p.vertex(x, y, top),
		p.vertex(x+w, y, top),
		p.vertex(x+w, y+h, bottom),
		p.vertex(x, y+h, bottom),
	}
	p.triangles(vs, []uint16{0, 1, 2, 0, 2, 3})
}

// ellipse fills an ellipse centered at (cx, cy) rotated by rot radians.
func (p *pen) ellipse(cx, cy, rx, ry, rot float64, clr color.Color) {
	rx, ry = math.Abs(rx), math.Abs(ry)
	if rx == 0 || ry == 0 {
		return
	}
	sin, cos := math.Sincos(rot)
	vs := make([]ebiten.Vertex, 0, ellipseSegments+1)
	is := make([]uint16, 0, ellipseSegments*3)
	vs = append(vs, p.vertex(cx, cy, clr))
	for i := 0; i < ellipseSegments; i++ {
		a := 2 * math.Pi * float64(i) / ellipseSegments
		ex, ey := rx*math.Cos(a), ry*math.Sin(a)
		vs = append(vs, p.vertex(cx+ex*cos-ey*sin, cy+ex*sin+ey*cos, clr))
		next := uint16(i+1)%ellipseSegments + 1
		is = append(is, 0, uint16(i+1), next)
	}
	p.triangles(vs, is)
}

func (p *pen) circle(cx, cy, r float64, clr color.Color) {
	p.ellipse(cx, cy, r, r, 0, clr)
}

// polygon fills a convex polygon given as x, y pairs.
func (p *pen) polygon(clr color.Color, pts ...float64) {
	n := len(pts) / 2
	if n < 3 {
		return
	}
	vs := make([]ebiten.Vertex, 0, n)
	for i := 0; i < n; i++ {
		vs = append(vs, p.vertex(pts[2*i], pts[2*i+1], clr))
	}
	is := make([]uint16, 0, (n-2)*3)
	for i := 1; i < n-1; i++ {
		is = append(is, 0, uint16(i), uint16(i+1))
	}
	p.triangles(vs, is)
}

// line strokes a segment in local space.
func (p *pen) line(x0, y0, x1, y1, width float64, clr color.Color) {
	ax, ay := p.geo.Apply(x0, y0)
	bx, by := p.geo.Apply(x1, y1)
	vector.StrokeLine(p.dst, float32(ax), float32(ay), float32(bx), float32(by), float32(width), scaleAlpha(clr, p.alpha), true)
}

// arc strokes a circular arc from a0 to a1 radians.
func (p *pen) arc(cx, cy, r, a0, a1, width float64, clr color.Color) {
	const steps = 12
	px, py := cx+r*math.Cos(a0), cy+r*math.Sin(a0)
	for i := 1; i <= steps; i++ {
		a := a0 + (a1-a0)*float64(i)/steps
		x, y := cx+r*math.Cos(a), cy+r*math.Sin(a)
		p.line(px, py, x, y, width, clr)
		px, py = x, y
	}
}

func scaleAlpha(clr color.Color, alpha float32) color.Color {
	if alpha >= 1 {
		return clr
	}
	r, g, b, a := clr.RGBA()
	f := float64(alpha)
	return color.RGBA64{
		R: uint16(float64(r) * f),
		G: uint16(float64(g) * f),
		B: uint16(float64(b) * f),
		A: uint16(float64(a) * f),
	}
}
