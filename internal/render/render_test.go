package render

import (
	"image/color"
	"math"
	"reflect"
	"testing"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/olivierh59500/particle-field/internal/particle"
)

type disc struct {
	Center r2.Vec
	Radius float64
	Fill   color.NRGBA
	Alpha  float64
	Glow   float64
}

type line struct {
	From, To r2.Vec
	Width    float64
	Stroke   color.NRGBA
	Alpha    float64
}

// recorder is a Surface that keeps every call in order.
type recorder struct {
	discs []disc
	lines []line
	order []string
}

func (r *recorder) FillDisc(center r2.Vec, radius float64, fill color.NRGBA, alpha, glow float64) {
	r.discs = append(r.discs, disc{center, radius, fill, alpha, glow})
	r.order = append(r.order, "disc")
}

func (r *recorder) StrokeLine(from, to r2.Vec, width float64, stroke color.NRGBA, alpha float64) {
	r.lines = append(r.lines, line{from, to, width, stroke, alpha})
	r.order = append(r.order, "line")
}

var red = color.NRGBA{R: 255, A: 255}

func pt(x, y, size float64) particle.Particle {
	return particle.Particle{Pos: r2.Vec{X: x, Y: y}, Size: size, Color: red, Hex: "#ff0000", Opacity: 0.75}
}

func TestDrawDiscs(t *testing.T) {
	ps := []particle.Particle{pt(10, 10, 2), pt(500, 500, 4)}

	tests := []struct {
		name  string
		glow  bool
		glows []float64
	}{
		{"plain", false, []float64{0, 0}},
		{"glow", true, []float64{4, 8}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var r recorder
			Draw(&r, ps, tt.glow)
			if len(r.discs) != len(ps) {
				t.Fatalf("discs = %d, want %d", len(r.discs), len(ps))
			}
			for i, d := range r.discs {
				if d.Center != ps[i].Pos || d.Radius != ps[i].Size || d.Fill != red || d.Alpha != 0.75 {
					t.Errorf("disc %d = %+v", i, d)
				}
				if d.Glow != tt.glows[i] {
					t.Errorf("disc %d glow = %v, want %v", i, d.Glow, tt.glows[i])
				}
			}
		})
	}
}

func TestDrawConnectionAlpha(t *testing.T) {
	var r recorder
	Draw(&r, []particle.Particle{pt(0, 0, 1), pt(30, 40, 1)}, false)

	if len(r.lines) != 1 {
		t.Fatalf("lines = %d, want 1", len(r.lines))
	}
	l := r.lines[0]
	if math.Abs(l.Alpha-0.5) > 1e-12 {
		t.Errorf("alpha = %v, want 0.5", l.Alpha)
	}
	if l.Stroke != ConnectionColor || l.Width != ConnectionWidth {
		t.Errorf("line style = %+v", l)
	}
}

func TestDrawNoConnectionAtThreshold(t *testing.T) {
	var r recorder
	Draw(&r, []particle.Particle{pt(0, 0, 1), pt(100, 0, 1), pt(300, 0, 1)}, true)
	if len(r.lines) != 0 {
		t.Errorf("lines = %+v, want none at distance >= 100", r.lines)
	}
}

func TestDrawDiscsBeforeLines(t *testing.T) {
	var r recorder
	Draw(&r, []particle.Particle{pt(0, 0, 1), pt(10, 0, 1), pt(20, 0, 1)}, false)

	want := []string{"disc", "disc", "disc", "line", "line", "line"}
	if !reflect.DeepEqual(r.order, want) {
		t.Errorf("order = %v, want %v", r.order, want)
	}
}

func TestDrawIdempotent(t *testing.T) {
	sim := particle.NewSimulation(4)
	ps := sim.Create(300, 300, 60, 5, particle.ThemeOcean)

	var a, b recorder
	Draw(&a, ps, true)
	Draw(&b, ps, true)
	if !reflect.DeepEqual(a, b) {
		t.Error("two draws of the same state differ")
	}
}

func TestConnectionsPairs(t *testing.T) {
	ps := []particle.Particle{pt(0, 0, 1), pt(50, 0, 1), pt(0, 99, 1), pt(1000, 1000, 1)}
	got := Connections(ps)

	want := map[[2]int]float64{
		{0, 1}: 0.5,
		{0, 2}: 0.01,
	}
	if len(got) != len(want) {
		t.Fatalf("connections = %+v", got)
	}
	for _, c := range got {
		a, ok := want[[2]int{c.I, c.J}]
		if !ok {
			t.Errorf("unexpected pair %d-%d", c.I, c.J)
			continue
		}
		if math.Abs(c.Alpha-a) > 1e-9 {
			t.Errorf("pair %d-%d alpha = %v, want %v", c.I, c.J, c.Alpha, a)
		}
	}
}

func TestDrawEmpty(t *testing.T) {
	var r recorder
	Draw(&r, nil, true)
	if len(r.order) != 0 {
		t.Errorf("calls = %v, want none", r.order)
	}
}
