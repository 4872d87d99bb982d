package grid

import (
	"math"
	"slices"
	"testing"

	"github.com/matzehuels/panelgrid/pkg/errors"
	"github.com/matzehuels/panelgrid/pkg/units"
)

const eps = 1e-12

func approx(a, b float64) bool { return math.Abs(a-b) <= eps }

func rectApprox(a, b Rect) bool {
	return approx(a.X, b.X) && approx(a.Y, b.Y) && approx(a.Width, b.Width) && approx(a.Height, b.Height)
}

// referenceLocator is the 2×3 grid with 10×20 panels, hsep 1, vsep 2 and
// 5 padding on every side.
func referenceLocator(t *testing.T, opts ...Option) *PanelSizeLocator {
	t.Helper()
	base := []Option{
		WithHSep(Uniform(1)),
		WithVSep(Uniform(2)),
		WithPadding(Padding{Left: 5, Right: 5, Top: 5, Bottom: 5}),
	}
	l, err := NewPanelSizeLocator(2, 3, 10, 20, append(base, opts...)...)
	if err != nil {
		t.Fatalf("NewPanelSizeLocator() error: %v", err)
	}
	return l
}

func TestFigureSizeAdditivity(t *testing.T) {
	l := referenceLocator(t)

	got := l.NativeFigSize()
	if got.Width != 42 {
		t.Errorf("figwidth = %v, want 42", got.Width)
	}
	if got.Height != 52 {
		t.Errorf("figheight = %v, want 52", got.Height)
	}
	if l.Units() != units.MM {
		t.Errorf("Units() = %v, want mm", l.Units())
	}
}

func TestFigSize(t *testing.T) {
	l := referenceLocator(t)

	inches := l.FigSize()
	if !approx(inches.Width, 42/25.4) || !approx(inches.Height, 52/25.4) {
		t.Errorf("FigSize() = %+v, want %v×%v", inches, 42/25.4, 52/25.4)
	}

	cm, err := l.FigSizeIn(units.CM)
	if err != nil {
		t.Fatalf("FigSizeIn(cm) error: %v", err)
	}
	if !approx(cm.Width, 4.2) || !approx(cm.Height, 5.2) {
		t.Errorf("FigSizeIn(cm) = %+v, want 4.2×5.2", cm)
	}

	viaIn, err := l.FigSizeIn(units.Inches)
	if err != nil {
		t.Fatalf("FigSizeIn(inches) error: %v", err)
	}
	if viaIn != inches {
		t.Errorf("FigSizeIn(inches) = %+v, FigSize() = %+v", viaIn, inches)
	}

	if _, err := l.FigSizeIn("pt"); !errors.Is(err, errors.ErrCodeInvalidUnit) {
		t.Errorf("FigSizeIn(pt) error = %v, want %s", err, errors.ErrCodeInvalidUnit)
	}
}

func TestFigSizeInInchUnits(t *testing.T) {
	l, err := NewPanelSizeLocator(1, 2, 3, 2, WithHSep(Uniform(0.5)), WithUnits(units.Inches))
	if err != nil {
		t.Fatalf("NewPanelSizeLocator() error: %v", err)
	}
	got := l.FigSize()
	if got.Width != 6.5 || got.Height != 2 {
		t.Errorf("FigSize() = %+v, want 6.5×2", got)
	}
	mm, _ := l.FigSizeIn(units.MM)
	if !approx(mm.Width, 6.5*25.4) {
		t.Errorf("FigSizeIn(mm).Width = %v, want %v", mm.Width, 6.5*25.4)
	}
}

func TestPanelPosition(t *testing.T) {
	l := referenceLocator(t)

	tests := []struct {
		row, column int
		want        Rect
	}{
		{0, 0, Rect{X: 5.0 / 42, Y: 27.0 / 52, Width: 10.0 / 42, Height: 20.0 / 52}},
		{0, 1, Rect{X: 16.0 / 42, Y: 27.0 / 52, Width: 10.0 / 42, Height: 20.0 / 52}},
		{0, 2, Rect{X: 27.0 / 42, Y: 27.0 / 52, Width: 10.0 / 42, Height: 20.0 / 52}},
		{1, 0, Rect{X: 5.0 / 42, Y: 5.0 / 52, Width: 10.0 / 42, Height: 20.0 / 52}},
		{1, 2, Rect{X: 27.0 / 42, Y: 5.0 / 52, Width: 10.0 / 42, Height: 20.0 / 52}},
	}

	for _, tt := range tests {
		got, err := l.PanelPosition(tt.row, tt.column)
		if err != nil {
			t.Fatalf("PanelPosition(%d, %d) error: %v", tt.row, tt.column, err)
		}
		if !rectApprox(got, tt.want) {
			t.Errorf("PanelPosition(%d, %d) = %+v, want %+v", tt.row, tt.column, got, tt.want)
		}
	}
}

func TestPanelPositionSequenceSeparations(t *testing.T) {
	l, err := NewPanelSizeLocator(2, 3, 10, 20,
		WithHSep(Sequence(1, 3)),
		WithVSep(Sequence(2)),
		WithPadding(Padding{Left: 5, Right: 5, Top: 5, Bottom: 5}),
	)
	if err != nil {
		t.Fatalf("NewPanelSizeLocator() error: %v", err)
	}
	if got := l.NativeFigSize().Width; got != 44 {
		t.Fatalf("figwidth = %v, want 44", got)
	}

	r, _ := l.PanelPosition(1, 2)
	if !approx(r.X, 29.0/44) {
		t.Errorf("x = %v, want %v", r.X, 29.0/44)
	}
	if !approx(r.Y, 5.0/52) {
		t.Errorf("y = %v, want %v", r.Y, 5.0/52)
	}
	r, _ = l.PanelPosition(0, 1)
	if !approx(r.X, 16.0/44) {
		t.Errorf("x = %v, want %v", r.X, 16.0/44)
	}
}

func TestPanelPositionsStayInsideFigure(t *testing.T) {
	locators := []*PanelSizeLocator{referenceLocator(t)}
	for _, opts := range [][]Option{
		nil,
		{WithPadding(Padding{Left: 12, Right: 1, Top: 7, Bottom: 30})},
		{WithHSep(Sequence(4, 0, 9)), WithVSep(Uniform(3))},
	} {
		l, err := NewPanelSizeLocator(3, 4, 25, 15, opts...)
		if err != nil {
			t.Fatalf("NewPanelSizeLocator() error: %v", err)
		}
		locators = append(locators, l)
	}

	for _, l := range locators {
		panels, err := l.PanelPositions(OrderRow)
		if err != nil {
			t.Fatalf("PanelPositions() error: %v", err)
		}
		for p := range panels {
			r := p.Rect
			if r.X < 0 || r.Y < 0 || r.Right() > 1+eps || r.Top() > 1+eps {
				t.Errorf("panel (%d,%d) = %+v leaves the unit square", p.Row, p.Column, r)
			}
		}

		first, _ := l.PanelPosition(0, 0)
		want := 1 - l.Padding().Top/l.NativeFigSize().Height
		if !approx(first.Top(), want) {
			t.Errorf("top edge of (0,0) = %v, want %v", first.Top(), want)
		}
		last, _ := l.PanelPosition(l.Rows()-1, l.Columns()-1)
		if !approx(last.Y, l.Padding().Bottom/l.NativeFigSize().Height) {
			t.Errorf("bottom edge of last row = %v, want %v", last.Y, l.Padding().Bottom/l.NativeFigSize().Height)
		}
		if !approx(last.Right(), 1-l.Padding().Right/l.NativeFigSize().Width) {
			t.Errorf("right edge of last column = %v, want %v", last.Right(), 1-l.Padding().Right/l.NativeFigSize().Width)
		}
	}
}

func TestPanelPositionOutOfRange(t *testing.T) {
	l := referenceLocator(t)

	tests := []struct {
		name        string
		row, column int
	}{
		{"row past end", 2, 0},
		{"column past end", 0, 3},
		{"negative row", -1, 0},
		{"negative column", 0, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := l.PanelPosition(tt.row, tt.column)
			if !errors.Is(err, errors.ErrCodeIndexOutOfRange) {
				t.Errorf("PanelPosition(%d, %d) error = %v, want %s", tt.row, tt.column, err, errors.ErrCodeIndexOutOfRange)
			}
		})
	}
}

type cell struct{ row, column int }

func collect(t *testing.T, l Locator, order Order) []cell {
	t.Helper()
	panels, err := l.PanelPositions(order)
	if err != nil {
		t.Fatalf("PanelPositions(%q) error: %v", order, err)
	}
	var out []cell
	for p := range panels {
		want, _ := l.PanelPosition(p.Row, p.Column)
		if p.Rect != want {
			t.Errorf("iterator rect for (%d,%d) = %+v, want %+v", p.Row, p.Column, p.Rect, want)
		}
		out = append(out, cell{p.Row, p.Column})
	}
	return out
}

func TestPanelPositionsOrder(t *testing.T) {
	l := referenceLocator(t)

	tests := []struct {
		order Order
		want  []cell
	}{
		{OrderRow, []cell{{0, 0}, {0, 1}, {0, 2}, {1, 0}, {1, 1}, {1, 2}}},
		{"", []cell{{0, 0}, {0, 1}, {0, 2}, {1, 0}, {1, 1}, {1, 2}}},
		{OrderColumn, []cell{{0, 0}, {1, 0}, {0, 1}, {1, 1}, {0, 2}, {1, 2}}},
	}

	for _, tt := range tests {
		t.Run(string(tt.order), func(t *testing.T) {
			first := collect(t, l, tt.order)
			if !slices.Equal(first, tt.want) {
				t.Errorf("order %q = %v, want %v", tt.order, first, tt.want)
			}
			again := collect(t, l, tt.order)
			if !slices.Equal(again, first) {
				t.Errorf("second call = %v, want %v", again, first)
			}
		})
	}
}

func TestPanelPositionsRestartable(t *testing.T) {
	l := referenceLocator(t)
	panels, err := l.PanelPositions(OrderColumn)
	if err != nil {
		t.Fatalf("PanelPositions() error: %v", err)
	}

	// stop early, then range again over the same sequence
	n := 0
	for range panels {
		n++
		if n == 2 {
			break
		}
	}
	var all []Position
	for p := range panels {
		all = append(all, p)
	}
	if len(all) != 6 {
		t.Errorf("second pass yielded %d panels, want 6", len(all))
	}
}

func TestPanelPositionsInvalidOrder(t *testing.T) {
	l := referenceLocator(t)
	seq, err := l.PanelPositions("diagonal")
	if !errors.Is(err, errors.ErrCodeValidation) {
		t.Errorf("PanelPositions(diagonal) error = %v, want %s", err, errors.ErrCodeValidation)
	}
	if seq != nil {
		t.Error("PanelPositions(diagonal) should not return a sequence")
	}
}

func TestSpanPanelPosition(t *testing.T) {
	l := referenceLocator(t)

	got, err := l.SpanPanelPosition(0, 0, 1, 2)
	if err != nil {
		t.Fatalf("SpanPanelPosition() error: %v", err)
	}
	want := Rect{X: 5.0 / 42, Y: 5.0 / 52, Width: 32.0 / 42, Height: 42.0 / 52}
	if !rectApprox(got, want) {
		t.Errorf("SpanPanelPosition(0,0,1,2) = %+v, want %+v", got, want)
	}

	// argument order does not matter
	swapped, _ := l.SpanPanelPosition(1, 2, 0, 0)
	if !rectApprox(swapped, got) {
		t.Errorf("swapped span = %+v, want %+v", swapped, got)
	}

	// a span of one panel is that panel
	single, _ := l.SpanPanelPosition(1, 1, 1, 1)
	p, _ := l.PanelPosition(1, 1)
	if !rectApprox(single, p) {
		t.Errorf("single-panel span = %+v, want %+v", single, p)
	}

	if _, err := l.SpanPanelPosition(0, 0, 2, 0); !errors.Is(err, errors.ErrCodeIndexOutOfRange) {
		t.Errorf("out-of-range span error = %v, want %s", err, errors.ErrCodeIndexOutOfRange)
	}
}

func TestNewPanelSizeLocatorValidation(t *testing.T) {
	tests := []struct {
		name          string
		rows, columns int
		pw, ph        float64
		opts          []Option
		code          errors.Code
	}{
		{"hsep too short", 2, 4, 10, 10, []Option{WithHSep(Sequence(1, 2))}, errors.ErrCodeValidation},
		{"hsep too long", 2, 2, 10, 10, []Option{WithHSep(Sequence(1, 2))}, errors.ErrCodeValidation},
		{"vsep wrong length", 3, 1, 10, 10, []Option{WithVSep(Sequence(1))}, errors.ErrCodeValidation},
		{"negative hsep", 1, 3, 10, 10, []Option{WithHSep(Uniform(-1))}, errors.ErrCodeValidation},
		{"negative hsep element", 1, 3, 10, 10, []Option{WithHSep(Sequence(1, -1))}, errors.ErrCodeValidation},
		{"negative padding", 1, 1, 10, 10, []Option{WithPadding(Padding{Bottom: -2})}, errors.ErrCodeValidation},
		{"zero rows", 0, 1, 10, 10, nil, errors.ErrCodeValidation},
		{"zero columns", 1, 0, 10, 10, nil, errors.ErrCodeValidation},
		{"zero panel width", 1, 1, 0, 10, nil, errors.ErrCodeValidation},
		{"negative panel height", 1, 1, 10, -4, nil, errors.ErrCodeValidation},
		{"nan panel width", 1, 1, math.NaN(), 10, nil, errors.ErrCodeValidation},
		{"bad units", 1, 1, 10, 10, []Option{WithUnits("px")}, errors.ErrCodeInvalidUnit},
		{"uppercase units", 1, 1, 10, 10, []Option{WithUnits("MM")}, errors.ErrCodeInvalidUnit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, err := NewPanelSizeLocator(tt.rows, tt.columns, tt.pw, tt.ph, tt.opts...)
			if !errors.Is(err, tt.code) {
				t.Errorf("error = %v, want %s", err, tt.code)
			}
			if l != nil {
				t.Error("locator should be nil on error")
			}
		})
	}
}

func TestSeparationLengthMessage(t *testing.T) {
	_, err := NewPanelSizeLocator(2, 4, 10, 10, WithHSep(Sequence(1, 2)))
	if err == nil {
		t.Fatal("expected error")
	}
	if got, want := errors.UserMessage(err), "hsep must have exactly 3 elements, got 2"; got != want {
		t.Errorf("message = %q, want %q", got, want)
	}
}

func TestSingleCell(t *testing.T) {
	l, err := NewPanelSizeLocator(1, 1, 80, 60, WithHSep(Sequence()), WithVSep(Uniform(9)))
	if err != nil {
		t.Fatalf("NewPanelSizeLocator() error: %v", err)
	}
	r, _ := l.PanelPosition(0, 0)
	if r != (Rect{X: 0, Y: 0, Width: 1, Height: 1}) {
		t.Errorf("PanelPosition(0,0) = %+v, want the full figure", r)
	}
	if len(l.HSep()) != 0 || len(l.VSep()) != 0 {
		t.Errorf("HSep/VSep = %v/%v, want empty", l.HSep(), l.VSep())
	}
}

func TestAccessorsReturnCopies(t *testing.T) {
	l := referenceLocator(t)
	h := l.HSep()
	h[0] = 99
	if l.HSep()[0] != 1 {
		t.Error("mutating HSep() result changed the locator")
	}
}
