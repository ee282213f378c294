package chartdata

import (
	"errors"
	"testing"
)

func TestCategoricalSeriesFromValues(t *testing.T) {
	s, err := CategoricalSeriesFromValues("sales", []string{"Q1", "Q2"}, []float64{100, 50})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Name != "sales" {
		t.Errorf("Name = %q, want %q", s.Name, "sales")
	}
	if len(s.Data) != 2 {
		t.Fatalf("len(Data) = %d, want 2", len(s.Data))
	}
	if s.Data[0].Category != "Q1" || s.Data[0].Value != 100 {
		t.Errorf("Data[0] = %+v, want Q1/100", s.Data[0])
	}
	if s.Data[0].Label != "Q1" {
		t.Errorf("Label should default to category, got %q", s.Data[0].Label)
	}
}

func TestCategoricalSeriesLengthMismatch(t *testing.T) {
	_, err := CategoricalSeriesFromValues("bad", []string{"A", "B"}, []float64{1})
	if !errors.Is(err, ErrLengthMismatch) {
		t.Errorf("err = %v, want ErrLengthMismatch", err)
	}
}

func TestNumericSeriesFromValues(t *testing.T) {
	s, err := NumericSeriesFromValues("t", []float64{0, 1}, []float64{10, 20})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Data[1].X != 1 || s.Data[1].Y != 20 {
		t.Errorf("Data[1] = %+v, want (1, 20)", s.Data[1])
	}
}

func TestNumericSeriesLengthMismatch(t *testing.T) {
	_, err := NumericSeriesFromValues("bad", []float64{1}, []float64{1, 2})
	if !errors.Is(err, ErrLengthMismatch) {
		t.Errorf("err = %v, want ErrLengthMismatch", err)
	}
}

func TestNumericSeriesFromYValues(t *testing.T) {
	s := NumericSeriesFromYValues("t", []float64{5, 6, 7})
	for i, p := range s.Data {
		if p.X != float64(i) {
			t.Errorf("Data[%d].X = %v, want %d", i, p.X, i)
		}
	}
}

func TestSeriesAccessors(t *testing.T) {
	s, _ := CategoricalSeriesFromValues("s", []string{"A", "B"}, []float64{1, 2})
	cats := s.Categories()
	vals := s.Values()
	if len(cats) != 2 || cats[1] != "B" || vals[1] != 2 {
		t.Errorf("accessors = %v %v", cats, vals)
	}

	n, _ := NumericSeriesFromValues("n", []float64{1, 2}, []float64{3, 4})
	if xs := n.XValues(); xs[1] != 2 {
		t.Errorf("XValues = %v", xs)
	}
	if ys := n.YValues(); ys[0] != 3 {
		t.Errorf("YValues = %v", ys)
	}
}

func TestSeriesStyleWith(t *testing.T) {
	base := DefaultSeriesStyle()
	red := base.WithColor("#ff0000")
	if red.Color != "#ff0000" || base.Color == "#ff0000" {
		t.Error("WithColor should copy, not mutate")
	}
	faded := base.WithOpacity(0.1)
	if faded.FillOpacity != 0.1 || base.FillOpacity != 0.3 {
		t.Error("WithOpacity should copy, not mutate")
	}
}

func TestGaugeDataPointPercentage(t *testing.T) {
	p := GaugeDataPoint{Value: 75, MinValue: 50, MaxValue: 150}
	if got := p.Percentage(); got != 0.25 {
		t.Errorf("Percentage = %v, want 0.25", got)
	}
	degenerate := GaugeDataPoint{Value: 5, MinValue: 5, MaxValue: 5}
	if got := degenerate.Percentage(); got != 0 {
		t.Errorf("degenerate Percentage = %v, want 0", got)
	}
}
