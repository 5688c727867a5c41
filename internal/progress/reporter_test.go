package progress

import (
	"reflect"
	"testing"
)

func collect(t *testing.T, fractions []float64) []int {
	t.Helper()
	var emitted []int
	r := NewReporter("page-1.jpg", func(ev Event) {
		if ev.Image != "page-1.jpg" {
			t.Fatalf("unexpected image %q", ev.Image)
		}
		emitted = append(emitted, ev.Progress)
	})
	for _, f := range fractions {
		r.Observe(f)
	}
	return emitted
}

func TestReporterThrottlesToTenths(t *testing.T) {
	in := []float64{0, 0.03, 0.09, 0.10, 0.10, 0.15, 0.27, 0.30, 1.0}
	got := collect(t, in)
	want := []int{0, 10, 30, 100}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("emitted %v, want %v", got, want)
	}
}

func TestReporterMonotonicUnderNoise(t *testing.T) {
	// engines may jitter backwards; earlier values must never re-emit
	in := []float64{0.5, 0.4, 0.5, 0.6, 0.5, 0.7}
	got := collect(t, in)
	want := []int{50, 60, 70}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("emitted %v, want %v", got, want)
	}
}

func TestReporterIgnoresOutOfRange(t *testing.T) {
	got := collect(t, []float64{-0.1, 1.2, -1, 2})
	if len(got) != 0 {
		t.Fatalf("emitted %v, want none", got)
	}
}

func TestReporterEmitsZero(t *testing.T) {
	got := collect(t, []float64{0})
	if !reflect.DeepEqual(got, []int{0}) {
		t.Fatalf("emitted %v, want [0]", got)
	}
}

func TestReporterDenseStream(t *testing.T) {
	var in []float64
	for i := 0; i <= 1000; i++ {
		in = append(in, float64(i)/1000)
	}
	got := collect(t, in)
	want := []int{0, 10, 20, 30, 40, 50, 60, 70, 80, 90, 100}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("emitted %v, want %v", got, want)
	}
}

func TestReporterFloatTenths(t *testing.T) {
	// 0.3*100 is 29.999... in binary; the floor must still land on 30
	got := collect(t, []float64{0.3})
	if !reflect.DeepEqual(got, []int{30}) {
		t.Fatalf("emitted %v, want [30]", got)
	}
}

func TestReporterPerImageIsolation(t *testing.T) {
	var first, second []int
	a := NewReporter("a.jpg", func(ev Event) { first = append(first, ev.Progress) })
	b := NewReporter("b.jpg", func(ev Event) { second = append(second, ev.Progress) })

	a.Observe(0.9)
	b.Observe(0.1)

	if !reflect.DeepEqual(first, []int{90}) || !reflect.DeepEqual(second, []int{10}) {
		t.Fatalf("first=%v second=%v", first, second)
	}
}
