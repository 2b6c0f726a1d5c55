package date

import "testing"

func TestHistory_AppendKeepsChronologicalOrder(t *testing.T) {
	h := &History[float64]{}
	h.Append(MustParse("2025-06-03"), 2.0)
	h.Append(MustParse("2025-06-01"), 1.0)
	h.Append(MustParse("2025-06-05"), 3.0)

	var got []float64
	for _, v := range h.Values() {
		got = append(got, v)
	}
	want := []float64{1.0, 2.0, 3.0}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("values in order = %v, want %v", got, want)
		}
	}
}

func TestHistory_AppendOverwritesSameDay(t *testing.T) {
	h := &History[float64]{}
	day := MustParse("2025-06-01")
	h.Append(day, 1.0)
	h.Append(day, 2.0)

	if h.Len() != 1 {
		t.Fatalf("Len = %d, want 1", h.Len())
	}
	if v, ok := h.Get(day); !ok || v != 2.0 {
		t.Errorf("Get = %v, %v; the last data must win", v, ok)
	}
}

func TestHistory_Latest(t *testing.T) {
	h := &History[float64]{}
	if day, v := h.Latest(); day != (Date{}) || v != 0 {
		t.Errorf("empty history Latest = %v, %v", day, v)
	}
	h.Append(MustParse("2025-06-01"), 1.0)
	h.Append(MustParse("2025-06-04"), 4.0)
	day, v := h.Latest()
	if day != MustParse("2025-06-04") || v != 4.0 {
		t.Errorf("Latest = %v, %v", day, v)
	}
}

func TestHistory_Get_Missing(t *testing.T) {
	h := &History[string]{}
	h.Append(MustParse("2025-06-01"), "a")
	if _, ok := h.Get(MustParse("2025-06-02")); ok {
		t.Error("Get found a value on a day never appended")
	}
}
