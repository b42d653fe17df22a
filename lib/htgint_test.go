package lib

import "reflect"
import "testing"

func TestHistogramInt64(t *testing.T) {
	h := NewhistorgramInt64(3, 97, 3)
	for i := 1; i <= 100; i++ {
		h.Add(int64(i))
	}

	if x, y := int64(1), h.Min(); x != y {
		t.Errorf("Min() expected %v, got %v", x, y)
	} else if x, y := int64(100), h.Max(); x != y {
		t.Errorf("Max() expected %v, got %v", x, y)
	} else if x, y := int64(100), h.Samples(); x != y {
		t.Errorf("Samples() expected %v, got %v", x, y)
	} else if x, y := int64(100*101)/2, h.Sum(); x != y {
		t.Errorf("Sum() expected %v, got %v", x, y)
	} else if x, y := h.Sum()/h.Samples(), h.Mean(); x != y {
		t.Errorf("Mean() expected %v, got %v", x, y)
	} else if x, y := int64(883), h.Variance(); x != y {
		t.Errorf("Variance() expected %v, got %v", x, y)
	} else if x, y := int64(29), h.SD(); x != y {
		t.Errorf("SD() expected %v, got %v", x, y)
	}

	// check histogram
	samples := []int64{0, 1, 2, 3, 4, 5, 6, 7, 9, 10, 11, 12, 13, 14, 15, 16, 17}

	ref := map[string]int64{"12": 11, "15": 14, "+": 17, "6": 6, "9": 8}
	h = NewhistorgramInt64(6, 15, 3)
	for _, sample := range samples {
		h.Add(sample)
	}
	if data := h.Stats(); reflect.DeepEqual(ref, data) == false {
		t.Errorf("expected %v, got %v", ref, data)
	}

	fullstats := h.Fullstats()
	if x := fullstats["samples"].(int64); x != 17 {
		t.Errorf("unexpected %v", x)
	}
	if _, ok := fullstats["histogram"]; ok == false {
		t.Errorf("missing histogram in fullstats")
	}
	if s := h.Logstring(); len(s) == 0 {
		t.Errorf("unexpected empty logstring")
	}
}

func TestHistogramEmpty(t *testing.T) {
	h := NewhistorgramInt64(1, 64, 1)
	if x := h.Samples(); x != 0 {
		t.Errorf("unexpected %v", x)
	} else if x := h.Mean(); x != 0 {
		t.Errorf("unexpected %v", x)
	} else if x := h.Variance(); x != 0 {
		t.Errorf("unexpected %v", x)
	} else if x := h.SD(); x != 0 {
		t.Errorf("unexpected %v", x)
	}
}
