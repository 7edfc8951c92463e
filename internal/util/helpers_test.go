package util

import "testing"

func TestClamp(t *testing.T) {
	if Clamp(-5, 0, 10) != 0 || Clamp(15, 0, 10) != 10 || Clamp(7, 0, 10) != 7 {
		t.Fatalf("unexpected clamp result")
	}
}

func TestPtr(t *testing.T) {
	p := Ptr(42)
	if p == nil || *p != 42 {
		t.Fatalf("expected pointer to 42")
	}
	*p = 7
	if q := Ptr(42); *q != 42 {
		t.Fatalf("expected independent pointers")
	}
}

func TestParseStoredInt(t *testing.T) {
	cases := []struct {
		raw  string
		want int64
		ok   bool
	}{
		{"1490", 1490, true},
		{`"300"`, 300, true},
		{" -4 ", -4, true},
		{"12.9", 12, true},
		{"1700000000000", 1700000000000, true},
		{"", 0, false},
		{"abc", 0, false},
		{"NaN", 0, false},
		{"null", 0, false},
	}
	for _, tc := range cases {
		got, ok := ParseStoredInt(tc.raw)
		if ok != tc.ok || got != tc.want {
			t.Fatalf("ParseStoredInt(%q) = %d, %v; want %d, %v", tc.raw, got, ok, tc.want, tc.ok)
		}
	}
}

func TestParseStoredBool(t *testing.T) {
	if !ParseStoredBool("true") || !ParseStoredBool(`"true"`) {
		t.Fatalf("expected true")
	}
	if ParseStoredBool("false") || ParseStoredBool("yes") || ParseStoredBool("") {
		t.Fatalf("expected false")
	}
}
