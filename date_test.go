package bkper

import (
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	testCases := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "2018-01-25", want: "2018-01-25"},
		{in: "2018-1-5", want: "2018-01-05"}, // permissive on leading zeros
		{in: "25/01/2018", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tc := range testCases {
		d, err := ParseDate(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Errorf("ParseDate(%q): expected error, got %v", tc.in, d)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseDate(%q): %v", tc.in, err)
			continue
		}
		if d.String() != tc.want {
			t.Errorf("ParseDate(%q) = %s, want %s", tc.in, d, tc.want)
		}
	}
}

func TestDateOrdering(t *testing.T) {
	a := NewDate(2018, time.January, 25)
	b := NewDate(2018, time.February, 1)
	if !a.Before(b) || b.Before(a) || !b.After(a) {
		t.Errorf("ordering broken for %s and %s", a, b)
	}
}

func TestDateNormalization(t *testing.T) {
	// Out-of-range days normalize the way time.Date does.
	d := NewDate(2018, time.January, 32)
	if d.String() != "2018-02-01" {
		t.Errorf("NewDate(2018, jan, 32) = %s, want 2018-02-01", d)
	}
}
