package bkper

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestParseBalanceMatrix(t *testing.T) {
	var payload any
	raw := `{"matrix":[["Assets","1200.00"],["Expenses",42.5],["Liabilities","-300"]]}`
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		t.Fatal(err)
	}

	balances, err := parseBalanceMatrix(payload)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(balances) != 3 {
		t.Fatalf("got %d balances, want 3", len(balances))
	}

	want := []struct {
		name  string
		total string
	}{
		{"Assets", "1200"},
		{"Expenses", "42.5"},
		{"Liabilities", "-300"},
	}
	for i, w := range want {
		if balances[i].Name != w.name {
			t.Errorf("row %d: got name %q, want %q", i, balances[i].Name, w.name)
		}
		if got := balances[i].Total.String(); got != w.total {
			t.Errorf("row %d: got total %s, want %s", i, got, w.total)
		}
	}
}

func TestParseBalanceMatrixErrors(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"missing matrix", `{"rows":[]}`, "no matrix"},
		{"matrix not a list", `{"matrix":"nope"}`, "expected a list"},
		{"row not a pair", `{"matrix":[["Assets"]]}`, "row 0"},
		{"bad name", `{"matrix":[[7,"10"]]}`, "name"},
		{"bad total", `{"matrix":[["Assets",true]]}`, "row 0"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var payload any
			if err := json.Unmarshal([]byte(tc.raw), &payload); err != nil {
				t.Fatal(err)
			}
			_, err := parseBalanceMatrix(payload)
			if err == nil {
				t.Fatal("expected an error")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Errorf("error %q does not mention %q", err, tc.want)
			}
		})
	}
}
