package bkper

import (
	"fmt"

	"github.com/PaesslerAG/jsonpath"
	"github.com/shopspring/decimal"
)

// Balance is one row of a balances query: a group or account name and
// its total over the queried period.
type Balance struct {
	Name  string
	Total decimal.Decimal
}

// parseBalanceMatrix extracts balances out of the raw balances payload.
//
// The payload is a matrix of loosely typed rows ([name, total] pairs,
// totals arriving either as numbers or as strings) and is not worth a
// full struct model: a jsonpath probe keeps the shape assumptions in
// one place.
func parseBalanceMatrix(payload any) ([]Balance, error) {
	jrows, err := jsonpath.Get("$.matrix", payload)
	if err != nil {
		return nil, fmt.Errorf("no matrix in balances payload: %w", err)
	}
	rows, ok := jrows.([]any)
	if !ok {
		return nil, fmt.Errorf("balances matrix is %T, expected a list", jrows)
	}

	balances := make([]Balance, 0, len(rows))
	for i, jrow := range rows {
		row, ok := jrow.([]any)
		if !ok || len(row) < 2 {
			return nil, fmt.Errorf("balances matrix row %d is not a [name, total] pair", i)
		}
		name, ok := row[0].(string)
		if !ok {
			return nil, fmt.Errorf("balances matrix row %d has a %T name", i, row[0])
		}
		total, err := decimalFromAny(row[1])
		if err != nil {
			return nil, fmt.Errorf("balances matrix row %d: %w", i, err)
		}
		balances = append(balances, Balance{Name: name, Total: total})
	}
	return balances, nil
}

func decimalFromAny(v any) (decimal.Decimal, error) {
	switch t := v.(type) {
	case string:
		return decimal.NewFromString(t)
	case float64:
		return decimal.NewFromFloat(t), nil
	default:
		return decimal.Decimal{}, fmt.Errorf("cannot read %T as a decimal", v)
	}
}
