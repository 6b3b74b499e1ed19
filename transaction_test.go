package bkper

import (
	"encoding/json"
	"strings"
	"testing"
	"time"
)

// The rich account reference is the canonical representation; the bare
// id projection must be derived at the serialization boundary only.
func TestTransactionMarshalProjectsAccountIDs(t *testing.T) {
	tx := &Transaction{
		ID:            "t1",
		Posted:        true,
		Date:          NewDate(2018, time.January, 25),
		Description:   "DAS Simples",
		Amount:        amt("100.00"),
		CreditAccount: &AccountRef{ID: "acc-1", Name: "Checking", Type: Asset},
	}

	data, err := json.Marshal(tx)
	if err != nil {
		t.Fatal(err)
	}
	got := string(data)

	for _, want := range []string{
		`"creditAccount":{"id":"acc-1"`,
		`"creditAccountId":"acc-1"`,
		`"amount":"100"`,
		`"date":"2018-01-25"`,
	} {
		if !strings.Contains(got, want) {
			t.Errorf("marshaled %s\nmissing %s", got, want)
		}
	}
	if strings.Contains(got, "debitAccountId") {
		t.Errorf("marshaled %s\nprojected an absent debit account", got)
	}

	// Round-trip: the projection is derived, not an independent field.
	var back Transaction
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatal(err)
	}
	if back.CreditAccount == nil || back.CreditAccount.ID != "acc-1" {
		t.Errorf("round-trip creditAccount = %v", back.CreditAccount)
	}
	if back.DebitAccount != nil {
		t.Errorf("round-trip debitAccount = %v, want nil", back.DebitAccount)
	}
	if !back.Amount.Equal(*tx.Amount) {
		t.Errorf("round-trip amount = %s", back.Amount)
	}
}

func TestTransactionUnmarshalAbsentFields(t *testing.T) {
	var tx Transaction
	if err := json.Unmarshal([]byte(`{"id":"t9","posted":false}`), &tx); err != nil {
		t.Fatal(err)
	}
	if tx.Amount != nil || tx.CreditAccount != nil || tx.DebitAccount != nil {
		t.Errorf("absent fields must decode to nil, got %+v", tx)
	}
	if !tx.Date.IsZero() {
		t.Errorf("absent date must stay zero, got %v", tx.Date)
	}
}
