package models

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
)

func TestMoneyRoundsToTwoPlaces(t *testing.T) {
	m := NewMoney(decimal.NewFromFloat(10.999))
	if m.String() != "11.00" {
		t.Fatalf("expected 11.00, got %s", m.String())
	}

	m = NewMoney(decimal.NewFromFloat(10.994))
	if m.String() != "10.99" {
		t.Fatalf("expected 10.99, got %s", m.String())
	}
}

func TestMoneyArithmetic(t *testing.T) {
	price, err := NewMoneyFromString("10.00")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	total := price.MulInt(3)
	if total.String() != "30.00" {
		t.Fatalf("expected 30.00, got %s", total.String())
	}

	other, _ := NewMoneyFromString("5.99")
	sum := total.Add(other)
	if sum.String() != "35.99" {
		t.Fatalf("expected 35.99, got %s", sum.String())
	}
}

func TestMoneyJSONRoundTrip(t *testing.T) {
	m, _ := NewMoneyFromString("12.50")
	raw, err := json.Marshal(m)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(raw) != `"12.50"` {
		t.Fatalf("expected quoted fixed string, got %s", raw)
	}

	var back Money
	if err := json.Unmarshal(raw, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !back.Equal(m.Decimal) {
		t.Fatalf("round trip mismatch: %s vs %s", back.String(), m.String())
	}

	// 数字形式同样接受
	if err := json.Unmarshal([]byte(`12.5`), &back); err != nil {
		t.Fatalf("unmarshal number: %v", err)
	}
	if back.String() != "12.50" {
		t.Fatalf("expected 12.50, got %s", back.String())
	}
}

func TestMoneyParseInvalid(t *testing.T) {
	if _, err := NewMoneyFromString("not-a-number"); err == nil {
		t.Fatal("expected error for invalid input")
	}
}
