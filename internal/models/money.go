package models

import (
	"database/sql/driver"
	"fmt"

	"github.com/shopspring/decimal"
)

// Money 金额类型，统一保留两位小数
type Money struct {
	decimal.Decimal
}

// NewMoney 从 decimal 构造金额
func NewMoney(d decimal.Decimal) Money {
	return Money{Decimal: d.Round(2)}
}

// NewMoneyFromString 从字符串构造金额
func NewMoneyFromString(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, fmt.Errorf("invalid money value %q: %w", s, err)
	}
	return NewMoney(d), nil
}

// Add 金额相加
func (m Money) Add(other Money) Money {
	return NewMoney(m.Decimal.Add(other.Decimal))
}

// MulInt 金额乘以整数数量
func (m Money) MulInt(n int64) Money {
	return NewMoney(m.Decimal.Mul(decimal.NewFromInt(n)))
}

// String 输出两位小数字符串
func (m Money) String() string {
	return m.Decimal.StringFixed(2)
}

// MarshalJSON 序列化为两位小数的 JSON 字符串
func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(`"` + m.String() + `"`), nil
}

// UnmarshalJSON 支持字符串和数字两种形式
func (m *Money) UnmarshalJSON(data []byte) error {
	var d decimal.Decimal
	if err := d.UnmarshalJSON(data); err != nil {
		return err
	}
	m.Decimal = d.Round(2)
	return nil
}

// Value 数据库写入值
func (m Money) Value() (driver.Value, error) {
	return m.String(), nil
}

// Scan 数据库读取
func (m *Money) Scan(value interface{}) error {
	var d decimal.Decimal
	if err := d.Scan(value); err != nil {
		return err
	}
	m.Decimal = d.Round(2)
	return nil
}
