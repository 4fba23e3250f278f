package valueobject

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMoney(t *testing.T) {
	t.Run("creates money with valid amount and currency", func(t *testing.T) {
		m, err := NewMoney(decimal.NewFromFloat(12.40), EUR)
		require.NoError(t, err)
		assert.Equal(t, EUR, m.Currency())
		assert.True(t, m.Amount().Equal(decimal.NewFromFloat(12.40)))
	})

	t.Run("returns error for empty currency", func(t *testing.T) {
		_, err := NewMoney(decimal.NewFromFloat(1), "")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "currency cannot be empty")
	})
}

func TestNewMoneyFromString(t *testing.T) {
	t.Run("valid string", func(t *testing.T) {
		m, err := NewMoneyFromString("9.20", EUR)
		require.NoError(t, err)
		assert.True(t, m.Amount().Equal(decimal.NewFromFloat(9.2)))
	})

	t.Run("invalid string", func(t *testing.T) {
		_, err := NewMoneyFromString("not-a-number", EUR)
		assert.Error(t, err)
	})
}

func TestZeroEUR(t *testing.T) {
	m := ZeroEUR()
	assert.True(t, m.IsZero())
	assert.Equal(t, EUR, m.Currency())
}

func TestMoneyAdd(t *testing.T) {
	t.Run("adds same-currency amounts exactly", func(t *testing.T) {
		a := NewMoneyEURFromFloat(0.8)
		b := NewMoneyEURFromFloat(2.8)

		sum, err := a.Add(b)
		require.NoError(t, err)
		assert.True(t, sum.Amount().Equal(decimal.NewFromFloat(3.6)))
	})

	t.Run("rejects mixed currencies", func(t *testing.T) {
		a := NewMoneyEURFromFloat(1)
		b, err := NewMoney(decimal.NewFromInt(1), USD)
		require.NoError(t, err)

		_, err = a.Add(b)
		assert.Error(t, err)
	})

	t.Run("MustAdd panics on mixed currencies", func(t *testing.T) {
		a := NewMoneyEURFromFloat(1)
		b, _ := NewMoney(decimal.NewFromInt(1), USD)
		assert.Panics(t, func() { a.MustAdd(b) })
	})
}

func TestMoneyMultiply(t *testing.T) {
	m := NewMoneyEURFromFloat(1.8)
	assert.True(t, m.MultiplyByInt(3).Amount().Equal(decimal.NewFromFloat(5.4)))
}

func TestMoneyEquals(t *testing.T) {
	assert.True(t, NewMoneyEURFromFloat(2.5).Equals(NewMoneyEURFromFloat(2.5)))
	assert.False(t, NewMoneyEURFromFloat(2.5).Equals(NewMoneyEURFromFloat(2.50001)))

	usd, _ := NewMoney(decimal.NewFromFloat(2.5), USD)
	assert.False(t, NewMoneyEURFromFloat(2.5).Equals(usd))
}

func TestMoneyString(t *testing.T) {
	assert.Equal(t, "16.40 EUR", NewMoneyEURFromFloat(16.4).String())
	assert.Equal(t, "9.2", NewMoneyEURFromFloat(9.2).StringFixed(1))
}

func TestMoneyJSONRoundTrip(t *testing.T) {
	original := NewMoneyEURFromFloat(9.2)

	data, err := json.Marshal(original)
	require.NoError(t, err)

	var decoded Money
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.True(t, original.Equals(decoded))
}

func TestMoneyScan(t *testing.T) {
	t.Run("scans string value with default currency", func(t *testing.T) {
		var m Money
		require.NoError(t, m.Scan("16.4"))
		assert.True(t, m.Amount().Equal(decimal.NewFromFloat(16.4)))
		assert.Equal(t, DefaultCurrency, m.Currency())
	})

	t.Run("nil scans to zero", func(t *testing.T) {
		var m Money
		require.NoError(t, m.Scan(nil))
		assert.True(t, m.IsZero())
	})

	t.Run("rejects unsupported type", func(t *testing.T) {
		var m Money
		assert.Error(t, m.Scan(42))
	})
}
