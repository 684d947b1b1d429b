package kernel_test

import (
	"testing"

	"courierapp/internal/core/domain/model/kernel"
	"courierapp/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMoney(t *testing.T) {
	t.Run("should accept zero and positive amounts", func(t *testing.T) {
		for _, kopecks := range []int64{0, 1, 150000} {
			m, err := kernel.NewMoney(kopecks)
			require.NoError(t, err)
			assert.Equal(t, kopecks, m.Kopecks())
		}
	})

	t.Run("should reject negative amounts", func(t *testing.T) {
		_, err := kernel.NewMoney(-1)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestMoneyFromString(t *testing.T) {
	t.Run("should parse kopeck strings", func(t *testing.T) {
		m, err := kernel.MoneyFromString("150000")

		require.NoError(t, err)
		assert.Equal(t, int64(150000), m.Kopecks())
	})

	t.Run("should reject fractional kopecks", func(t *testing.T) {
		_, err := kernel.MoneyFromString("150000.5")

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject non numeric input", func(t *testing.T) {
		_, err := kernel.MoneyFromString("free")
		require.Error(t, err)
	})

	t.Run("should reject negative amounts", func(t *testing.T) {
		_, err := kernel.MoneyFromString("-100")
		require.Error(t, err)
	})
}

func TestMoney_Rubles(t *testing.T) {
	t.Run("should convert kopecks to rubles exactly", func(t *testing.T) {
		m, err := kernel.NewMoney(150050)
		require.NoError(t, err)

		assert.Equal(t, "1500.5", m.Rubles().String())
	})
}

func TestMoney_Format(t *testing.T) {
	testCases := []struct {
		name         string
		kopecks      int64
		showDecimals bool
		expected     string
	}{
		{"whole rubles without decimals", 150000, false, "1500₽"},
		{"rounded to nearest ruble", 150050, false, "1501₽"},
		{"with decimals", 150050, true, "1500.50₽"},
		{"zero", 0, false, "0₽"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			m, err := kernel.NewMoney(tc.kopecks)
			require.NoError(t, err)

			assert.Equal(t, tc.expected, m.Format(tc.showDecimals))
		})
	}
}

func TestMoney_FormatGrouped(t *testing.T) {
	t.Run("should group digits and append ruble sign", func(t *testing.T) {
		m, err := kernel.NewMoney(12345600)
		require.NoError(t, err)

		formatted := m.FormatGrouped()
		assert.Contains(t, formatted, "₽")
		// ru-RU grouping splits thousands: no run of more than 3 digits.
		assert.NotContains(t, formatted, "123456")
	})
}

func TestMoney_String(t *testing.T) {
	t.Run("should render wire form in kopecks", func(t *testing.T) {
		m, err := kernel.NewMoney(150000)
		require.NoError(t, err)

		assert.Equal(t, "150000", m.String())
	})
}
