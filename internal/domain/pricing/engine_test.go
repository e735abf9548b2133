//go:build unit

package pricing_test

import (
	"testing"

	"franchise-store/internal/domain/pricing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func account(available, reserved int64) pricing.Account {
	return pricing.Account{AvailablePoints: available, ReservedPoints: reserved}
}

func TestCompute(t *testing.T) {
	t.Run("worked example: 1000 subtotal, 250 points, 50 delivery fee", func(t *testing.T) {
		result, err := pricing.Compute(pricing.Input{
			Subtotal:        1000,
			RequestedPoints: 250,
			DeliveryFee:     50,
		}, account(500, 0))

		require.NoError(t, err)
		assert.Equal(t, int64(1000), result.Subtotal)
		assert.Equal(t, int64(250), result.LoyaltyDiscount)
		assert.Equal(t, int64(50), result.DeliveryFee)
		assert.Equal(t, int64(750), result.TotalAfterLoyalty)
		assert.Equal(t, int64(800), result.FinalAmount)
	})

	t.Run("zero points is a plain order", func(t *testing.T) {
		result, err := pricing.Compute(pricing.Input{
			Subtotal:        1000,
			RequestedPoints: 0,
			DeliveryFee:     50,
		}, account(0, 0))

		require.NoError(t, err)
		assert.Equal(t, int64(0), result.LoyaltyDiscount)
		assert.Equal(t, int64(1050), result.FinalAmount)
	})

	t.Run("points at exactly the 30 percent cap are admitted", func(t *testing.T) {
		result, err := pricing.Compute(pricing.Input{
			Subtotal:        1000,
			RequestedPoints: 300,
			DeliveryFee:     0,
		}, account(1000, 0))

		require.NoError(t, err)
		assert.Equal(t, int64(300), result.LoyaltyDiscount)
		assert.Equal(t, int64(700), result.FinalAmount)
	})

	t.Run("points above the cap fail with the admissible maximum", func(t *testing.T) {
		_, err := pricing.Compute(pricing.Input{
			Subtotal:        1000,
			RequestedPoints: 400,
			DeliveryFee:     50,
		}, account(1000, 0))

		require.Error(t, err)
		var capErr *pricing.DiscountCapError
		require.ErrorAs(t, err, &capErr)
		assert.Equal(t, int64(300), capErr.Max)
	})

	t.Run("cap floors on odd subtotals", func(t *testing.T) {
		// floor(999 * 0.30) = 299
		assert.Equal(t, int64(299), pricing.MaxDiscount(999))
		assert.Equal(t, int64(0), pricing.MaxDiscount(1))
		assert.Equal(t, int64(0), pricing.MaxDiscount(0))
	})

	t.Run("reserved points shrink the spendable balance", func(t *testing.T) {
		// 250 requested + 300 reserved > 500 available
		_, err := pricing.Compute(pricing.Input{
			Subtotal:        1000,
			RequestedPoints: 250,
			DeliveryFee:     0,
		}, account(500, 300))

		require.ErrorIs(t, err, pricing.ErrInsufficientPoints)

		// exactly equal is still admitted
		result, err := pricing.Compute(pricing.Input{
			Subtotal:        1000,
			RequestedPoints: 200,
			DeliveryFee:     0,
		}, account(500, 300))
		require.NoError(t, err)
		assert.Equal(t, int64(200), result.LoyaltyDiscount)
	})

	t.Run("balance is checked before the cap", func(t *testing.T) {
		// 400 violates both the balance (available 100) and the cap (300);
		// the balance error wins.
		_, err := pricing.Compute(pricing.Input{
			Subtotal:        1000,
			RequestedPoints: 400,
			DeliveryFee:     0,
		}, account(100, 0))

		require.ErrorIs(t, err, pricing.ErrInsufficientPoints)
	})

	t.Run("input validation", func(t *testing.T) {
		cases := []struct {
			name  string
			in    pricing.Input
			errIs error
		}{
			{
				name:  "negative subtotal",
				in:    pricing.Input{Subtotal: -1, RequestedPoints: 0, DeliveryFee: 0},
				errIs: pricing.ErrNegativeAmount,
			},
			{
				name:  "negative delivery fee",
				in:    pricing.Input{Subtotal: 100, RequestedPoints: 0, DeliveryFee: -1},
				errIs: pricing.ErrNegativeAmount,
			},
			{
				name:  "negative requested points",
				in:    pricing.Input{Subtotal: 100, RequestedPoints: -1, DeliveryFee: 0},
				errIs: pricing.ErrNegativePoints,
			},
		}

		for _, c := range cases {
			t.Run(c.name, func(t *testing.T) {
				_, err := pricing.Compute(c.in, account(1000, 0))
				require.ErrorIs(t, err, c.errIs)
			})
		}
	})

	t.Run("same inputs always reproduce the same breakdown", func(t *testing.T) {
		in := pricing.Input{Subtotal: 2399, RequestedPoints: 311, DeliveryFee: 120}
		acct := account(900, 100)

		first, err := pricing.Compute(in, acct)
		require.NoError(t, err)

		for range 5 {
			again, err := pricing.Compute(in, acct)
			require.NoError(t, err)
			assert.Empty(t, cmp.Diff(first, again))
		}
	})
}
