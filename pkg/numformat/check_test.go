package numformat_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/numentry/pkg/numformat"
)

func TestCheck(t *testing.T) {
	t.Parallel()

	defaults := numformat.Default()

	t.Run("accepts valid values under defaults", func(t *testing.T) {
		for _, v := range []string{"", "0", "12", "-12", "-12.50", "12.5", ".5", "-0.001"} {
			assert.NoError(t, numformat.Check(v, defaults), "value %q", v)
		}
	})

	t.Run("rejects malformed values under defaults", func(t *testing.T) {
		for _, v := range []string{"12.5.6", "abc", "1a2", "-", "12.", "--5", "1-2", "5-"} {
			err := numformat.Check(v, defaults)
			require.Error(t, err, "value %q", v)
			assert.ErrorIs(t, err, numformat.ErrMalformed)
		}
	})

	t.Run("rejects sign when negatives are disabled", func(t *testing.T) {
		cfg := defaults
		cfg.Negative = false
		assert.ErrorIs(t, numformat.Check("-12", cfg), numformat.ErrMalformed)
		assert.NoError(t, numformat.Check("12", cfg))
	})

	t.Run("honors a custom separator", func(t *testing.T) {
		cfg := defaults
		cfg.Decimal = ','
		assert.NoError(t, numformat.Check("12,50", cfg))
		// '.' is just an illegal character under a ',' separator.
		assert.ErrorIs(t, numformat.Check("12.50", cfg), numformat.ErrMalformed)
	})

	t.Run("enforces the place limit", func(t *testing.T) {
		cfg := defaults
		cfg.Places = 2
		assert.NoError(t, numformat.Check("12.50", cfg))
		assert.ErrorIs(t, numformat.Check("12.501", cfg), numformat.ErrMalformed)
	})

	t.Run("zero places forbids any fraction", func(t *testing.T) {
		cfg := defaults
		cfg.Places = 0
		assert.NoError(t, numformat.Check("12", cfg))
		assert.ErrorIs(t, numformat.Check("12.5", cfg), numformat.ErrMalformed)
	})

	t.Run("negative place limit behaves as unlimited", func(t *testing.T) {
		cfg := defaults
		cfg.Places = -3
		assert.NoError(t, numformat.Check("1.23456789", cfg))
	})
}

func TestCheckRune(t *testing.T) {
	t.Parallel()

	defaults := numformat.Default()

	t.Run("digits are always legal", func(t *testing.T) {
		assert.True(t, numformat.CheckRune('7', "", defaults))
		assert.True(t, numformat.CheckRune('7', "-12.", defaults))
	})

	t.Run("sign only at the start", func(t *testing.T) {
		assert.True(t, numformat.CheckRune('-', "", defaults))
		assert.False(t, numformat.CheckRune('-', "1", defaults))
		assert.False(t, numformat.CheckRune('-', "-", defaults))
	})

	t.Run("sign illegal when negatives are disabled", func(t *testing.T) {
		cfg := defaults
		cfg.Negative = false
		assert.False(t, numformat.CheckRune('-', "", cfg))
	})

	t.Run("separator only once", func(t *testing.T) {
		assert.True(t, numformat.CheckRune('.', "12", defaults))
		assert.False(t, numformat.CheckRune('.', "12.5", defaults))
	})

	t.Run("a rune can be legal mid-entry before the value is well-formed", func(t *testing.T) {
		// typing "-5": the sign alone is not a valid number yet,
		// but both keystrokes are individually legal.
		assert.True(t, numformat.CheckRune('-', "", defaults))
		assert.True(t, numformat.CheckRune('5', "-", defaults))
	})

	t.Run("anything else is illegal", func(t *testing.T) {
		assert.False(t, numformat.CheckRune('a', "", defaults))
		assert.False(t, numformat.CheckRune(' ', "1", defaults))
	})
}

func TestStrip(t *testing.T) {
	t.Parallel()

	defaults := numformat.Default()

	t.Run("removes illegal characters", func(t *testing.T) {
		assert.Equal(t, "-12.34", numformat.Strip("a-1b2.3.4", defaults))
	})

	t.Run("keeps a clean value untouched", func(t *testing.T) {
		assert.Equal(t, "-12.50", numformat.Strip("-12.50", defaults))
	})

	t.Run("drops sign when negatives are disabled", func(t *testing.T) {
		cfg := defaults
		cfg.Negative = false
		assert.Equal(t, "12", numformat.Strip("-12", cfg))
	})

	t.Run("keeps only the first separator", func(t *testing.T) {
		assert.Equal(t, "1.23", numformat.Strip("1.2.3", defaults))
	})

	t.Run("truncates excess fraction digits", func(t *testing.T) {
		cfg := defaults
		cfg.Places = 2
		assert.Equal(t, "1.23", numformat.Strip("1.2345", cfg))
	})

	t.Run("zero places drops the separator entirely", func(t *testing.T) {
		cfg := defaults
		cfg.Places = 0
		assert.Equal(t, "12", numformat.Strip("12.5", cfg))
	})

	t.Run("sign not at the start is dropped", func(t *testing.T) {
		assert.Equal(t, "12", numformat.Strip("1-2", defaults))
	})
}
