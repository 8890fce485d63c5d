package fluentcheck_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fluentcheck/fluentcheck"
)

func TestMin(t *testing.T) {
	t.Run("passes when value equals minimum", func(t *testing.T) {
		res := fluentcheck.Min("age", 18, 18).Evaluate()
		assert.True(t, res.IsValid())
	})

	t.Run("passes when value exceeds minimum", func(t *testing.T) {
		res := fluentcheck.Min("age", 21, 18).Evaluate()
		assert.True(t, res.IsValid())
	})

	t.Run("fails when value is below minimum", func(t *testing.T) {
		res := fluentcheck.Min("age", 17, 18).Evaluate()
		assert.False(t, res.IsValid())
		assert.Equal(t, "age must be at least 18", res.ErrorMessage())
	})

	t.Run("works with floats", func(t *testing.T) {
		res := fluentcheck.Min("rate", 0.4, 0.5).Evaluate()
		assert.False(t, res.IsValid())
		assert.Equal(t, "rate must be at least 0.5", res.ErrorMessage())
	})
}

func TestMax(t *testing.T) {
	t.Run("passes when value equals maximum", func(t *testing.T) {
		res := fluentcheck.Max("score", 100, 100).Evaluate()
		assert.True(t, res.IsValid())
	})

	t.Run("fails when value exceeds maximum", func(t *testing.T) {
		res := fluentcheck.Max("score", 101, 100).Evaluate()
		assert.False(t, res.IsValid())
		assert.Equal(t, "score must be at most 100", res.ErrorMessage())
	})
}

func TestBetween(t *testing.T) {
	t.Run("passes inside the range", func(t *testing.T) {
		res := fluentcheck.Between("age", 30, 18, 65).Evaluate()
		assert.True(t, res.IsValid())
	})

	t.Run("passes on the boundaries", func(t *testing.T) {
		assert.True(t, fluentcheck.Between("age", 18, 18, 65).Evaluate().IsValid())
		assert.True(t, fluentcheck.Between("age", 65, 18, 65).Evaluate().IsValid())
	})

	t.Run("fails outside the range", func(t *testing.T) {
		res := fluentcheck.Between("age", 17, 18, 65).Evaluate()
		assert.False(t, res.IsValid())
		assert.Equal(t, "age must be between 18 and 65", res.ErrorMessage())
	})
}

func TestPositive(t *testing.T) {
	t.Run("passes for positive values", func(t *testing.T) {
		assert.True(t, fluentcheck.Positive("amount", 1).Evaluate().IsValid())
		assert.True(t, fluentcheck.Positive("amount", 0.01).Evaluate().IsValid())
	})

	t.Run("fails for zero", func(t *testing.T) {
		res := fluentcheck.Positive("amount", 0).Evaluate()
		assert.False(t, res.IsValid())
		assert.Equal(t, "amount must be positive", res.ErrorMessage())
	})

	t.Run("fails for negative values", func(t *testing.T) {
		assert.False(t, fluentcheck.Positive("amount", -5).Evaluate().IsValid())
	})
}
