package market

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAverageAndDeviation(t *testing.T) {
	assert.Zero(t, average(nil))
	assert.Equal(t, 2.5, average([]int64{1, 2, 3, 4}))

	assert.Zero(t, standardDeviation([]int64{5}))
	assert.InDelta(t, math.Sqrt(5.0/3), standardDeviation([]int64{1, 2, 3, 4}), 1e-9)
}

func TestTrimmedAverage(t *testing.T) {
	values := make([]int64, 0, 21)
	for i := 0; i < 20; i++ {
		values = append(values, 100)
	}
	values = append(values, 1_000_000)

	// The outlier sits beyond three standard deviations and is ignored. The
	// twenty kept values are averaged among themselves, not over all 21.
	assert.Equal(t, 100.0, trimmedAverage(values))
	assert.NotEqual(t, 2000.0/21, trimmedAverage(values))
	assert.Equal(t, 7.0, trimmedAverage([]int64{7}))
	assert.Zero(t, trimmedAverage(nil))
}

func TestSaleVelocity(t *testing.T) {
	now := time.Date(2024, 1, 8, 0, 0, 0, 0, time.UTC)
	ts := []int64{
		now.Unix(),
		now.Add(-3 * 24 * time.Hour).Unix(),
		now.Add(-8 * 24 * time.Hour).Unix(),
	}
	assert.InDelta(t, 2.0/7, saleVelocity(ts, now), 1e-9)
	assert.Zero(t, saleVelocity(nil, now))
}

func TestHistogram(t *testing.T) {
	assert.Equal(t, map[string]int{"1": 2, "99": 1}, histogram([]int64{1, 99, 1}))
	assert.Empty(t, histogram(nil))
}

func TestMinMax(t *testing.T) {
	assert.Equal(t, int64(-2), minOf([]int64{3, -2, 9}))
	assert.Equal(t, int64(9), maxOf([]int64{3, -2, 9}))
	assert.Zero(t, minOf(nil))
	assert.Zero(t, maxOf(nil))
}
