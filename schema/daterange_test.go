package schema

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDateRange_Valid(t *testing.T) {
	r, err := ParseDateRange("2024-01-01", "2024-01-31", 90)
	require.NoError(t, err)

	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), r.From)
	// To 被推到当天结束，保证区间右端闭合
	assert.Equal(t, time.Date(2024, 1, 31, 23, 59, 59, 0, time.UTC), r.To)
}

func TestParseDateRange_SameDay(t *testing.T) {
	// from == to 是合法的单日区间
	r, err := ParseDateRange("2024-03-15", "2024-03-15", 90)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), r.From)
	assert.Equal(t, time.Date(2024, 3, 15, 23, 59, 59, 0, time.UTC), r.To)
}

func TestParseDateRange_Inverted(t *testing.T) {
	_, err := ParseDateRange("2024-02-01", "2024-01-01", 90)
	assert.Error(t, err)
}

func TestParseDateRange_TooWide(t *testing.T) {
	// 2024-01-01 到 2024-04-15 跨度 105 天，超过 90 天上限
	_, err := ParseDateRange("2024-01-01", "2024-04-15", 90)
	assert.Error(t, err)

	// 恰好等于上限则通过
	_, err = ParseDateRange("2024-01-01", "2024-03-31", 90)
	assert.NoError(t, err)
}

func TestParseDateRange_MaxDaysInjected(t *testing.T) {
	// 上限由调用方注入，换一个上限行为随之变化
	_, err := ParseDateRange("2024-01-01", "2024-01-10", 5)
	assert.Error(t, err)

	_, err = ParseDateRange("2024-01-01", "2024-01-10", 30)
	assert.NoError(t, err)
}

func TestParseDateRange_RFC3339(t *testing.T) {
	r, err := ParseDateRange("2024-01-01T08:30:00Z", "2024-01-02T10:00:00Z", 90)
	require.NoError(t, err)
	// 归一化到日历天
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), r.From)
	assert.Equal(t, time.Date(2024, 1, 2, 23, 59, 59, 0, time.UTC), r.To)
}

func TestParseDateRange_Malformed(t *testing.T) {
	_, err := ParseDateRange("not-a-date", "2024-01-31", 90)
	assert.Error(t, err)

	_, err = ParseDateRange("2024-01-01", "31/01/2024", 90)
	assert.Error(t, err)
}
