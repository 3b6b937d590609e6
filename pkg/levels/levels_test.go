package levels

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRequiredXP(t *testing.T) {
	tests := []struct {
		level    int
		expected int64
	}{
		{level: 0, expected: 0},
		{level: 1, expected: 0},
		{level: 2, expected: 100},
		{level: 4, expected: 300},
		{level: 5, expected: 500},
		{level: 9, expected: 1300},
		{level: 10, expected: 1800},
		{level: 19, expected: 6300},
		{level: 20, expected: 7300},
		{level: 34, expected: 21300},
		{level: 35, expected: 23300},
		{level: 49, expected: 51300},
		{level: 50, expected: 56300},
		{level: 60, expected: 106300},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, RequiredXP(tt.level), "level %d", tt.level)
	}
}

func TestLevel(t *testing.T) {
	tests := []struct {
		name     string
		xp       int64
		expected int
	}{
		{name: "zero xp", xp: 0, expected: 1},
		{name: "negative xp", xp: -50, expected: 1},
		{name: "just below level 2", xp: 99, expected: 1},
		{name: "exactly level 2", xp: 100, expected: 2},
		{name: "250 xp", xp: 250, expected: 3},
		{name: "exactly 300", xp: 300, expected: 4},
		{name: "330 xp", xp: 330, expected: 4},
		{name: "exactly 500", xp: 500, expected: 5},
		{name: "exactly 1300", xp: 1300, expected: 9},
		{name: "exactly 1800", xp: 1800, expected: 10},
		{name: "tier 20 boundary", xp: 7300, expected: 20},
		{name: "tier 35 boundary", xp: 23300, expected: 35},
		{name: "tier 50 boundary", xp: 56300, expected: 50},
		{name: "no upper bound", xp: 51300 + 100*5000, expected: 149},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Level(tt.xp))
		})
	}
}

func TestLevel_MonotonicAndConsistent(t *testing.T) {
	prev := Level(0)
	for xp := int64(0); xp <= 60000; xp += 7 {
		lvl := Level(xp)
		assert.GreaterOrEqual(t, lvl, 1)
		assert.GreaterOrEqual(t, lvl, prev, "xp %d", xp)
		assert.LessOrEqual(t, RequiredXP(lvl), xp)
		assert.Greater(t, RequiredXP(lvl+1), xp)
		prev = lvl
	}
}

func TestProgressOf(t *testing.T) {
	p := ProgressOf(400)

	assert.Equal(t, 4, p.Level)
	assert.Equal(t, int64(300), p.LevelStartXP)
	assert.Equal(t, int64(500), p.NextLevelXP)
	assert.InDelta(t, 0.5, p.Pct, 1e-9)

	assert.Equal(t, 0.0, ProgressOf(0).Pct)
}
