// Package levels maps cumulative XP to player levels.
package levels

// RequiredXP returns the cumulative XP needed to reach level.
// Levels below 2 need nothing.
func RequiredXP(level int) int64 {
	l := int64(level)
	switch {
	case level <= 1:
		return 0
	case level <= 4:
		return (l - 1) * 100
	case level <= 9:
		return 300 + (l-4)*200
	case level <= 19:
		return 1300 + (l-9)*500
	case level <= 34:
		return 6300 + (l-19)*1000
	case level <= 49:
		return 21300 + (l-34)*2000
	default:
		return 51300 + (l-49)*5000
	}
}

// Level returns the highest level whose requirement xp satisfies.
// Negative xp is treated as zero.
func Level(xp int64) int {
	level := 1
	for RequiredXP(level+1) <= xp {
		level++
	}
	return level
}

type Progress struct {
	Level        int
	LevelStartXP int64
	NextLevelXP  int64
	// Pct is the share of the current level already earned, 0..1.
	Pct float64
}

func ProgressOf(xp int64) Progress {
	level := Level(xp)
	start := RequiredXP(level)
	next := RequiredXP(level + 1)
	pct := 0.0
	if span := next - start; span > 0 && xp > start {
		pct = float64(xp-start) / float64(span)
	}
	return Progress{
		Level:        level,
		LevelStartXP: start,
		NextLevelXP:  next,
		Pct:          pct,
	}
}
