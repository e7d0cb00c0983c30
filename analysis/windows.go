package analysis

// System identifies the scoring ruleset whose hit windows and accuracy
// weights apply.
type System int

const (
	ManiaV1 System = iota
	ManiaV2
	StepMania
)

func (s System) String() string {
	switch s {
	case ManiaV1:
		return "mania-v1"
	case ManiaV2:
		return "mania-v2"
	case StepMania:
		return "stepmania"
	}
	panic("unexpected")
}

// Profile is one row of the hit window registry: the timing thresholds
// of a system at one difficulty level, narrowest first. Build profiles
// with NewProfile; a zero Profile has no usable windows.
type Profile struct {
	System  System
	Level   int
	windows [5]float64
}

// NewProfile returns the registry row for a system at the given level,
// clamping the level into the system's range. For mania the level is
// the integer OD 0..10, for StepMania the judge 1..9.
func NewProfile(system System, level int) Profile {
	switch system {
	case ManiaV1, ManiaV2:
		od := float64(clampInt(level, 0, 10))
		return Profile{System: system, Level: int(od), windows: [5]float64{
			16,
			64 - 3*od,
			97 - 3*od,
			127 - 3*od,
			151 - 3*od,
		}}
	case StepMania:
		j := clampInt(level, 1, 9)
		return Profile{System: system, Level: j, windows: stepmaniaWindows[j-1]}
	}
	panic("unexpected")
}

// Thresholds returns the five timing thresholds in ms, Exact..Poor.
// Anything past the last one is a Miss.
func (p Profile) Thresholds() [5]float64 { return p.windows }

// MissWindow is the widest threshold, the edge of the scored range.
func (p Profile) MissWindow() float64 { return p.windows[4] }

// Judge scales from the classic metrics applied to the base windows
// (22.5, 45, 90, 135, 180), truncated to whole ms. Judge 9 is Justice.
var stepmaniaWindows = [9][5]float64{
	{33, 67, 135, 202, 270},
	{29, 59, 119, 179, 239},
	{26, 52, 104, 156, 208},
	{22, 45, 90, 135, 180},
	{18, 37, 75, 113, 151},
	{14, 29, 59, 89, 118},
	{11, 22, 45, 67, 90},
	{7, 14, 29, 44, 59},
	{4, 9, 18, 27, 36},
}
