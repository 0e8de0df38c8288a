package rain

// Style is the role a cell plays in a stream. Backends map roles to colors.
type Style uint8

const (
	StyleTrail Style = iota
	StyleTrailBold
	StyleLeader
)

func (s Style) String() string {
	switch s {
	case StyleLeader:
		return "leader"
	case StyleTrailBold:
		return "trail-bold"
	default:
		return "trail"
	}
}

// Surface is the terminal collaborator streams render through.
// Writes outside the visible area are dropped by the implementation.
type Surface interface {
	SetCell(x, y int, r rune, style Style)
	Restyle(x, y int, style Style)
	ClearCell(x, y int)
}

// Params holds the tunables of the effect.
type Params struct {
	// SpawnDivisor sets spawn attempts per frame to ceil(width / SpawnDivisor).
	SpawnDivisor int
	// TrailMin and TrailMax bound the trail length, [TrailMin, TrailMax).
	TrailMin int
	TrailMax int
	// TrailFromHeight draws trail length from [0, height) instead.
	TrailFromHeight bool
	// BoldChance is the probability the cell behind the leader is bolded.
	BoldChance float64
	// Bold enables the bold flicker behind the leader.
	Bold bool
}

const (
	DefaultSpawnDivisor = 40
	DefaultTrailMin     = 4
	DefaultTrailMax     = 25
	DefaultBoldChance   = 60.0 / 256.0
)

func DefaultParams() Params {
	return Params{
		SpawnDivisor: DefaultSpawnDivisor,
		TrailMin:     DefaultTrailMin,
		TrailMax:     DefaultTrailMax,
		BoldChance:   DefaultBoldChance,
		Bold:         true,
	}
}

// Size is a terminal geometry in cells.
type Size struct {
	Width  int
	Height int
}

// FrameStats summarizes one frame.
type FrameStats struct {
	Attempts int
	Spawned  int
	Culled   int
	Live     int
}
