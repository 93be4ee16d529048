package gendata

// Default generation parameters shared by DefaultConfig and the CLI flags.
const (
	defaultRows         = 5000
	defaultOutputFile   = "data/raw/athlete_events.csv"
	defaultSeed         = 1
	defaultMedalRate    = 0.15
	defaultUnmappedRate = 0.02
	defaultSummerShare  = 0.8
)

// Games year grids. Winter editions share the summer four-year grid through
// 1992 and move to the offset grid from 1994 on.
const (
	firstSummerYear       = 1896
	lastSummerYear        = 2016
	firstWinterYear       = 1924
	lastSharedWinterYear  = 1992
	firstOffsetWinterYear = 1994
	lastWinterYear        = 2014
	olympiadStride        = 4
)

// Athlete attribute ranges for the physical columns.
const (
	minAge      = 16
	ageRange    = 24
	minHeight   = 150
	heightRange = 55
	minWeight   = 45
	weightRange = 60
)
