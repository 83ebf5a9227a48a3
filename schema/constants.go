package schema

// Custom string types for type safety.
type (
	// Corner represents the side of the cage a fighter is announced from.
	Corner string

	// Outcome represents the official winner field of a result.
	Outcome string

	// VictoryMethod represents how a bout was won.
	VictoryMethod string

	// PickStatus represents the lifecycle state of a pick.
	PickStatus string

	// CardPosition represents where a bout sits on the event card.
	CardPosition string

	// Category represents a leaderboard tab.
	Category string

	// RankMetric represents the metric used to order standings.
	RankMetric string

	// OutputMode represents the format of the output.
	OutputMode string

	// DatabaseBackend represents the database backend for snapshot storage.
	DatabaseBackend string
)

// All corners supported.
const (
	RedCorner  Corner = "red"
	BlueCorner Corner = "blue"
)

// All result outcomes supported. Only red and blue are scoreable.
const (
	RedWins   Outcome = "red"
	BlueWins  Outcome = "blue"
	Draw      Outcome = "draw"
	NoContest Outcome = "nc"
)

// All victory methods supported. Values match the wire format of the picks API.
const (
	Decision   VictoryMethod = "DEC"
	KnockOut   VictoryMethod = "KO/TKO"
	Submission VictoryMethod = "SUB"
)

// All pick statuses supported.
const (
	PendingStatus   PickStatus = "pending"
	CorrectStatus   PickStatus = "correct"
	IncorrectStatus PickStatus = "incorrect"
	VoidStatus      PickStatus = "void"
)

// All card positions supported.
const (
	MainEvent    CardPosition = "main-event"
	CoMainEvent  CardPosition = "co-main"
	MainCard     CardPosition = "main-card"
	Prelims      CardPosition = "prelims"
	EarlyPrelims CardPosition = "early-prelims"
)

// All leaderboard categories supported.
const (
	GlobalCategory       Category = "global" // default
	MainEventsCategory   Category = "main-events"
	MainCardCategory     Category = "main-card"
	PrelimsCategory      Category = "prelims"
	EarlyPrelimsCategory Category = "early-prelims"
)

// All rank metrics supported.
const (
	TotalPointsMetric  RankMetric = "total_points" // default
	AccuracyMetric     RankMetric = "accuracy"
	PicksCorrectMetric RankMetric = "picks_correct"
	PerfectPicksMetric RankMetric = "perfect_picks"
	PicksTotalMetric   RankMetric = "picks_total"
)

// All output modes supported.
const (
	CSVOut     OutputMode = "csv"
	TextOut    OutputMode = "text" // default
	JSONOut    OutputMode = "json"
	ParquetOut OutputMode = "parquet"
)

// All snapshot backends supported.
const (
	SQLiteBackend     DatabaseBackend = "sqlite" // default
	MySQLBackend      DatabaseBackend = "mysql"
	PostgreSQLBackend DatabaseBackend = "postgresql"
	NoneBackend       DatabaseBackend = "none"
)

// Point values awarded by the scoring rule.
const (
	NoPoints      = 0
	FighterPoints = 1
	MethodPoints  = 2
	MaxPoints     = 3
)

// MaxRound is the last round of a five-round bout.
const MaxRound Round = 5

// AllVictoryMethods returns a list of all supported victory methods.
var AllVictoryMethods = []VictoryMethod{Decision, KnockOut, Submission}

// AllRankMetrics returns a list of all supported rank metrics.
var AllRankMetrics = []RankMetric{TotalPointsMetric, AccuracyMetric, PicksCorrectMetric, PerfectPicksMetric, PicksTotalMetric}

// ValidCorners lists all valid pick corners.
var ValidCorners = map[Corner]struct{}{
	RedCorner:  {},
	BlueCorner: {},
}

// ValidOutcomes lists all valid result outcomes.
var ValidOutcomes = map[Outcome]struct{}{
	RedWins:   {},
	BlueWins:  {},
	Draw:      {},
	NoContest: {},
}

// ValidCardPositions lists all valid card positions.
var ValidCardPositions = map[CardPosition]struct{}{
	MainEvent:    {},
	CoMainEvent:  {},
	MainCard:     {},
	Prelims:      {},
	EarlyPrelims: {},
}

// ValidCategories lists all valid leaderboard categories.
var ValidCategories = map[Category]struct{}{
	GlobalCategory:       {},
	MainEventsCategory:   {},
	MainCardCategory:     {},
	PrelimsCategory:      {},
	EarlyPrelimsCategory: {},
}

// ValidRankMetrics lists all valid rank metrics.
var ValidRankMetrics = map[RankMetric]struct{}{
	TotalPointsMetric:  {},
	AccuracyMetric:     {},
	PicksCorrectMetric: {},
	PerfectPicksMetric: {},
	PicksTotalMetric:   {},
}

// ValidOutputModes lists all valid output modes.
var ValidOutputModes = map[OutputMode]struct{}{
	CSVOut:     {},
	TextOut:    {},
	JSONOut:    {},
	ParquetOut: {},
}

// ValidDatabaseBackends lists all valid snapshot backends.
var ValidDatabaseBackends = map[DatabaseBackend]struct{}{
	SQLiteBackend:     {},
	MySQLBackend:      {},
	PostgreSQLBackend: {},
	NoneBackend:       {},
}
