package schema

import "time"

// LeaderboardResult is the full output of a leaderboard computation.
type LeaderboardResult struct {
	Scope     Scope      `json:"scope"`
	Metric    RankMetric `json:"metric"`
	Standings []Standing `json:"standings"`
	You       *Standing  `json:"you,omitempty"`
	Total     int        `json:"total_users"`
}

// HistoryRow is one scored pick in a user's history.
type HistoryRow struct {
	BoutID      int64         `json:"bout_id"`
	EventName   string        `json:"event_name"`
	Matchup     string        `json:"matchup,omitempty"`
	Date        time.Time     `json:"date"`
	WeightClass string        `json:"weight_class,omitempty"`
	Position    CardPosition  `json:"card_position,omitempty"`
	Fighter     Corner        `json:"picked_corner"`
	Method      VictoryMethod `json:"picked_method"`
	Round       Round         `json:"picked_round,omitempty"`
	Result      *Result       `json:"result,omitempty"`
	Status      PickStatus    `json:"status"`
	Points      int           `json:"points"`
	Breakdown   *Breakdown    `json:"breakdown,omitempty"`
}

// HistoryResult is the pick history of a single user.
type HistoryResult struct {
	User   UserRef      `json:"user"`
	Rows   []HistoryRow `json:"picks"`
	Points int          `json:"total_points"`
}

// MedalLabel returns a plain label for podium ranks and an empty string otherwise.
func MedalLabel(rank int) string {
	switch rank {
	case 1:
		return "Gold"
	case 2:
		return "Silver"
	case 3:
		return "Bronze"
	default:
		return ""
	}
}

// ScoreReport is the outcome of scoring a single pick against a result.
type ScoreReport struct {
	Pick   Prediction `json:"pick"`
	Result Result     `json:"result"`
	Status PickStatus `json:"status"`
	Points int        `json:"points"`
	// Breakdown is nil for void results.
	Breakdown *Breakdown `json:"breakdown,omitempty"`
}

// IssueKind classifies a dataset integrity problem.
type IssueKind string

// Integrity problems reported by the check command.
const (
	UnknownUserIssue    IssueKind = "unknown_user"
	UnknownBoutIssue    IssueKind = "unknown_bout"
	UnknownEventIssue   IssueKind = "unknown_event"
	DuplicatePickIssue  IssueKind = "duplicate_pick"
	RoundOverflowIssue  IssueKind = "round_beyond_schedule"
	InvalidPickIssue    IssueKind = "invalid_pick"
	InvalidResultIssue  IssueKind = "invalid_result"
	InvalidBoutIssue    IssueKind = "invalid_bout"
	MissingUserIDIssue  IssueKind = "missing_user_id"
	DuplicateBoutIssue  IssueKind = "duplicate_bout"
	DuplicateUserIssue  IssueKind = "duplicate_user"
	DuplicateEventIssue IssueKind = "duplicate_event"
)

// Issue is one integrity problem found in a dataset.
type Issue struct {
	Kind    IssueKind `json:"kind"`
	PickID  string    `json:"pick_id,omitempty"`
	BoutID  int64     `json:"bout_id,omitempty"`
	UserID  string    `json:"user_id,omitempty"`
	Message string    `json:"message"`
}

// PointRule is one row of the scoring table shown by the metrics command.
type PointRule struct {
	Pick   string `json:"pick"`
	Match  string `json:"match"`
	Points int    `json:"points"`
}

// MetricsRenderModel describes the point table and ranking metrics.
type MetricsRenderModel struct {
	Title       string            `json:"title"`
	Description string            `json:"description"`
	Rules       []PointRule       `json:"rules"`
	Metrics     map[string]string `json:"metrics"`
	TieBreaks   map[string]string `json:"tie_breaks"`
}
