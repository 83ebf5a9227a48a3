// Package schema has the models, enums and errors shared by every part of pickscore.
package schema

import (
	"errors"
	"fmt"
	"time"
)

// Errors returned when a prediction or result cannot be built.
var (
	ErrIncompletePick = errors.New("pick requires a fighter and a method")
	ErrInvalidRound   = errors.New("round must be between 1 and 5")
	ErrInvalidResult  = errors.New("result requires a winner and a method")
)

// Round is a bout round. The zero value means no round was given.
type Round uint8

// Valid reports whether the round is absent or within the five-round limit.
func (r Round) Valid() bool {
	return r <= MaxRound
}

// Prediction is a user's pick for a single bout.
// Round is only meaningful when Method is not Decision.
type Prediction struct {
	Fighter Corner        `json:"fighter"`
	Method  VictoryMethod `json:"method"`
	Round   Round         `json:"round,omitempty"`
}

// NewPrediction validates and normalizes a pick. A round on a decision pick
// is dropped rather than rejected.
func NewPrediction(fighter Corner, method VictoryMethod, round Round) (Prediction, error) {
	if _, ok := ValidCorners[fighter]; !ok {
		return Prediction{}, fmt.Errorf("%w: invalid fighter %q", ErrIncompletePick, fighter)
	}
	if !method.Valid() {
		return Prediction{}, fmt.Errorf("%w: invalid method %q", ErrIncompletePick, method)
	}
	if !round.Valid() {
		return Prediction{}, fmt.Errorf("%w: got %d", ErrInvalidRound, round)
	}
	if method == Decision {
		round = 0
	}
	return Prediction{Fighter: fighter, Method: method, Round: round}, nil
}

// Result is the official outcome of a bout.
type Result struct {
	Winner Outcome       `json:"winner"`
	Method VictoryMethod `json:"method"`
	Round  Round         `json:"round,omitempty"`
}

// NewResult validates and normalizes an official result. Draws and no
// contests carry no method requirement.
func NewResult(winner Outcome, method VictoryMethod, round Round) (Result, error) {
	if _, ok := ValidOutcomes[winner]; !ok {
		return Result{}, fmt.Errorf("%w: invalid winner %q", ErrInvalidResult, winner)
	}
	if winner == Draw || winner == NoContest {
		return Result{Winner: winner, Method: method}, nil
	}
	if !method.Valid() {
		return Result{}, fmt.Errorf("%w: invalid method %q", ErrInvalidResult, method)
	}
	if !round.Valid() {
		return Result{}, fmt.Errorf("%w: got %d", ErrInvalidRound, round)
	}
	if method == Decision {
		round = 0
	}
	return Result{Winner: winner, Method: method, Round: round}, nil
}

// Decided reports whether the result names a winning corner.
func (r Result) Decided() bool {
	return r.Winner == RedWins || r.Winner == BlueWins
}

// Breakdown explains which parts of a pick matched. It never changes the points.
type Breakdown struct {
	FighterCorrect bool `json:"fighter_correct"`
	MethodCorrect  bool `json:"method_correct"`
	RoundCorrect   bool `json:"round_correct"`
}

// ScoredPick is the output of scoring a prediction against a result.
type ScoredPick struct {
	Points    int       `json:"points"`
	Breakdown Breakdown `json:"breakdown"`
}

// Perfect reports whether the pick earned the maximum points.
func (s ScoredPick) Perfect() bool {
	return s.Points == MaxPoints
}

// UserRef carries identity and display fields. None of them are interpreted.
type UserRef struct {
	ID          string `json:"user_id"`
	DisplayName string `json:"username"`
	AvatarRef   string `json:"avatar_url,omitempty"`
}

// BoutMeta describes a bout for scope filtering only.
type BoutMeta struct {
	BoutID      int64        `json:"bout_id"`
	EventID     int64        `json:"event_id"`
	EventName   string       `json:"event_name,omitempty"`
	RedFighter  string       `json:"red_fighter,omitempty"`
	BlueFighter string       `json:"blue_fighter,omitempty"`
	WeightClass string       `json:"weight_class,omitempty"`
	Position    CardPosition `json:"card_position,omitempty"`
	TitleFight  bool         `json:"is_title_fight"`
	Date        time.Time    `json:"date"`
}

// PickEntry is one user's pick on one bout. A nil Result means the bout has
// not been decided yet.
type PickEntry struct {
	User      UserRef     `json:"user"`
	Bout      BoutMeta    `json:"bout"`
	Pick      Prediction  `json:"pick"`
	Result    *Result     `json:"result,omitempty"`
	Scored    *ScoredPick `json:"scored,omitempty"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}

// Standing is the aggregate of one user's picks within a leaderboard scope.
type Standing struct {
	Rank         int     `json:"rank"`
	User         UserRef `json:"user"`
	TotalPoints  int     `json:"total_points"`
	PicksTotal   int     `json:"picks_total"`
	PicksCorrect int     `json:"picks_correct"`
	PicksPending int     `json:"picks_pending"`
	PerfectPicks int     `json:"perfect_picks"`
	Accuracy     float64 `json:"accuracy"`
}

// Decided returns the number of picks that have a result.
func (s Standing) Decided() int {
	return s.PicksTotal - s.PicksPending
}
