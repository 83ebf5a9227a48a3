package schema

import (
	"fmt"
	"strings"
)

// Scope restricts which picks contribute to a leaderboard.
// Zero values mean "no restriction" for every field.
type Scope struct {
	Category        Category      `json:"category,omitempty"`
	Method          VictoryMethod `json:"method,omitempty"`
	Round           Round         `json:"round,omitempty"`
	WeightClass     string        `json:"weight_class,omitempty"`
	Year            int           `json:"year,omitempty"`
	EventID         int64         `json:"event_id,omitempty"`
	TitleFightsOnly bool          `json:"title_fights_only,omitempty"`
}

// Matches reports whether the entry falls inside the scope.
// Method and round filters apply to the official result, so a pending entry
// never satisfies them.
func (s Scope) Matches(e PickEntry) bool {
	if !s.Category.Contains(e.Bout.Position) {
		return false
	}
	if s.WeightClass != "" && !strings.EqualFold(s.WeightClass, e.Bout.WeightClass) {
		return false
	}
	if s.Year != 0 && (e.Bout.Date.IsZero() || e.Bout.Date.Year() != s.Year) {
		return false
	}
	if s.EventID != 0 && e.Bout.EventID != s.EventID {
		return false
	}
	if s.TitleFightsOnly && !e.Bout.TitleFight {
		return false
	}
	if s.Method != "" && (e.Result == nil || e.Result.Method != s.Method) {
		return false
	}
	if s.Round != 0 && (e.Result == nil || e.Result.Round != s.Round) {
		return false
	}
	return true
}

// Label describes the scope for table headers and snapshot records.
func (s Scope) Label() string {
	cat := s.Category
	if cat == "" {
		cat = GlobalCategory
	}
	parts := []string{string(cat)}
	if s.Method != "" {
		parts = append(parts, "method="+string(s.Method))
	}
	if s.Round != 0 {
		parts = append(parts, fmt.Sprintf("round=%d", s.Round))
	}
	if s.WeightClass != "" {
		parts = append(parts, "weight="+s.WeightClass)
	}
	if s.Year != 0 {
		parts = append(parts, fmt.Sprintf("year=%d", s.Year))
	}
	if s.EventID != 0 {
		parts = append(parts, fmt.Sprintf("event=%d", s.EventID))
	}
	if s.TitleFightsOnly {
		parts = append(parts, "titles")
	}
	return strings.Join(parts, " ")
}

// Contains reports whether a bout at the given position belongs to the category.
// The main card tab covers every main card bout including the two headliners.
func (c Category) Contains(p CardPosition) bool {
	switch c {
	case "", GlobalCategory:
		return true
	case MainEventsCategory:
		return p == MainEvent
	case MainCardCategory:
		return p == MainEvent || p == CoMainEvent || p == MainCard
	case PrelimsCategory:
		return p == Prelims
	case EarlyPrelimsCategory:
		return p == EarlyPrelims
	}
	return false
}
