package schema

import (
	"fmt"
	"strconv"
	"strings"
)

// Valid reports whether the method is one of the three known variants.
func (m VictoryMethod) Valid() bool {
	switch m {
	case Decision, KnockOut, Submission:
		return true
	}
	return false
}

// VictoryMethodNames returns the wire values of AllVictoryMethods.
func VictoryMethodNames() []string {
	names := make([]string, len(AllVictoryMethods))
	for i, m := range AllVictoryMethods {
		names[i] = string(m)
	}
	return names
}

// Label returns a human-friendly name for the method.
func (m VictoryMethod) Label() string {
	switch m {
	case Decision:
		return "Decision"
	case KnockOut:
		return "KO/TKO"
	case Submission:
		return "Submission"
	default:
		return string(m)
	}
}

// ParseVictoryMethod accepts the wire values plus the long and shorthand
// spellings seen in result feeds.
func ParseVictoryMethod(s string) (VictoryMethod, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "DEC", "DECISION":
		return Decision, nil
	case "KO/TKO", "KO_TKO", "KO", "TKO":
		return KnockOut, nil
	case "SUB", "SUBMISSION":
		return Submission, nil
	}
	return "", fmt.Errorf("invalid victory method %q", s)
}

// ParseCorner accepts red or blue in any case.
func ParseCorner(s string) (Corner, error) {
	c := Corner(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := ValidCorners[c]; !ok {
		return "", fmt.Errorf("invalid corner %q", s)
	}
	return c, nil
}

// ParseOutcome accepts a corner, draw or nc. "no contest" is also understood.
func ParseOutcome(s string) (Outcome, error) {
	norm := strings.ToLower(strings.TrimSpace(s))
	if norm == "no contest" || norm == "no_contest" {
		norm = string(NoContest)
	}
	o := Outcome(norm)
	if _, ok := ValidOutcomes[o]; !ok {
		return "", fmt.Errorf("invalid outcome %q", s)
	}
	return o, nil
}

// FormatThousands renders an integer with comma separators, e.g. 12,345.
func FormatThousands(n int) string {
	s := strconv.Itoa(n)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	if len(s) <= 3 {
		if neg {
			return "-" + s
		}
		return s
	}
	var b strings.Builder
	head := len(s) % 3
	if head > 0 {
		b.WriteString(s[:head])
	}
	for i := head; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(s[i : i+3])
	}
	if neg {
		return "-" + b.String()
	}
	return b.String()
}

// DisplayNameOrID falls back to the user id when a user has no display name.
func (u UserRef) DisplayNameOrID() string {
	if strings.TrimSpace(u.DisplayName) != "" {
		return u.DisplayName
	}
	return u.ID
}

// String renders a pick compactly, e.g. "red KO/TKO R2" or "blue DEC".
func (p Prediction) String() string {
	return describe(string(p.Fighter), p.Method, p.Round)
}

// String renders a result compactly. Draws and no contests render as the outcome alone.
func (r Result) String() string {
	if !r.Decided() {
		return string(r.Winner)
	}
	return describe(string(r.Winner), r.Method, r.Round)
}

func describe(corner string, m VictoryMethod, r Round) string {
	if m == Decision || r == 0 {
		return fmt.Sprintf("%s %s", corner, m)
	}
	return fmt.Sprintf("%s %s R%d", corner, m, r)
}

// ParsePrediction builds a prediction from loosely typed input such as
// command line flags or tool arguments. A round of 0 means none.
func ParsePrediction(fighter, method string, round int) (Prediction, error) {
	corner, err := ParseCorner(fighter)
	if err != nil {
		return Prediction{}, fmt.Errorf("%w: %w", ErrIncompletePick, err)
	}
	m, err := ParseVictoryMethod(method)
	if err != nil {
		return Prediction{}, fmt.Errorf("%w: %w", ErrIncompletePick, err)
	}
	if round < 0 || round > int(MaxRound) {
		return Prediction{}, fmt.Errorf("%w: got %d", ErrInvalidRound, round)
	}
	return NewPrediction(corner, m, Round(round))
}

// ParseResult builds an official result from loosely typed input. The method
// may be blank for a draw or no contest.
func ParseResult(winner, method string, round int) (Result, error) {
	outcome, err := ParseOutcome(winner)
	if err != nil {
		return Result{}, fmt.Errorf("%w: %w", ErrInvalidResult, err)
	}
	var m VictoryMethod
	if strings.TrimSpace(method) != "" {
		if m, err = ParseVictoryMethod(method); err != nil {
			return Result{}, fmt.Errorf("%w: %w", ErrInvalidResult, err)
		}
	}
	if round < 0 || round > int(MaxRound) {
		return Result{}, fmt.Errorf("%w: got %d", ErrInvalidRound, round)
	}
	return NewResult(outcome, m, Round(round))
}
