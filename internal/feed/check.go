package feed

import (
	"fmt"
	"strings"

	"github.com/huangsam/pickscore/schema"
)

type userBout struct {
	userID string
	boutID int64
}

// Check scans the dataset for integrity problems without stopping at the
// first one. Problems are reported in dataset order: users, events, bouts,
// results and then picks.
func (d *Dataset) Check() []schema.Issue {
	var issues []schema.Issue
	add := func(is schema.Issue) { issues = append(issues, is) }

	users := make(map[string]struct{}, len(d.Users))
	for _, u := range d.Users {
		id := normalizeUserID(u.ID)
		if _, dup := users[id]; dup {
			add(schema.Issue{Kind: schema.DuplicateUserIssue, UserID: id, Message: fmt.Sprintf("user %s is listed twice", id)})
		}
		users[id] = struct{}{}
	}

	events := make(map[int64]struct{}, len(d.Events))
	for _, e := range d.Events {
		if _, dup := events[e.ID]; dup {
			add(schema.Issue{Kind: schema.DuplicateEventIssue, Message: fmt.Sprintf("event %d is listed twice", e.ID)})
		}
		events[e.ID] = struct{}{}
	}

	bouts := make(map[int64]BoutRecord, len(d.Bouts))
	for _, b := range d.Bouts {
		if _, dup := bouts[b.ID]; dup {
			add(schema.Issue{Kind: schema.DuplicateBoutIssue, BoutID: b.ID, Message: fmt.Sprintf("bout %d is listed twice", b.ID)})
		}
		bouts[b.ID] = b
		if b.EventID != 0 {
			if _, ok := events[b.EventID]; !ok {
				add(schema.Issue{Kind: schema.UnknownEventIssue, BoutID: b.ID, Message: fmt.Sprintf("bout %d references unknown event %d", b.ID, b.EventID)})
			}
		}
		if b.RoundsScheduled < 0 || b.RoundsScheduled > int(schema.MaxRound) {
			add(schema.Issue{Kind: schema.InvalidBoutIssue, BoutID: b.ID, Message: fmt.Sprintf("bout %d schedules %d rounds", b.ID, b.RoundsScheduled)})
		}
		if b.CardPosition != "" {
			if _, ok := schema.ValidCardPositions[schema.CardPosition(strings.ToLower(b.CardPosition))]; !ok {
				add(schema.Issue{Kind: schema.InvalidBoutIssue, BoutID: b.ID, Message: fmt.Sprintf("bout %d has invalid card position %q", b.ID, b.CardPosition)})
			}
		}
		if b.Result != nil {
			issues = append(issues, checkResult(b, *b.Result)...)
		}
	}

	for _, rr := range d.Results {
		b, ok := bouts[rr.BoutID]
		if !ok {
			add(schema.Issue{Kind: schema.UnknownBoutIssue, BoutID: rr.BoutID, Message: fmt.Sprintf("result references unknown bout %d", rr.BoutID)})
			continue
		}
		issues = append(issues, checkResult(b, rr)...)
	}

	seen := make(map[userBout]string, len(d.Picks))
	for i, p := range d.Picks {
		ref := pickRef(i, p)
		userID := normalizeUserID(p.UserID)
		switch {
		case userID == "":
			add(schema.Issue{Kind: schema.MissingUserIDIssue, PickID: ref, BoutID: p.BoutID, Message: fmt.Sprintf("pick %s has no user id", ref)})
		default:
			if _, ok := users[userID]; !ok {
				add(schema.Issue{Kind: schema.UnknownUserIssue, PickID: ref, BoutID: p.BoutID, UserID: userID, Message: fmt.Sprintf("pick %s references unknown user %s", ref, userID)})
			}
			key := userBout{userID: userID, boutID: p.BoutID}
			if first, dup := seen[key]; dup {
				add(schema.Issue{Kind: schema.DuplicatePickIssue, PickID: ref, BoutID: p.BoutID, UserID: userID, Message: fmt.Sprintf("user %s picked bout %d twice (first pick %s)", userID, p.BoutID, first)})
			} else {
				seen[key] = ref
			}
		}

		b, ok := bouts[p.BoutID]
		if !ok {
			add(schema.Issue{Kind: schema.UnknownBoutIssue, PickID: ref, BoutID: p.BoutID, UserID: userID, Message: fmt.Sprintf("pick %s references unknown bout %d", ref, p.BoutID)})
		}
		pred, err := toPrediction(p)
		if err != nil {
			add(schema.Issue{Kind: schema.InvalidPickIssue, PickID: ref, BoutID: p.BoutID, UserID: userID, Message: fmt.Sprintf("pick %s: %v", ref, err)})
			continue
		}
		if ok && overflows(pred.Round, b.RoundsScheduled) {
			add(schema.Issue{
				Kind:    schema.RoundOverflowIssue,
				PickID:  ref,
				BoutID:  p.BoutID,
				UserID:  userID,
				Message: fmt.Sprintf("pick %s names round %d of a %d round bout", ref, pred.Round, b.RoundsScheduled),
			})
		}
	}
	return issues
}

func checkResult(b BoutRecord, rr ResultRecord) []schema.Issue {
	r, err := toResult(rr)
	if err != nil {
		return []schema.Issue{{Kind: schema.InvalidResultIssue, BoutID: b.ID, Message: fmt.Sprintf("bout %d: %v", b.ID, err)}}
	}
	if r != nil && overflows(r.Round, b.RoundsScheduled) {
		return []schema.Issue{{
			Kind:    schema.RoundOverflowIssue,
			BoutID:  b.ID,
			Message: fmt.Sprintf("result of bout %d ends in round %d of %d", b.ID, r.Round, b.RoundsScheduled),
		}}
	}
	return nil
}

// overflows reports whether a round lies past the scheduled distance.
// An unknown schedule never overflows.
func overflows(r schema.Round, scheduled int) bool {
	return scheduled > 0 && int(r) > scheduled
}

func pickRef(i int, p PickRecord) string {
	if p.ID != "" {
		return p.ID
	}
	return fmt.Sprintf("#%d", i+1)
}
