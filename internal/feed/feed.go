// Package feed loads pick datasets from disk and joins them into scoreable entries.
package feed

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/huangsam/pickscore/internal/contract"
	"github.com/huangsam/pickscore/schema"
	"gopkg.in/yaml.v3"
)

// Format is the encoding of a dataset file.
type Format string

// All dataset formats supported.
const (
	JSONFormat Format = "json"
	YAMLFormat Format = "yaml"
)

// ErrUnsupportedFormat is returned for files that are neither JSON nor YAML.
var ErrUnsupportedFormat = errors.New("unsupported dataset format")

// dateLayouts are tried in order when parsing event dates and pick timestamps.
var dateLayouts = []string{time.RFC3339Nano, time.RFC3339, "2006-01-02T15:04:05", time.DateOnly}

// FileSource reads a dataset from a local file.
type FileSource struct {
	Path string
}

var _ contract.DataSource = &FileSource{} // Compile-time check

// NewFileSource creates a source for the dataset at path.
func NewFileSource(path string) *FileSource {
	return &FileSource{Path: path}
}

// Load implements the DataSource interface.
func (s *FileSource) Load(ctx context.Context) ([]schema.PickEntry, error) {
	ds, err := s.Dataset(ctx)
	if err != nil {
		return nil, err
	}
	return ds.Entries()
}

// Dataset reads and decodes the file without joining it.
func (s *FileSource) Dataset(ctx context.Context) (*Dataset, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	format, err := DetectFormat(s.Path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to read dataset: %w", err)
	}
	return Decode(data, format)
}

// DetectFormat picks the decoder from the file extension.
func DetectFormat(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return JSONFormat, nil
	case ".yaml", ".yml":
		return YAMLFormat, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, path)
}

// Decode parses raw dataset bytes. Unknown JSON fields are rejected so typos
// in hand-written fixtures surface early.
func Decode(data []byte, format Format) (*Dataset, error) {
	ds := &Dataset{}
	switch format {
	case JSONFormat:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(ds); err != nil {
			return nil, fmt.Errorf("failed to decode json dataset: %w", err)
		}
	case YAMLFormat:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(ds); err != nil {
			return nil, fmt.Errorf("failed to decode yaml dataset: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	return ds, nil
}

// Entries joins picks with their bouts, users and results.
// A pick for an unknown user keeps a blank identity.
func (d *Dataset) Entries() ([]schema.PickEntry, error) {
	users := make(map[string]UserRecord, len(d.Users))
	for _, u := range d.Users {
		users[normalizeUserID(u.ID)] = u
	}
	events := make(map[int64]EventRecord, len(d.Events))
	for _, e := range d.Events {
		events[e.ID] = e
	}
	bouts := make(map[int64]schema.BoutMeta, len(d.Bouts))
	results := make(map[int64]*schema.Result)
	for _, b := range d.Bouts {
		meta, err := boutMeta(b, events)
		if err != nil {
			return nil, err
		}
		bouts[b.ID] = meta
		if b.Result != nil {
			r, err := toResult(*b.Result)
			if err != nil {
				return nil, fmt.Errorf("bout %d: %w", b.ID, err)
			}
			results[b.ID] = r
		}
	}
	for _, rr := range d.Results {
		if _, ok := bouts[rr.BoutID]; !ok {
			return nil, fmt.Errorf("result references unknown bout %d", rr.BoutID)
		}
		r, err := toResult(rr)
		if err != nil {
			return nil, fmt.Errorf("bout %d: %w", rr.BoutID, err)
		}
		results[rr.BoutID] = r
	}

	entries := make([]schema.PickEntry, 0, len(d.Picks))
	for i, p := range d.Picks {
		meta, ok := bouts[p.BoutID]
		if !ok {
			return nil, fmt.Errorf("pick %d references unknown bout %d", i, p.BoutID)
		}
		pred, err := toPrediction(p)
		if err != nil {
			return nil, fmt.Errorf("pick %d: %w", i, err)
		}
		entry := schema.PickEntry{
			Bout:      meta,
			Pick:      pred,
			Result:    results[p.BoutID],
			CreatedAt: parseDate(p.CreatedAt),
			UpdatedAt: parseDate(p.UpdatedAt),
		}
		id := normalizeUserID(p.UserID)
		if u, ok := users[id]; ok && id != "" {
			entry.User = schema.UserRef{ID: id, DisplayName: u.Name, AvatarRef: u.ProfilePicture}
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// normalizeUserID strips the padding some exports leave around ids.
func normalizeUserID(id string) string {
	return strings.TrimSpace(id)
}

func boutMeta(b BoutRecord, events map[int64]EventRecord) (schema.BoutMeta, error) {
	meta := schema.BoutMeta{
		BoutID:      b.ID,
		EventID:     b.EventID,
		WeightClass: b.WeightClass,
		TitleFight:  b.IsTitleFight,
		RedFighter:  b.Fighters.Red.FighterName,
		BlueFighter: b.Fighters.Blue.FighterName,
	}
	if e, ok := events[b.EventID]; ok {
		meta.EventName = e.Name
		meta.Date = parseDate(e.Date)
	}
	if b.CardPosition != "" {
		pos := schema.CardPosition(strings.ToLower(b.CardPosition))
		if _, ok := schema.ValidCardPositions[pos]; !ok {
			return meta, fmt.Errorf("bout %d: invalid card position %q", b.ID, b.CardPosition)
		}
		meta.Position = pos
	}
	return meta, nil
}

func toPrediction(p PickRecord) (schema.Prediction, error) {
	corner, err := schema.ParseCorner(p.PickedCorner)
	if err != nil {
		return schema.Prediction{}, fmt.Errorf("%w: %w", schema.ErrIncompletePick, err)
	}
	method, err := schema.ParseVictoryMethod(p.PickedMethod)
	if err != nil {
		return schema.Prediction{}, fmt.Errorf("%w: %w", schema.ErrIncompletePick, err)
	}
	round, err := toRound(p.PickedRound)
	if err != nil {
		return schema.Prediction{}, err
	}
	return schema.NewPrediction(corner, method, round)
}

// toResult returns nil for a result with no winner yet.
func toResult(r ResultRecord) (*schema.Result, error) {
	if strings.TrimSpace(r.Winner) == "" {
		return nil, nil
	}
	winner, err := schema.ParseOutcome(r.Winner)
	if err != nil {
		return nil, err
	}
	var method schema.VictoryMethod
	if strings.TrimSpace(r.Method) != "" {
		if method, err = schema.ParseVictoryMethod(r.Method); err != nil {
			return nil, err
		}
	}
	round, err := toRound(r.Round)
	if err != nil {
		return nil, err
	}
	res, err := schema.NewResult(winner, method, round)
	if err != nil {
		return nil, err
	}
	return &res, nil
}

func toRound(r *int) (schema.Round, error) {
	if r == nil || *r == 0 {
		return 0, nil
	}
	if *r < 1 || *r > int(schema.MaxRound) {
		return 0, fmt.Errorf("%w: got %d", schema.ErrInvalidRound, *r)
	}
	return schema.Round(*r), nil
}

func parseDate(s string) time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC()
		}
	}
	return time.Time{}
}
