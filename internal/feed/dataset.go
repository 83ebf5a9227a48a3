package feed

// Wire types mirror the JSON returned by the picks API. The same tags are
// used for YAML so hand-written fixtures read naturally.

// Dataset is a complete export of users, events, bouts, results and picks.
type Dataset struct {
	Users   []UserRecord   `json:"users" yaml:"users"`
	Events  []EventRecord  `json:"events" yaml:"events"`
	Bouts   []BoutRecord   `json:"bouts" yaml:"bouts"`
	Results []ResultRecord `json:"results" yaml:"results"`
	Picks   []PickRecord   `json:"picks" yaml:"picks"`
}

// UserRecord is a user profile.
type UserRecord struct {
	ID             string `json:"id" yaml:"id"`
	Name           string `json:"name" yaml:"name"`
	ProfilePicture string `json:"profile_picture,omitempty" yaml:"profile_picture,omitempty"`
}

// EventRecord is a fight card.
type EventRecord struct {
	ID     int64  `json:"id" yaml:"id"`
	Name   string `json:"name" yaml:"name"`
	Date   string `json:"date" yaml:"date"`
	Status string `json:"status,omitempty" yaml:"status,omitempty"`
}

// CornerRecord names the fighter in one corner.
type CornerRecord struct {
	FighterName string `json:"fighter_name" yaml:"fighter_name"`
}

// FightersRecord holds both corners of a bout.
type FightersRecord struct {
	Red  CornerRecord `json:"red" yaml:"red"`
	Blue CornerRecord `json:"blue" yaml:"blue"`
}

// BoutRecord is a single bout on an event card.
type BoutRecord struct {
	ID              int64          `json:"id" yaml:"id"`
	EventID         int64          `json:"event_id" yaml:"event_id"`
	WeightClass     string         `json:"weight_class" yaml:"weight_class"`
	RoundsScheduled int            `json:"rounds_scheduled,omitempty" yaml:"rounds_scheduled,omitempty"`
	IsTitleFight    bool           `json:"is_title_fight" yaml:"is_title_fight"`
	CardPosition    string         `json:"card_position,omitempty" yaml:"card_position,omitempty"`
	Status          string         `json:"status,omitempty" yaml:"status,omitempty"`
	Fighters        FightersRecord `json:"fighters" yaml:"fighters"`
	Result          *ResultRecord  `json:"result,omitempty" yaml:"result,omitempty"`
}

// ResultRecord is the official outcome of a bout. BoutID is only read from
// the top-level results list; inline results take it from their bout.
type ResultRecord struct {
	BoutID int64  `json:"bout_id,omitempty" yaml:"bout_id,omitempty"`
	Winner string `json:"winner" yaml:"winner"`
	Method string `json:"method" yaml:"method"`
	Round  *int   `json:"round,omitempty" yaml:"round,omitempty"`
}

// PickRecord is one user's prediction for one bout.
type PickRecord struct {
	ID           string `json:"id,omitempty" yaml:"id,omitempty"`
	UserID       string `json:"user_id" yaml:"user_id"`
	BoutID       int64  `json:"bout_id" yaml:"bout_id"`
	PickedCorner string `json:"picked_corner" yaml:"picked_corner"`
	PickedMethod string `json:"picked_method" yaml:"picked_method"`
	PickedRound  *int   `json:"picked_round,omitempty" yaml:"picked_round,omitempty"`
	CreatedAt    string `json:"created_at,omitempty" yaml:"created_at,omitempty"`
	UpdatedAt    string `json:"updated_at,omitempty" yaml:"updated_at,omitempty"`
}
