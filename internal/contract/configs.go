package contract

import (
	"fmt"
	"maps"
	"path/filepath"
	"strings"
	"time"

	"github.com/huangsam/pickscore/schema"
)

// Default values for configuration.
const (
	DefaultResultLimit = 25
	MaxResultLimit     = 1000
	DefaultPrecision   = 1
	MaxPrecision       = 2
)

// Bounds for the year filter. The first numbered event was held in 1993.
const (
	MinScopeYear = 1993
	MaxScopeYear = 2100
)

// DateTimeFormat is the default date time representation.
var DateTimeFormat = time.RFC3339

// Config holds the runtime configuration for scoring and ranking.
// This struct remains the "final, validated" config.
type Config struct {
	DataPath    string
	UserID      string
	Metric      schema.RankMetric
	Scope       schema.Scope
	ResultLimit int
	Precision   int
	Output      schema.OutputMode
	OutputFile  string
	Width       int // Terminal width override (0 = auto-detect)

	SnapshotBackend   schema.DatabaseBackend
	SnapshotDBConnect string // Please use env var as this is plaintext

	// Labels holds extra key/value pairs recorded with each snapshot run
	Labels map[string]string

	UseEmojis bool // Enable emojis in output headers
	UseColors bool // Enable colored labels in table output
}

// ConfigRawInput holds the raw inputs from all sources (flags, env, config file).
// Viper unmarshals into this struct.
type ConfigRawInput struct {
	// --- Fields from rootCmd.PersistentFlags() ---
	Data           string `mapstructure:"data"`
	User           string `mapstructure:"user"`
	Metric         string `mapstructure:"metric"`
	Limit          int    `mapstructure:"limit"`
	Precision      int    `mapstructure:"precision"`
	Output         string `mapstructure:"output"`
	OutputFile     string `mapstructure:"output-file"`
	Width          int    `mapstructure:"width"`
	StoreBackend   string `mapstructure:"store-backend"`
	StoreDBConnect string `mapstructure:"store-db-connect"`
	Emoji          string `mapstructure:"emoji"`
	Color          string `mapstructure:"color"`

	// --- Fields from leaderboardCmd.Flags() ---
	Category    string `mapstructure:"category"`
	Method      string `mapstructure:"method"`
	Round       int    `mapstructure:"round"`
	WeightClass string `mapstructure:"weight-class"`
	Year        int    `mapstructure:"year"`
	Event       int64  `mapstructure:"event"`
	TitleOnly   bool   `mapstructure:"title-only"`

	// --- Labels from config file ---
	Labels map[string]string `mapstructure:"labels"`
}

// Clone returns a deep copy of the Config struct.
func (c *Config) Clone() *Config {
	clone := *c
	if c.Labels != nil {
		clone.Labels = make(map[string]string, len(c.Labels))
		maps.Copy(clone.Labels, c.Labels)
	}
	return &clone
}

// SnapshotParams returns the config values recorded with a snapshot run.
func (c *Config) SnapshotParams() map[string]any {
	params := map[string]any{
		"data":   c.DataPath,
		"metric": string(c.Metric),
		"scope":  c.Scope.Label(),
		"limit":  c.ResultLimit,
	}
	for k, v := range c.Labels {
		params["label."+k] = v
	}
	return params
}

// ProcessAndValidate performs all parsing and validation on the raw inputs
// and updates the final Config struct.
func ProcessAndValidate(cfg *Config, input *ConfigRawInput) error {
	if err := validateSimpleInputs(cfg, input); err != nil {
		return err
	}
	if err := processScope(cfg, input); err != nil {
		return err
	}
	if err := validateBackendConfigs(cfg, input); err != nil {
		return err
	}
	return resolveDataPath(cfg, input)
}

// ValidateDatabaseConnectionString validates the format of database connection strings
// for MySQL and PostgreSQL backends.
func ValidateDatabaseConnectionString(backend schema.DatabaseBackend, connStr string) error {
	switch backend {
	case schema.SQLiteBackend, schema.NoneBackend:
		return nil
	case schema.MySQLBackend:
		if connStr == "" {
			return fmt.Errorf("store-db-connect is required when using %s backend", backend)
		}
		if !strings.Contains(connStr, "@tcp(") {
			return fmt.Errorf("MySQL connection string must contain '@tcp(' with a host:port address")
		}
		if !strings.Contains(connStr, "/") {
			return fmt.Errorf("MySQL connection string must contain '/' followed by database name")
		}
	case schema.PostgreSQLBackend:
		if connStr == "" {
			return fmt.Errorf("store-db-connect is required when using %s backend", backend)
		}
		if !strings.Contains(connStr, "host=") {
			return fmt.Errorf("PostgreSQL connection string must contain 'host=' parameter")
		}
		if !strings.Contains(connStr, "dbname=") {
			return fmt.Errorf("PostgreSQL connection string must contain 'dbname=' parameter")
		}
	}
	return nil
}

// validateBackendConfigs validates the snapshot backend configuration.
func validateBackendConfigs(cfg *Config, input *ConfigRawInput) error {
	cfg.SnapshotBackend = schema.DatabaseBackend(strings.ToLower(input.StoreBackend))
	if cfg.SnapshotBackend == "" {
		cfg.SnapshotBackend = schema.SQLiteBackend
	}
	if _, ok := schema.ValidDatabaseBackends[cfg.SnapshotBackend]; !ok {
		return fmt.Errorf("invalid store backend '%s'. must be sqlite, mysql, postgresql, none", input.StoreBackend)
	}
	cfg.SnapshotDBConnect = input.StoreDBConnect
	return ValidateDatabaseConnectionString(cfg.SnapshotBackend, cfg.SnapshotDBConnect)
}

// validateSimpleInputs processes and validates all non-scope fields.
func validateSimpleInputs(cfg *Config, input *ConfigRawInput) error {
	// --- 0. Transfer simple non-validated fields from input -> cfg ---
	cfg.UserID = strings.TrimSpace(input.User)
	cfg.OutputFile = input.OutputFile
	cfg.Width = input.Width
	cfg.Labels = input.Labels

	// Parse emoji flag
	emojis, err := ParseBoolString(input.Emoji)
	if err != nil {
		return fmt.Errorf("invalid --emoji value: %w", err)
	}
	cfg.UseEmojis = emojis

	// Parse color flag
	colors, err := ParseBoolString(input.Color)
	if err != nil {
		return fmt.Errorf("invalid --color value: %w", err)
	}
	cfg.UseColors = colors

	// --- 1. ResultLimit Validation ---
	if input.Limit <= 0 || input.Limit > MaxResultLimit {
		return fmt.Errorf("limit must be greater than 0 and cannot exceed %d (received %d)", MaxResultLimit, input.Limit)
	}
	cfg.ResultLimit = input.Limit

	// --- 2. Metric Validation ---
	cfg.Metric = schema.RankMetric(strings.ToLower(input.Metric))
	if cfg.Metric == "" {
		cfg.Metric = schema.TotalPointsMetric
	}
	if _, ok := schema.ValidRankMetrics[cfg.Metric]; !ok {
		return fmt.Errorf("invalid metric '%s'. must be total_points, accuracy, picks_correct, perfect_picks, picks_total", input.Metric)
	}

	// --- 3. Precision and Output Validation ---
	if input.Precision < 0 || input.Precision > MaxPrecision {
		return fmt.Errorf("precision must be between 0 and %d (received %d)", MaxPrecision, input.Precision)
	}
	cfg.Precision = input.Precision

	cfg.Output = schema.OutputMode(strings.ToLower(input.Output))
	if _, ok := schema.ValidOutputModes[cfg.Output]; !ok {
		return fmt.Errorf("invalid output format '%s'. must be text, csv, json, parquet", input.Output)
	}
	if cfg.Output == schema.ParquetOut && cfg.OutputFile == "" {
		return fmt.Errorf("parquet output requires --output-file")
	}

	return nil
}

// processScope converts the leaderboard filters into a schema.Scope.
func processScope(cfg *Config, input *ConfigRawInput) error {
	scope := schema.Scope{
		WeightClass:     strings.TrimSpace(input.WeightClass),
		TitleFightsOnly: input.TitleOnly,
	}

	var err error
	if scope.Category, err = parseCategory(input.Category); err != nil {
		return err
	}
	if strings.TrimSpace(input.Method) != "" {
		if scope.Method, err = parseScopeMethod(input.Method); err != nil {
			return err
		}
	}
	if scope.Round, err = parseScopeRound(input.Round); err != nil {
		return err
	}
	if err := validateYear(input.Year); err != nil {
		return err
	}
	scope.Year = input.Year
	if err := validateEvent(input.Event); err != nil {
		return err
	}
	scope.EventID = input.Event

	cfg.Scope = scope
	return nil
}

// parseCategory maps a blank category to the global tab.
func parseCategory(s string) (schema.Category, error) {
	category := schema.Category(strings.ToLower(strings.TrimSpace(s)))
	if category == "" {
		return schema.GlobalCategory, nil
	}
	if _, ok := schema.ValidCategories[category]; !ok {
		return "", fmt.Errorf("invalid category '%s'. must be global, main-events, main-card, prelims, early-prelims", s)
	}
	return category, nil
}

func parseScopeMethod(s string) (schema.VictoryMethod, error) {
	method, err := schema.ParseVictoryMethod(s)
	if err != nil {
		return "", fmt.Errorf("invalid --method value: %w", err)
	}
	return method, nil
}

func parseScopeRound(round int) (schema.Round, error) {
	if round < 0 || round > int(schema.MaxRound) {
		return 0, fmt.Errorf("round must be between 1 and %d (received %d)", schema.MaxRound, round)
	}
	return schema.Round(round), nil
}

func validateYear(year int) error {
	if year != 0 && (year < MinScopeYear || year > MaxScopeYear) {
		return fmt.Errorf("year must be between %d and %d (received %d)", MinScopeYear, MaxScopeYear, year)
	}
	return nil
}

func validateEvent(event int64) error {
	if event < 0 {
		return fmt.Errorf("event must be a positive id (received %d)", event)
	}
	return nil
}

// resolveDataPath turns the dataset path into an absolute path when one is given.
func resolveDataPath(cfg *Config, input *ConfigRawInput) error {
	path := strings.TrimSpace(input.Data)
	if path == "" {
		cfg.DataPath = ""
		return nil
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("invalid --data path %q: %w", path, err)
	}
	cfg.DataPath = filepath.Clean(abs)
	return nil
}

// LeaderboardOverrides carries per-request leaderboard settings. Zero values
// keep the base configuration.
type LeaderboardOverrides struct {
	Metric      string
	Category    string
	Method      string
	Round       int
	WeightClass string
	Year        int
	Event       int64
	TitleOnly   bool
	Limit       int
}

// RevalidateLeaderboard applies overrides to a cloned config and validates
// them with the same rules as the command line. Only the scope fields set in
// o replace the base scope. TitleOnly can narrow the scope but never widen it.
func RevalidateLeaderboard(cfg *Config, o LeaderboardOverrides) error {
	if o.Metric != "" {
		metric := schema.RankMetric(strings.ToLower(o.Metric))
		if _, ok := schema.ValidRankMetrics[metric]; !ok {
			return fmt.Errorf("invalid metric '%s'", o.Metric)
		}
		cfg.Metric = metric
	}
	if o.Limit != 0 {
		if o.Limit < 0 || o.Limit > MaxResultLimit {
			return fmt.Errorf("limit must be greater than 0 and cannot exceed %d (received %d)", MaxResultLimit, o.Limit)
		}
		cfg.ResultLimit = o.Limit
	}

	scope := cfg.Scope
	if strings.TrimSpace(o.Category) != "" {
		category, err := parseCategory(o.Category)
		if err != nil {
			return err
		}
		scope.Category = category
	}
	if strings.TrimSpace(o.Method) != "" {
		method, err := parseScopeMethod(o.Method)
		if err != nil {
			return err
		}
		scope.Method = method
	}
	if o.Round != 0 {
		round, err := parseScopeRound(o.Round)
		if err != nil {
			return err
		}
		scope.Round = round
	}
	if wc := strings.TrimSpace(o.WeightClass); wc != "" {
		scope.WeightClass = wc
	}
	if o.Year != 0 {
		if err := validateYear(o.Year); err != nil {
			return err
		}
		scope.Year = o.Year
	}
	if o.Event != 0 {
		if err := validateEvent(o.Event); err != nil {
			return err
		}
		scope.EventID = o.Event
	}
	if o.TitleOnly {
		scope.TitleFightsOnly = true
	}

	cfg.Scope = scope
	return nil
}
