// Package main provides a performance benchmarking tool for the pickscore CLI.
// It generates synthetic datasets of increasing size, times each command several
// times (the first successful run is treated as cold and the rest are averaged
// as warm) and writes CSV output for performance analysis and documentation.
//
// Prerequisites:
// - pickscore binary installed and available in PATH
//
// Usage: go run benchmark/main.go [work-dir]
//
//	work-dir: Directory the generated datasets are written to
package main

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/huangsam/pickscore/internal/feed"
)

// BenchmarkResult holds the result of a benchmark run (no-snapshot average, cold run and average of warm runs).
type BenchmarkResult struct {
	Dataset        string
	Command        string
	NoSnapshotTime string
	ColdTime       string
	WarmTime       string
}

// DatasetSize describes one generated dataset.
type DatasetSize struct {
	Name   string
	Users  int
	Events int
}

// BenchmarkConfig holds configuration for the benchmark run.
type BenchmarkConfig struct {
	WorkDir        string
	Timeout        time.Duration
	NoSnapshotRuns int
	SnapshotRuns   int
	Sizes          []DatasetSize
	Seed           uint64
}

// boutsPerEvent is a typical numbered event card.
const boutsPerEvent = 12

func main() {
	// Parse command line arguments
	if len(os.Args) != 2 {
		fmt.Printf("Usage: %s [work-dir]\n", os.Args[0])
		os.Exit(1)
	}

	config := BenchmarkConfig{
		WorkDir:        os.Args[1],
		Timeout:        2 * time.Minute,
		NoSnapshotRuns: 3,
		SnapshotRuns:   4,
		Seed:           42,
		Sizes: []DatasetSize{
			{Name: "small", Users: 50, Events: 4},
			{Name: "medium", Users: 1000, Events: 24},
			{Name: "large", Users: 10000, Events: 52},
		},
	}

	if err := checkPrerequisites(config); err != nil {
		fmt.Printf("Prerequisites check failed: %v\n", err)
		os.Exit(1)
	}

	results := runBenchmarks(config)

	if err := saveResults(results); err != nil {
		fmt.Printf("Failed to save results: %v\n", err)
		os.Exit(1)
	}

	printSummary(results)
}

// checkPrerequisites verifies that the pickscore binary and work directory exist
func checkPrerequisites(config BenchmarkConfig) error {
	if _, err := exec.LookPath("pickscore"); err != nil {
		return fmt.Errorf("pickscore binary not found in PATH")
	}
	return os.MkdirAll(config.WorkDir, 0o755)
}

// generateDataset writes a synthetic dataset where every user picks every bout.
func generateDataset(path string, size DatasetSize, seed uint64) error {
	faker := gofakeit.New(seed)
	winners := []string{"red", "blue", "red", "blue", "draw"}
	methods := []string{"KO/TKO", "SUB", "DEC"}
	positions := []string{"main-event", "co-main", "main-card", "main-card", "prelims", "early-prelims"}

	ds := feed.Dataset{}
	for i := range size.Users {
		ds.Users = append(ds.Users, feed.UserRecord{ID: fmt.Sprintf("u%d", i+1), Name: faker.Username()})
	}

	boutID := int64(0)
	start := time.Date(2024, 1, 6, 0, 0, 0, 0, time.UTC)
	for e := range size.Events {
		eventID := int64(e + 1)
		ds.Events = append(ds.Events, feed.EventRecord{
			ID:   eventID,
			Name: fmt.Sprintf("Fight Night %d", eventID),
			Date: start.AddDate(0, 0, 7*e).Format(time.DateOnly),
		})
		for b := range boutsPerEvent {
			boutID++
			bout := feed.BoutRecord{
				ID:              boutID,
				EventID:         eventID,
				WeightClass:     faker.RandomString([]string{"Flyweight", "Bantamweight", "Featherweight", "Lightweight", "Welterweight"}),
				RoundsScheduled: 3,
				CardPosition:    positions[min(b, len(positions)-1)],
				Fighters: feed.FightersRecord{
					Red:  feed.CornerRecord{FighterName: faker.Name()},
					Blue: feed.CornerRecord{FighterName: faker.Name()},
				},
			}
			if b == 0 {
				bout.RoundsScheduled = 5
			}
			// The last event has no results so some picks stay pending.
			if e < size.Events-1 {
				round := faker.IntRange(1, bout.RoundsScheduled)
				bout.Result = &feed.ResultRecord{
					Winner: faker.RandomString(winners),
					Method: faker.RandomString(methods),
					Round:  &round,
				}
			}
			ds.Bouts = append(ds.Bouts, bout)

			for _, u := range ds.Users {
				round := faker.IntRange(1, 3)
				ds.Picks = append(ds.Picks, feed.PickRecord{
					UserID:       u.ID,
					BoutID:       boutID,
					PickedCorner: faker.RandomString([]string{"red", "blue"}),
					PickedMethod: faker.RandomString(methods),
					PickedRound:  &round,
				})
			}
		}
	}

	data, err := json.Marshal(ds)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// runBenchmarks executes all benchmark tests across configured dataset sizes
func runBenchmarks(config BenchmarkConfig) []BenchmarkResult {
	var results []BenchmarkResult

	fmt.Printf("Starting benchmark: %d datasets, %v timeout, no-snapshot: %d runs, snapshot: %d runs\n",
		len(config.Sizes), config.Timeout, config.NoSnapshotRuns, config.SnapshotRuns)

	for _, size := range config.Sizes {
		dataPath := filepath.Join(config.WorkDir, fmt.Sprintf("picks_%s.json", size.Name))
		fmt.Printf("Generating %s dataset (%d users, %d events)\n", size.Name, size.Users, size.Events*boutsPerEvent)
		if err := generateDataset(dataPath, size, config.Seed); err != nil {
			fmt.Printf("Warning: failed to generate %s dataset: %v\n", size.Name, err)
			continue
		}

		results = append(results,
			runBenchmarkSuite(config, size.Name, "leaderboard", "global leaderboard", "--data "+dataPath),
			runBenchmarkSuite(config, size.Name, "leaderboard", "main card accuracy", "--data "+dataPath+" --category main-card --metric accuracy"),
			runBenchmarkSuite(config, size.Name, "history", "pick history", "--data "+dataPath+" --user u1"),
		)
	}

	return results
}

// runBenchmarkSuite runs both no-snapshot and snapshot benchmarks for a command
func runBenchmarkSuite(config BenchmarkConfig, dataset, command, description, extraArgs string) BenchmarkResult {
	fmt.Printf("Running %s on %s\n", description, dataset)

	// Helper to run a benchmark phase
	runPhase := func(backend string, numRuns int, phaseName string) (coldTime float64, avgTime string) {
		fmt.Printf("  %s phase (%d runs)\n", phaseName, numRuns)
		cold, times := runBenchmark(config, command, extraArgs, backend, numRuns)
		if len(times) == 0 {
			avgTime = "TIMEOUT"
		} else {
			var sum float64
			for _, t := range times {
				sum += t
			}
			avgTime = fmt.Sprintf("%.3fs", sum/float64(len(times)))
		}
		return cold, avgTime
	}

	// Phase 1: No-snapshot runs
	_, noSnapshotAvg := runPhase("none", config.NoSnapshotRuns, "No-snapshot")

	// Phase 2: Snapshot runs
	coldTime, warmAvg := runPhase("sqlite", config.SnapshotRuns, "Snapshot")

	coldTimeStr := "TIMEOUT"
	if coldTime > 0 {
		coldTimeStr = fmt.Sprintf("%.3fs", coldTime)
	}

	fmt.Printf("  No-snapshot average: %s, Cold time: %s, Warm average: %s\n", noSnapshotAvg, coldTimeStr, warmAvg)

	return BenchmarkResult{
		Dataset:        dataset,
		Command:        command + " (" + description + ")",
		NoSnapshotTime: noSnapshotAvg,
		ColdTime:       coldTimeStr,
		WarmTime:       warmAvg,
	}
}

// runBenchmark executes a pickscore command multiple times and returns cold time and warm times
func runBenchmark(config BenchmarkConfig, command, extraArgs, backend string, numRuns int) (coldTime float64, warmTimes []float64) {
	args := []string{command, "--store-backend", backend, "--output", "json"}
	if extraArgs != "" {
		args = append(args, strings.Fields(extraArgs)...)
	}

	var times []float64
	for range numRuns {
		start := time.Now()

		cmd := exec.Command("pickscore", args...)

		done := make(chan bool)
		var output []byte
		var cmdErr error

		go func() {
			output, cmdErr = cmd.Output()
			done <- true
		}()

		select {
		case <-done:
			if cmdErr == nil && json.Valid(output) {
				times = append(times, time.Since(start).Seconds())
			}
		case <-time.After(config.Timeout):
			_ = cmd.Process.Kill()
		}
	}

	if len(times) > 0 {
		coldTime = times[0]
		warmTimes = times[1:]
	}
	return
}

// saveResults writes benchmark results to a timestamped CSV file
func saveResults(results []BenchmarkResult) error {
	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("/tmp/pickscore_benchmark_%s.csv", timestamp)

	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			fmt.Printf("Warning: failed to close file %s: %v\n", filename, closeErr)
		}
	}()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	// Write header
	if err := writer.Write([]string{"dataset", "cmd", "no_snapshot_avg", "cold_time", "warm_avg"}); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	// Write results
	for _, result := range results {
		if err := writer.Write([]string{result.Dataset, result.Command, result.NoSnapshotTime, result.ColdTime, result.WarmTime}); err != nil {
			return fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	fmt.Printf("Results saved to %s\n", filename)
	return nil
}

// printSummary displays the final benchmark results summary
func printSummary(results []BenchmarkResult) {
	fmt.Printf("Benchmark complete\n")
	for _, result := range results {
		fmt.Printf("  %-8s %-45s: No-snapshot: %s, Cold: %s, Warm: %s\n",
			result.Dataset, result.Command, result.NoSnapshotTime, result.ColdTime, result.WarmTime)
	}
}
