// Package main provides a performance benchmarking tool for the gitcrew CLI.
// It measures execution times of each command across repositories of different
// sizes, running each test multiple times and averaging, generating CSV output
// for performance analysis and documentation.
//
// Prerequisites:
// - gitcrew binary installed and available in PATH
// - Test repositories cloned to the specified base directory
//
// Usage: go run benchmark/main.go [repo-base-dir]
//
//	repo-base-dir: Directory containing test repositories
package main

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"
)

// BenchmarkResult holds the averaged result of one command on one repository.
type BenchmarkResult struct {
	Repository string
	Command    string
	AvgTime    string
}

// BenchmarkConfig holds configuration for the benchmark run.
type BenchmarkConfig struct {
	RepoBase  string
	Timeout   time.Duration
	Runs      int
	TestRepos []string
	Commands  []string
}

func main() {
	if len(os.Args) != 2 {
		fmt.Printf("Usage: %s [repo-base-dir]\n", os.Args[0])
		os.Exit(1)
	}

	config := BenchmarkConfig{
		RepoBase:  os.Args[1],
		Timeout:   5 * time.Minute,
		Runs:      4,
		TestRepos: []string{"csv-parser", "fd", "git", "kubernetes"},
		Commands:  []string{"stats", "chart", "network"},
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

// checkPrerequisites verifies that the gitcrew binary and test repositories exist.
func checkPrerequisites(config BenchmarkConfig) error {
	if _, err := exec.LookPath("gitcrew"); err != nil {
		return fmt.Errorf("gitcrew binary not found in PATH")
	}
	for _, repo := range config.TestRepos {
		repoPath := filepath.Join(config.RepoBase, repo)
		if _, err := os.Stat(repoPath); os.IsNotExist(err) {
			return fmt.Errorf("repository %s not found at %s", repo, repoPath)
		}
	}
	return nil
}

// runBenchmarks executes all benchmark tests across configured repositories.
func runBenchmarks(config BenchmarkConfig) []BenchmarkResult {
	var results []BenchmarkResult

	fmt.Printf("Starting benchmark: %d repos, %v timeout, %d runs per command\n",
		len(config.TestRepos), config.Timeout, config.Runs)

	for _, repo := range config.TestRepos {
		fmt.Printf("Benchmarking %s\n", repo)
		repoPath := filepath.Join(config.RepoBase, repo)

		for _, command := range config.Commands {
			fmt.Printf("  Running %s (%d runs)\n", command, config.Runs)
			times := runBenchmark(config, repoPath, command)

			avg := "TIMEOUT"
			if len(times) > 0 {
				var sum float64
				for _, t := range times {
					sum += t
				}
				avg = fmt.Sprintf("%.3fs", sum/float64(len(times)))
			}
			fmt.Printf("  %s average: %s\n", command, avg)

			results = append(results, BenchmarkResult{
				Repository: repo,
				Command:    command,
				AvgTime:    avg,
			})
		}
	}

	return results
}

// runBenchmark executes one gitcrew command repeatedly and returns the
// per-run wall-clock times of the successful runs.
func runBenchmark(config BenchmarkConfig, repoPath, command string) []float64 {
	var times []float64

	for run := 0; run < config.Runs; run++ {
		args := []string{command, repoPath}
		if command == "chart" || command == "network" {
			args = append(args, "--output-file", filepath.Join(os.TempDir(), "gitcrew_bench.html"))
		}

		ctx, cancel := context.WithTimeout(context.Background(), config.Timeout)
		cmd := exec.CommandContext(ctx, "gitcrew", args...)

		start := time.Now()
		err := cmd.Run()
		elapsed := time.Since(start).Seconds()
		cancel()

		if err != nil {
			fmt.Printf("    Run %d failed: %v\n", run+1, err)
			continue
		}
		times = append(times, elapsed)
	}

	return times
}

// saveResults writes the benchmark results to a CSV file.
func saveResults(results []BenchmarkResult) error {
	file, err := os.Create("benchmark_results.csv")
	if err != nil {
		return err
	}
	defer func() { _ = file.Close() }()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	if err := writer.Write([]string{"repository", "command", "avg_time"}); err != nil {
		return err
	}
	for _, r := range results {
		if err := writer.Write([]string{r.Repository, r.Command, r.AvgTime}); err != nil {
			return err
		}
	}
	return nil
}

// printSummary prints a compact table of the results.
func printSummary(results []BenchmarkResult) {
	fmt.Println("\nBenchmark summary")
	fmt.Println(strings.Repeat("-", 48))
	for _, r := range results {
		fmt.Printf("%-14s %-10s %10s\n", r.Repository, r.Command, r.AvgTime)
	}
}
