package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"bahnarchiv/internal/services"
	"bahnarchiv/internal/testsupport"
)

func TestRunContextKeepsOneRunID(t *testing.T) {
	ctx := newCommandContext(nil)

	first, ok := services.RunIDFromContext(ctx.runContext())
	if !ok || first == "" {
		t.Fatal("run context carries no run ID")
	}
	second, _ := services.RunIDFromContext(ctx.runContext())
	if first != second {
		t.Fatalf("run ID changed between calls: %q vs %q", first, second)
	}
}

func TestCommandLogsCarryRunID(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "bahnarchiv.log")
	env := setupCLITestEnv(t, testsupport.WithJSONLogFile(logPath))

	dir := t.TempDir()
	csvPath := filepath.Join(dir, "episodes.csv")
	testsupport.WriteFile(t, csvPath, strings.Join([]string{
		"SeasonEpisode,Date,AbsEpisode,Title,TargetFilename",
		"S01E01,2006-07-10,1,Die Gotthardbahn,Eisenbahn-Romantik S01E01 - 2006-07-10 - 1 - Die Gotthardbahn.mp4",
	}, "\n")+"\n")
	videoDir := filepath.Join(dir, "archive")
	testsupport.TouchFiles(t, videoDir, "Eisenbahn-Romantik S01E01 - 2006-07-10 - 1 - Die Gotthardbahn.mp4")

	_, _, err := runCLI(t, []string{"presence", csvPath, "--videos", videoDir}, env.configPath)
	if err != nil {
		t.Fatalf("presence: %v", err)
	}

	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	logs := string(data)
	if !strings.Contains(logs, `"run_id":"`) {
		t.Errorf("log records carry no run_id:\n%s", logs)
	}
	if !strings.Contains(logs, `"component":"presence"`) {
		t.Errorf("expected a presence log record:\n%s", logs)
	}
}
