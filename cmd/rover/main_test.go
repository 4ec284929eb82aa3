package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/san-kum/rover/internal/config"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{config.EnvLogLevel, config.EnvLogFormat, config.EnvOutputFormat, config.EnvWorkers} {
		t.Setenv(k, "")
	}
}

func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	clearEnv(t)

	cmd := newRootCmd()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)

	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestRun_Preset(t *testing.T) {
	out, _, err := execute(t, "", "run", "--preset", "classic")
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if out != "1 3 N\n5 1 E\n" {
		t.Errorf("got %q, want %q", out, "1 3 N\n5 1 E\n")
	}
}

func TestRun_Stdin(t *testing.T) {
	out, _, err := execute(t, "5 5\n1 2 N\nLM\n1 2 N\nRM\n", "run", "-")
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if out != "0 2 W\n2 2 E\n" {
		t.Errorf("got %q", out)
	}
}

func TestRun_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mission.yaml")
	data := "grid: \"5 5\"\nrovers:\n  - name: opportunity\n    position: \"1 2 E\"\n    commands: MMM\n"
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	out, _, err := execute(t, "", "run", "--workers", "2", path)
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if out != "4 2 E\n" {
		t.Errorf("got %q, want %q", out, "4 2 E\n")
	}
}

func TestRun_RejectedMoveIsLogged(t *testing.T) {
	out, errOut, err := execute(t, "5 5\n0 0 S\nM\n", "run", "--log-format", "logfmt")
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if out != "0 0 S\n" {
		t.Errorf("got %q, want %q", out, "0 0 S\n")
	}
	if !strings.Contains(errOut, "move rejected") {
		t.Errorf("expected rejection diagnostic, got %q", errOut)
	}

	_, errOut, err = execute(t, "5 5\n0 0 S\nM\n", "run", "--quiet")
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if strings.Contains(errOut, "move rejected") {
		t.Errorf("--quiet should suppress diagnostics, got %q", errOut)
	}
}

func TestRun_JSON(t *testing.T) {
	out, _, err := execute(t, "", "run", "--preset", "classic", "--format", "json")
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	var data struct {
		Rovers []struct {
			Final string `json:"final"`
		} `json:"rovers"`
	}
	if err := json.Unmarshal([]byte(out), &data); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(data.Rovers) != 2 || data.Rovers[1].Final != "5 1 E" {
		t.Errorf("unexpected json: %s", out)
	}
}

func TestRun_Visuals(t *testing.T) {
	out, _, err := execute(t, "", "run", "--preset", "turns", "--grid", "--plot", "--summary")
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	for _, want := range []string{"0 2 W", "rover-3", "per command"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestRun_ConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rover.yaml")
	if err := os.WriteFile(path, []byte("output:\n  format: csv\n"), 0644); err != nil {
		t.Fatal(err)
	}

	out, _, err := execute(t, "", "run", "--config", path, "--preset", "classic")
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if !strings.HasPrefix(out, "rover,index,command") {
		t.Errorf("expected csv output, got %q", out)
	}

	out, _, err = execute(t, "", "run", "--config", path, "--preset", "classic", "--format", "text")
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if out != "1 3 N\n5 1 E\n" {
		t.Errorf("flag should override config, got %q", out)
	}
}

func TestRun_Errors(t *testing.T) {
	tests := []struct {
		name  string
		stdin string
		args  []string
	}{
		{"bad grid", "five five\n0 0 N\nM\n", []string{"run"}},
		{"bad heading", "5 5\n0 0 Q\nM\n", []string{"run"}},
		{"unknown preset", "", []string{"run", "--preset", "mars"}},
		{"preset and file", "", []string{"run", "--preset", "classic", "mission.txt"}},
		{"bad format", "", []string{"run", "--preset", "classic", "--format", "xml"}},
		{"missing file", "", []string{"run", "does-not-exist.txt"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, _, err := execute(t, tt.stdin, tt.args...); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestPresets(t *testing.T) {
	out, _, err := execute(t, "", "presets")
	if err != nil {
		t.Fatalf("presets failed: %v", err)
	}
	for _, name := range config.ListPresets() {
		if !strings.Contains(out, name) {
			t.Errorf("presets output missing %q", name)
		}
	}
}

func TestConfigInit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conf", "rover.yaml")

	if _, _, err := execute(t, "", "config", "init", path); err != nil {
		t.Fatalf("config init failed: %v", err)
	}
	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("written config does not load: %v", err)
	}
	if *cfg != *config.DefaultConfig() {
		t.Errorf("written config differs from default: %+v", cfg)
	}

	if _, _, err := execute(t, "", "config", "init", path); err == nil {
		t.Error("expected error when file exists")
	}
	if _, _, err := execute(t, "", "config", "init", "--force", path); err != nil {
		t.Errorf("--force should overwrite: %v", err)
	}
}

func TestReplay_RoverOutOfRange(t *testing.T) {
	if _, _, err := execute(t, "", "replay", "--preset", "classic", "--rover", "3"); err == nil {
		t.Error("expected error for rover out of range")
	}
}

func TestVersion(t *testing.T) {
	out, _, err := execute(t, "", "version")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, Version) {
		t.Errorf("got %q", out)
	}
}
