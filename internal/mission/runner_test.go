package mission

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/san-kum/rover/internal/config"
	"github.com/san-kum/rover/internal/logging"
	"github.com/san-kum/rover/internal/metrics"
	"github.com/san-kum/rover/internal/rover"
)

func TestRunner_Classic(t *testing.T) {
	m, err := ParseString(classic)
	if err != nil {
		t.Fatal(err)
	}

	var runner Runner
	res, err := runner.Run(context.Background(), m)
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	got := res.Positions()
	want := []string{"1 3 N", "5 1 E"}
	if len(got) != len(want) {
		t.Fatalf("expected %d positions, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("rover %d: got %q, want %q", i+1, got[i], want[i])
		}
	}

	if res.Grid != (rover.Bounds{MaxX: 5, MaxY: 5}) {
		t.Errorf("unexpected grid %+v", res.Grid)
	}
	first := res.Rovers[0]
	if first.Start.String() != "1 2 N" {
		t.Errorf("start = %s, want 1 2 N", first.Start)
	}
	if len(first.Trace) != 9 {
		t.Errorf("trace length = %d, want 9", len(first.Trace))
	}
	if first.Metrics["distance"] != 5 {
		t.Errorf("distance = %v, want 5", first.Metrics["distance"])
	}
}

func TestRunner_ParallelKeepsOrder(t *testing.T) {
	var sb strings.Builder
	sb.WriteString("9 9\n")
	for i := 0; i < 40; i++ {
		sb.WriteString("0 0 N\n")
		sb.WriteString(strings.Repeat("M", i%9+1))
		sb.WriteString("\n")
	}
	m, err := ParseString(sb.String())
	if err != nil {
		t.Fatal(err)
	}

	runner := Runner{Workers: 8}
	res, err := runner.Run(context.Background(), m)
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	for i, rr := range res.Rovers {
		wantY := i%9 + 1
		if rr.Final.Y != wantY {
			t.Errorf("rover %d: y = %d, want %d", i+1, rr.Final.Y, wantY)
		}
		if rr.Name != m.Rovers[i].Name {
			t.Errorf("rover %d: name %q, want %q", i+1, rr.Name, m.Rovers[i].Name)
		}
	}
}

func TestRunner_LogsRejectedMoves(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(&buf, config.LogConfig{Level: "info", Format: "logfmt"})
	if err != nil {
		t.Fatal(err)
	}

	m, err := ParseString("5 5\n0 0 S\nM\n2 2 N\nM\n")
	if err != nil {
		t.Fatal(err)
	}

	runner := Runner{Logger: logger}
	res, err := runner.Run(context.Background(), m)
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	out := buf.String()
	if strings.Count(out, "move rejected") != 1 {
		t.Errorf("expected one rejection, got %q", out)
	}
	if !strings.Contains(out, "rover-1") {
		t.Errorf("rejection should name the rover: %q", out)
	}
	if res.Rovers[0].Metrics["rejected"] != 1 {
		t.Errorf("rejected metric = %v, want 1", res.Rovers[0].Metrics["rejected"])
	}
}

func TestRunner_ParallelLoggingToSharedBuffer(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(&buf, config.LogConfig{Level: "debug", Format: "logfmt"})
	if err != nil {
		t.Fatal(err)
	}

	var sb strings.Builder
	sb.WriteString("3 3\n")
	for i := 0; i < 32; i++ {
		sb.WriteString("0 0 S\nMMMLM\n")
	}
	m, err := ParseString(sb.String())
	if err != nil {
		t.Fatal(err)
	}

	runner := Runner{Workers: 8, Logger: logger}
	res, err := runner.Run(context.Background(), m)
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	if got := strings.Count(buf.String(), "move rejected"); got != 32*3 {
		t.Errorf("expected %d rejections logged, got %d", 32*3, got)
	}
	for i, rr := range res.Rovers {
		if rr.Final.String() != "1 0 E" {
			t.Errorf("rover %d final = %s, want 1 0 E", i+1, rr.Final)
		}
	}
}

func TestRunner_WarnsOnStartOutsideGrid(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(&buf, config.LogConfig{Level: "warn", Format: "logfmt"})
	if err != nil {
		t.Fatal(err)
	}

	m := &Mission{Grid: "2 2", Rovers: []Deployment{{Name: "far", Position: "7 7 S", Commands: "M"}}}
	runner := Runner{Logger: logger}
	res, err := runner.Run(context.Background(), m)
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if res.Rovers[0].Final.String() != "7 6 S" {
		t.Errorf("final = %s, want 7 6 S", res.Rovers[0].Final)
	}
	if !strings.Contains(buf.String(), "start position outside grid") {
		t.Errorf("expected warning, got %q", buf.String())
	}
}

func TestRunner_CustomMetrics(t *testing.T) {
	m, err := ParseString("3 3\n0 0 N\nMMRM\n")
	if err != nil {
		t.Fatal(err)
	}
	runner := Runner{Metrics: func() []metrics.Metric { return []metrics.Metric{metrics.NewDistance()} }}
	res, err := runner.Run(context.Background(), m)
	if err != nil {
		t.Fatal(err)
	}
	got := res.Rovers[0].Metrics
	if len(got) != 1 || got["distance"] != 3 {
		t.Errorf("unexpected metrics: %v", got)
	}
}

func TestRunner_Errors(t *testing.T) {
	var runner Runner

	_, err := runner.Run(context.Background(), &Mission{Grid: "five", Rovers: []Deployment{{Position: "0 0 N"}}})
	if !errors.Is(err, rover.ErrMalformedBoundaries) {
		t.Errorf("expected ErrMalformedBoundaries, got %v", err)
	}

	_, err = runner.Run(context.Background(), &Mission{Grid: "5 5"})
	if !errors.Is(err, ErrNoRovers) {
		t.Errorf("expected ErrNoRovers, got %v", err)
	}

	_, err = runner.Run(context.Background(), &Mission{Grid: "5 5", Rovers: []Deployment{{Name: "x", Position: "0 0"}}})
	if !errors.Is(err, rover.ErrMalformedPosition) {
		t.Errorf("expected ErrMalformedPosition, got %v", err)
	}
	if err != nil && !strings.Contains(err.Error(), "rover 1 (x)") {
		t.Errorf("error should identify the rover: %v", err)
	}
}

func TestRunner_Canceled(t *testing.T) {
	m, err := ParseString(classic)
	if err != nil {
		t.Fatal(err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var runner Runner
	if _, err := runner.Run(ctx, m); !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}
