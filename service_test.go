package condor2nav_test

import (
	"context"
	"testing"

	condor2nav "github.com/flyasky/Condor2Nav"
	_ "github.com/flyasky/Condor2Nav/driver/local"
	_ "github.com/flyasky/Condor2Nav/driver/memchan"
)

func TestNewWithRegisteredDrivers(t *testing.T) {
	cfg := &condor2nav.Config{Backend: "local", Channel: "memory", ShareReads: "local"}

	router, err := condor2nav.New(cfg)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	ctx := context.Background()

	// Device paths route to the in-memory channel.
	if err := router.EnsureDirectory(ctx, `\Storage\tasks\2026`); err != nil {
		t.Errorf("EnsureDirectory on device path failed: %v", err)
	}
	if router.Exists(ctx, `\Storage\tasks\plan.fpl`) {
		t.Error("Exists reported true for a file never written to the device")
	}
	if _, err := router.OpenForRead(ctx, `\Storage\tasks\plan.fpl`); !condor2nav.IsNotExist(err) {
		t.Errorf("OpenForRead error = %v, want not-exist", err)
	}
}

func TestNewValidation(t *testing.T) {
	tests := []struct {
		name string
		cfg  condor2nav.Config
	}{
		{"bad share policy", condor2nav.Config{Backend: "local", Channel: "memory", ShareReads: "maybe"}},
		{"unregistered backend", condor2nav.Config{Backend: "tape", Channel: "memory", ShareReads: "local"}},
		{"unregistered channel", condor2nav.Config{Backend: "local", Channel: "carrier-pigeon", ShareReads: "local"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := condor2nav.New(&tt.cfg); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestNewWithoutChannel(t *testing.T) {
	cfg := &condor2nav.Config{Backend: "local", Channel: "none", ShareReads: "local"}

	router, err := condor2nav.New(cfg)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	ctx := context.Background()
	if router.Exists(ctx, `\Storage\plan.fpl`) {
		t.Error("Exists reported true for a device path with no channel")
	}
	if err := router.EnsureDirectory(ctx, `\Storage\tasks`); err == nil {
		t.Error("EnsureDirectory on a device path should fail with no channel")
	}
}

func TestInitAndDefault(t *testing.T) {
	condor2nav.Reset()
	t.Cleanup(condor2nav.Reset)

	cfg := &condor2nav.Config{Backend: "local", Channel: "memory", ShareReads: "local"}
	if err := condor2nav.Init(cfg); err != nil {
		t.Fatalf("Init failed: %v", err)
	}

	first, err := condor2nav.Default()
	if err != nil {
		t.Fatalf("Default failed: %v", err)
	}
	second, err := condor2nav.Default()
	if err != nil {
		t.Fatalf("Default failed: %v", err)
	}
	if first != second {
		t.Error("Default returned different instances")
	}

	// A second Init does not replace the instance.
	if err := condor2nav.Init(&condor2nav.Config{Backend: "tape", Channel: "none", ShareReads: "local"}); err != nil {
		t.Fatalf("second Init returned error: %v", err)
	}
	third, _ := condor2nav.Default()
	if third != first {
		t.Error("second Init replaced the global instance")
	}
}
