package driverload

import (
	"bytes"
	"context"
	"log/slog"
	"reflect"
	"strings"
	"testing"

	"github.com/driverset/driverset/internal/logging"
)

func TestActiveKeys_Sorted(t *testing.T) {
	u := newTestUseCase(newFakeRuntime())
	cfg := cfgWith("prod", []string{"sqlite", "postgres", "duckdb"}, nil)
	got := u.ActiveKeys(context.Background(), cfg, "prod")
	want := []string{"duckdb", "postgres", "sqlite"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ActiveKeys() = %v, want %v", got, want)
	}
}

func TestActiveKeys_MissingActiveGroup(t *testing.T) {
	u := newTestUseCase(newFakeRuntime())
	cfg := cfgWith("prod", nil, []string{"postgres"})
	if got := u.ActiveKeys(context.Background(), cfg, "prod"); len(got) != 0 {
		t.Errorf("ActiveKeys() = %v, want empty", got)
	}
}

func TestActiveKeys_MissingEnvironment(t *testing.T) {
	u := newTestUseCase(newFakeRuntime())
	cfg := cfgWith("prod", []string{"postgres"}, nil)
	if got := u.ActiveKeys(context.Background(), cfg, "staging"); len(got) != 0 {
		t.Errorf("ActiveKeys() = %v, want empty", got)
	}
}

func TestActiveKeys_ActiveWins(t *testing.T) {
	u := newTestUseCase(newFakeRuntime())
	cfg := cfgWith("prod", []string{"postgres"}, []string{"postgres", "sqlite"})

	var buf bytes.Buffer
	l, err := logging.NewWithWriter("text", slog.LevelWarn, &buf)
	if err != nil {
		t.Fatalf("logger: %v", err)
	}
	ctx := logging.WithLogger(context.Background(), l)

	got := u.ActiveKeys(ctx, cfg, "prod")
	if !reflect.DeepEqual(got, []string{"postgres"}) {
		t.Errorf("ActiveKeys() = %v, want [postgres]", got)
	}
	if !strings.Contains(buf.String(), "active wins") {
		t.Errorf("ambiguity diagnostic missing from log: %q", buf.String())
	}
	// sqlite is only inactive, no diagnostic for it
	if strings.Contains(buf.String(), "key=sqlite") {
		t.Errorf("unexpected diagnostic for purely inactive key: %q", buf.String())
	}
}
