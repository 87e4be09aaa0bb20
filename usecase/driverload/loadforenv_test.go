package driverload

import (
	"context"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/driverset/driverset/config/driverscfg"
)

func TestLoadForEnvironment_UsesConfigPathEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "driverset.yml")
	content := `
version: v1
environments:
  prod:
    active:
      sqlite: {}
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv(driverscfg.ConfigPathEnv, path)

	rt := newFakeRuntime("sqlite")
	u := newTestUseCase(rt)

	out, err := u.LoadForEnvironment(context.Background(), "prod")
	if err != nil {
		t.Fatalf("LoadForEnvironment: %v", err)
	}
	if !reflect.DeepEqual(out.Loaded, []string{"sqlite"}) {
		t.Errorf("Loaded = %v, want [sqlite]", out.Loaded)
	}
}

func TestLoadForEnvironment_ConfigMissing(t *testing.T) {
	t.Setenv(driverscfg.ConfigPathEnv, filepath.Join(t.TempDir(), "absent.yml"))
	u := newTestUseCase(newFakeRuntime())
	if _, err := u.LoadForEnvironment(context.Background(), "prod"); err == nil {
		t.Fatal("LoadForEnvironment succeeded with missing config")
	}
}
