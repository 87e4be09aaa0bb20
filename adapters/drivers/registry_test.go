package drivers

import (
	"errors"
	"sync"
	"testing"

	"github.com/driverset/driverset/domain/model"
)

// Test hooks use driver IDs no real subpackage registers so the
// package-global registry stays clean across tests.

func TestActivate_Unavailable(t *testing.T) {
	err := Activate("testdrv-nowhere")
	if !errors.Is(err, model.ErrDriverUnavailable) {
		t.Fatalf("Activate() = %v, want ErrDriverUnavailable", err)
	}
	if Resolvable("testdrv-nowhere") {
		t.Error("Resolvable() = true for unregistered driver")
	}
}

func TestActivate_RunsHookOnce(t *testing.T) {
	var calls int
	Register("testdrv-once", func() error {
		calls++
		return nil
	})
	for i := 0; i < 3; i++ {
		if err := Activate("testdrv-once"); err != nil {
			t.Fatalf("Activate() #%d error: %v", i, err)
		}
	}
	if calls != 1 {
		t.Errorf("activation hook ran %d times, want 1", calls)
	}
}

func TestActivate_HookErrorIsSticky(t *testing.T) {
	hookErr := errors.New("broken native dependency")
	var calls int
	Register("testdrv-broken", func() error {
		calls++
		return hookErr
	})
	for i := 0; i < 2; i++ {
		err := Activate("testdrv-broken")
		if !errors.Is(err, hookErr) {
			t.Fatalf("Activate() #%d = %v, want wrapped hook error", i, err)
		}
	}
	if calls != 1 {
		t.Errorf("failing hook ran %d times, want 1", calls)
	}
}

func TestResolvable_DoesNotActivate(t *testing.T) {
	var calls int
	Register("testdrv-probe", func() error {
		calls++
		return nil
	})
	if !Resolvable("testdrv-probe") {
		t.Fatal("Resolvable() = false for registered driver")
	}
	if calls != 0 {
		t.Errorf("probe ran the activation hook %d times", calls)
	}
}

func TestActivate_Concurrent(t *testing.T) {
	var calls int
	Register("testdrv-racy", func() error {
		calls++
		return nil
	})
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := Activate("testdrv-racy"); err != nil {
				t.Errorf("Activate() error: %v", err)
			}
		}()
	}
	wg.Wait()
	if calls != 1 {
		t.Errorf("activation hook ran %d times under concurrency, want 1", calls)
	}
}
