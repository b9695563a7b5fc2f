package engine

import (
	"math/rand"
	"os"
	"path/filepath"
	"testing"
	"time"

	"ecoquest/internal/catalog"
)

func TestTipForDayIsIndexedByWeekday(t *testing.T) {
	p := NewTipProvider(nil)
	builtin := catalog.Tips()
	if p.Len() != len(builtin) {
		t.Fatalf("Len()=%d, want %d", p.Len(), len(builtin))
	}
	if got := p.ForDay(time.Sunday); got != builtin[0] {
		t.Fatalf("ForDay(Sunday)=%q, want %q", got, builtin[0])
	}
	if got := p.ForDay(time.Saturday); got != builtin[6] {
		t.Fatalf("ForDay(Saturday)=%q, want %q", got, builtin[6])
	}
}

func TestTipRandomStaysInRange(t *testing.T) {
	p := NewTipProvider([]string{"a", " ", "b"})
	if p.Len() != 2 {
		t.Fatalf("blank tips should be dropped, Len()=%d", p.Len())
	}
	r := rand.New(rand.NewSource(1))
	for i := 0; i < 50; i++ {
		if tip := p.Random(r); tip != "a" && tip != "b" {
			t.Fatalf("Random()=%q", tip)
		}
	}
	// Fewer tips than weekdays wraps around.
	if got := p.ForDay(time.Tuesday); got != "a" {
		t.Fatalf("ForDay(Tuesday)=%q, want a", got)
	}
}

func TestLoadTipProvider(t *testing.T) {
	dir := t.TempDir()

	p, err := LoadTipProvider(filepath.Join(dir, "missing.json"))
	if err != nil || p.Len() != len(catalog.Tips()) {
		t.Fatalf("missing file should fall back to defaults: %v", err)
	}

	path := filepath.Join(dir, "tips.json")
	if err := os.WriteFile(path, []byte(`["Fix leaky taps","Buy second-hand"]`), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	p, err = LoadTipProvider(path)
	if err != nil {
		t.Fatalf("LoadTipProvider: %v", err)
	}
	if p.Len() != 2 || p.ForDay(time.Monday) != "Buy second-hand" {
		t.Fatalf("unexpected tips provider: len=%d", p.Len())
	}

	bad := filepath.Join(dir, "bad.json")
	if err := os.WriteFile(bad, []byte(`{"tips":1}`), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := LoadTipProvider(bad); err == nil {
		t.Fatalf("expected malformed tips file to fail")
	}
}
