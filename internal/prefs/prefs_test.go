package prefs

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_DefaultsWhenMissing(t *testing.T) {
	store := NewStore(t.TempDir())
	p, err := store.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if p.SelectedCategory != "MyList" || p.Theme != ThemeSystem {
		t.Errorf("defaults = %+v", p)
	}
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	store := NewStore(dir)

	want := Prefs{SelectedCategory: "Work", Theme: ThemeDark}
	if err := store.Save(want); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	got, err := store.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if got != want {
		t.Errorf("Load = %+v, want %+v", got, want)
	}
}

func TestSave_CreatesConfigDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "config")
	store := NewStore(dir)
	if err := store.Save(Prefs{SelectedCategory: "Study", Theme: ThemeLight}); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "prefs.json")); err != nil {
		t.Errorf("prefs file not created: %v", err)
	}
}

func TestLoad_CorruptFileErrors(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "prefs.json"), []byte("{not json"), 0600); err != nil {
		t.Fatal(err)
	}
	if _, err := NewStore(dir).Load(); err == nil {
		t.Error("corrupt prefs file loaded without error")
	}
}
