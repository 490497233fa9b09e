package wpapath

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func writeExecutable(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte("#!/bin/sh\n"), 0o755); err != nil {
		t.Fatalf("write executable: %v", err)
	}
	return path
}

func TestSearchPathFindsFirstHit(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("executable bit semantics differ on windows")
	}
	dirA := t.TempDir()
	dirB := t.TempDir()
	writeExecutable(t, dirA, "wpa_supplicant")
	writeExecutable(t, dirB, "wpa_supplicant")

	got, err := searchPath("wpa_supplicant", dirA+string(os.PathListSeparator)+dirB)
	if err != nil {
		t.Fatalf("searchPath: %v", err)
	}
	want := filepath.Join(dirA, "wpa_supplicant")
	if got != want {
		t.Errorf("got %q, want %q (first hit should win)", got, want)
	}
}

func TestSearchPathSkipsNonExecutable(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("executable bit semantics differ on windows")
	}
	dirA := t.TempDir()
	dirB := t.TempDir()
	if err := os.WriteFile(filepath.Join(dirA, "wpa_cli"), []byte("not executable"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	writeExecutable(t, dirB, "wpa_cli")

	got, err := searchPath("wpa_cli", dirA+string(os.PathListSeparator)+dirB)
	if err != nil {
		t.Fatalf("searchPath: %v", err)
	}
	want := filepath.Join(dirB, "wpa_cli")
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestSearchPathNotFound(t *testing.T) {
	dir := t.TempDir()
	_, err := searchPath("does-not-exist-anywhere", dir)
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestSearchPathSkipsDirectoryEntries(t *testing.T) {
	dir := t.TempDir()
	if err := os.Mkdir(filepath.Join(dir, "wpa_cli"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	_, err := searchPath("wpa_cli", dir)
	if err == nil {
		t.Fatal("expected error, directory entries must not match")
	}
}

func TestSearchPathIgnoresEmptyPathEntries(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("executable bit semantics differ on windows")
	}
	dir := t.TempDir()
	writeExecutable(t, dir, "wpa_cli")

	got, err := searchPath("wpa_cli", "::"+dir+"::")
	if err != nil {
		t.Fatalf("searchPath: %v", err)
	}
	if got != filepath.Join(dir, "wpa_cli") {
		t.Errorf("got %q", got)
	}
}
