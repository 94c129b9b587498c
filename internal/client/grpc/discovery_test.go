package grpc

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func TestDiscoverServerAddressEnv(t *testing.T) {
	t.Setenv("ROUTEGUIDE_SERVER", "example.com:1234")

	if got := discoverServerAddress(); got != "example.com:1234" {
		t.Errorf("discoverServerAddress() = %q, want env value", got)
	}
}

func TestDiscoverServerAddressFile(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("cache dir override relies on XDG_CACHE_HOME")
	}

	cacheDir := t.TempDir()
	t.Setenv("XDG_CACHE_HOME", cacheDir)
	t.Setenv("ROUTEGUIDE_SERVER", "")

	dir := filepath.Join(cacheDir, "routeguide")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}

	data := []byte(`{"address": "localhost:9999", "port": 9999, "pid": 1234}`)
	if err := os.WriteFile(filepath.Join(dir, "server.json"), data, 0o644); err != nil {
		t.Fatal(err)
	}

	if got := discoverServerAddress(); got != "localhost:9999" {
		t.Errorf("discoverServerAddress() = %q, want %q", got, "localhost:9999")
	}
}

func TestDiscoverServerAddressDefault(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("cache dir override relies on XDG_CACHE_HOME")
	}

	// Empty cache dir and no env var: fall back to the default address.
	t.Setenv("XDG_CACHE_HOME", t.TempDir())
	t.Setenv("ROUTEGUIDE_SERVER", "")

	if got := discoverServerAddress(); got != defaultServerAddress {
		t.Errorf("discoverServerAddress() = %q, want %q", got, defaultServerAddress)
	}
}
