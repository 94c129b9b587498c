package grpc

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/inovacc/routeguide/internal/application"
	"github.com/inovacc/routeguide/internal/process"
)

// ErrNoServerInfo indicates no server info file exists.
var ErrNoServerInfo = errors.New("no server info file")

// ServerInfo describes a running server instance so clients and lifecycle
// commands can discover it without configuration.
type ServerInfo struct {
	Address    string    `json:"address"`
	Port       int       `json:"port"`
	PID        int       `json:"pid"`
	InstanceID string    `json:"instance_id"`
	StartedAt  time.Time `json:"started_at"`
}

// ServerInfoPath returns the path to the server.json discovery file.
func ServerInfoPath() (string, error) {
	cacheDir, err := os.UserCacheDir()
	if err != nil {
		return "", fmt.Errorf("failed to get cache directory: %w", err)
	}

	return filepath.Join(cacheDir, application.AppName, "server.json"), nil
}

// ReadServerInfo reads the server info file if it exists.
func ReadServerInfo() (*ServerInfo, error) {
	path, err := ServerInfoPath()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNoServerInfo
		}

		return nil, fmt.Errorf("failed to read server info: %w", err)
	}

	var info ServerInfo
	if err := json.Unmarshal(data, &info); err != nil {
		return nil, fmt.Errorf("failed to parse server info: %w", err)
	}

	return &info, nil
}

// IsServerRunning reports whether a routeguide server is already running,
// returning its info if so. A stale file left behind by a dead process is
// cleaned up.
func IsServerRunning() *ServerInfo {
	info, err := ReadServerInfo()
	if err != nil {
		return nil
	}

	if process.Take().RunningWithName(info.PID, application.AppExeName) {
		return info
	}

	RemoveServerInfo()

	return nil
}

// WriteServerInfo writes the discovery file for this process.
func WriteServerInfo(port int) error {
	path, err := ServerInfoPath()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create cache directory: %w", err)
	}

	info := ServerInfo{
		Address:    fmt.Sprintf("localhost:%d", port),
		Port:       port,
		PID:        os.Getpid(),
		InstanceID: uuid.NewString(),
		StartedAt:  time.Now(),
	}

	data, err := json.MarshalIndent(info, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal server info: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write server info file: %w", err)
	}

	return nil
}

// RemoveServerInfo removes the discovery file. Errors are ignored; this is
// cleanup on shutdown.
func RemoveServerInfo() {
	path, err := ServerInfoPath()
	if err != nil {
		return
	}

	_ = os.Remove(path)
}
