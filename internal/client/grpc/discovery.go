package grpc

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/inovacc/routeguide/internal/application"
)

const defaultServerAddress = "localhost:8980"

// serverInfo mirrors the discovery file the server writes on startup. Only
// the fields the client needs are decoded here.
type serverInfo struct {
	Address string `json:"address"`
	Port    int    `json:"port"`
	PID     int    `json:"pid"`
}

// discoverServerAddress determines the server address to connect to.
// Priority:
//  1. ROUTEGUIDE_SERVER environment variable
//  2. server.json discovery file in the user cache directory
//  3. default: localhost:8980
func discoverServerAddress() string {
	if addr := os.Getenv("ROUTEGUIDE_SERVER"); addr != "" {
		return addr
	}

	if cacheDir, err := os.UserCacheDir(); err == nil {
		path := filepath.Join(cacheDir, application.AppName, "server.json")
		if data, err := os.ReadFile(path); err == nil {
			var info serverInfo
			if err := json.Unmarshal(data, &info); err == nil {
				if info.Address != "" {
					return info.Address
				}
				if info.Port > 0 {
					return fmt.Sprintf("localhost:%d", info.Port)
				}
			}
		}
	}

	return defaultServerAddress
}
