package config

import (
	"fmt"
	"net"
	"os"
	"strings"

	"github.com/hay-kot/criterio"
)

// ValidationWarning represents a non-fatal configuration issue.
type ValidationWarning struct {
	Category string `json:"category"`
	Item     string `json:"item,omitempty"`
	Message  string `json:"message"`
}

// Validate performs structural validation of the configuration.
func (c *Config) Validate() error {
	return criterio.ValidateStruct(
		criterio.Run("server.addr", c.Server.Addr, validAddr),
		criterio.Run("reviewer_id", c.ReviewerID, nonEmpty),
		criterio.Run("data_dir", c.DataDir, isDirectoryOrNotExist),
	)
}

// Warnings returns non-fatal configuration issues.
func (c *Config) Warnings() []ValidationWarning {
	var warnings []ValidationWarning

	if _, err := os.Stat(c.TrialsDir()); os.IsNotExist(err) {
		warnings = append(warnings, ValidationWarning{
			Category: "Data",
			Item:     c.TrialsDir(),
			Message:  "trials directory does not exist; the trial listing will be empty",
		})
	}

	if c.Server.ShutdownTimeout <= 0 {
		warnings = append(warnings, ValidationWarning{
			Category: "Server",
			Message:  "shutdown_timeout is not positive; in-flight requests will be dropped on shutdown",
		})
	}

	return warnings
}

// validAddr accepts host:port listen addresses, including ":8080".
func validAddr(addr string) error {
	if strings.TrimSpace(addr) == "" {
		return fmt.Errorf("listen address is required")
	}
	if _, _, err := net.SplitHostPort(addr); err != nil {
		return fmt.Errorf("invalid listen address %q: %w", addr, err)
	}
	return nil
}

func nonEmpty(s string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("value is required")
	}
	return nil
}

// isDirectoryOrNotExist validates that a path is a directory or doesn't
// exist yet.
func isDirectoryOrNotExist(path string) error {
	if path == "" {
		return nil
	}
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return nil // will be created
	}
	if err != nil {
		return fmt.Errorf("cannot access: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("exists but is not a directory")
	}
	return nil
}
