package configs

import "strings"

const (
	StorageMemory   = "memory"
	StoragePostgres = "postgres"
)

// Storage selects the repository implementation.
type Storage struct {
	// Driver is "memory" (default) or "postgres".
	Driver string `env:"DRIVER" envDefault:"memory"`
}

// Normalized returns the lower-cased driver name, or the empty string for
// an unknown driver.
func (c Storage) Normalized() string {
	switch d := strings.ToLower(strings.TrimSpace(c.Driver)); d {
	case StorageMemory, StoragePostgres:
		return d
	default:
		return ""
	}
}
