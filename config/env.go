package config

import (
	"os"

	"github.com/joho/godotenv"
)

const DefaultSnapshotDir = "./data"

func init() {
	// Load env from .env. Missing file is fine; all settings have defaults.
	godotenv.Load()
}

// GetSnapshotDir returns the directory snapshot buckets are written to.
func GetSnapshotDir() string {
	dir := os.Getenv("SNAPSHOT_DIR")
	if dir == "" {
		return DefaultSnapshotDir
	}
	return dir
}
