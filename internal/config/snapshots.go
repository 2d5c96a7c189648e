package config

// SnapshotConfig controls dumping raw upstream responses to disk for
// debugging. Disabled unless a directory is configured.
type SnapshotConfig struct {
	Dir string
}

// Enabled reports whether snapshot dumps should be written.
func (c SnapshotConfig) Enabled() bool {
	return c.Dir != ""
}

func loadSnapshots() SnapshotConfig {
	return SnapshotConfig{
		Dir: envOrDefault(envSnapshotDir, ""),
	}
}
