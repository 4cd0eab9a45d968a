package config

// StorageConfig defines where per-site working files and logs are kept.
type StorageConfig struct {
	// Root directory holding one subdirectory per monitored site plus the main log.
	DataDir string `json:"data_dir,omitempty" yaml:"data_dir,omitempty" validate:"required"`
}

// NewDefaultStorageConfig creates default storage configuration
func NewDefaultStorageConfig() StorageConfig {
	return StorageConfig{
		DataDir: "data",
	}
}
