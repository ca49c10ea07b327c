package service

import (
	"github.com/Rohit-Gupta-Web3/Sharp-Reports-AllTime/internal/config"
	"github.com/Rohit-Gupta-Web3/Sharp-Reports-AllTime/internal/storage"
)

// Services holds all service instances used by the application
type Services struct {
	Entry   *EntryService
	Summary *SummaryService
	Config  *ConfigService
}

// NewServices creates a new Services instance with default paths
func NewServices() (*Services, error) {
	storagePath, err := storage.GetStoragePath()
	if err != nil {
		return nil, err
	}

	configPath, err := config.GetConfigPath()
	if err != nil {
		return nil, err
	}

	cfg, err := config.LoadOrDefault(configPath)
	if err != nil {
		return nil, err
	}

	return NewServicesWithPaths(storagePath, configPath, cfg), nil
}

// NewServicesWithPaths creates a new Services instance with custom paths (useful for testing)
func NewServicesWithPaths(storagePath, configPath string, cfg config.Config) *Services {
	return &Services{
		Entry:   NewEntryService(storagePath, cfg),
		Summary: NewSummaryService(storagePath, cfg),
		Config:  NewConfigService(configPath, cfg),
	}
}
