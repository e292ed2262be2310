package service

import (
	"github.com/MKhiriev/bedrock-server-manager/internal/logger"
	"github.com/MKhiriev/bedrock-server-manager/internal/store"
)

type Services struct {
	ConfigLoader    ConfigLoader
	StartupReporter StartupReporter
}

func NewServices(storages *store.Storages, logger *logger.Logger) *Services {
	return &Services{
		ConfigLoader:    NewConfigLoader(storages.DocumentReader, logger),
		StartupReporter: NewStartupReporter(logger),
	}
}
