package service

import (
	"github.com/MKhiriev/bedrock-server-manager/internal/app"
	"github.com/MKhiriev/bedrock-server-manager/internal/logger"
	"github.com/MKhiriev/bedrock-server-manager/models"
)

type startupReporter struct {
	logger *logger.Logger
}

// NewStartupReporter constructs a [StartupReporter] that writes through
// logger at Info level.
func NewStartupReporter(logger *logger.Logger) StartupReporter {
	return &startupReporter{logger: logger}
}

// Report emits the server lines followed by the permissions notice.
func (r *startupReporter) Report(loaded models.LoadedConfig) {
	r.ReportServer(loaded.Server)
	r.ReportPermissions(loaded.Permissions)
}

func (r *startupReporter) ReportServer(cfg models.ServerConfig) {
	r.logger.Info().Msgf(app.MsgStartingServer, cfg.Name)
	r.logger.Info().Msgf(app.MsgListeningOnPort, cfg.Port)
	r.logger.Info().Msgf(app.MsgMaxPlayers, cfg.MaxPlayers)
}

// ReportPermissions only announces the step; no rule from doc is applied.
func (r *startupReporter) ReportPermissions(_ models.PermissionsDocument) {
	r.logger.Info().Msg(app.MsgSettingUpPermissions)
}

func (r *startupReporter) ReportBuildInfo(info models.AppBuildInfo) {
	r.logger.Debug().
		Str("version", info.BuildVersion()).
		Str("date", info.BuildDate()).
		Str("commit", info.BuildCommit()).
		Msg("build info")
}
