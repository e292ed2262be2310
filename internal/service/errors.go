package service

import "fmt"

// Names of the startup documents as they appear in [ConfigLoadError].
const (
	DocumentServerConfig = "server-config.json"
	DocumentPermissions  = "permissions.json"
)

// ConfigLoadError is returned by [ConfigLoader.Load] when a startup document
// cannot be read or parsed. Both kinds of failure are reported the same way;
// the cause stays reachable through errors.Is / errors.As.
type ConfigLoadError struct {
	Document string
	Path     string
	Err      error
}

func (e *ConfigLoadError) Error() string {
	return fmt.Sprintf("error loading configuration files: %s (%s): %v", e.Document, e.Path, e.Err)
}

func (e *ConfigLoadError) Unwrap() error {
	return e.Err
}
