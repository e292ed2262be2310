package store

import "github.com/MKhiriev/bedrock-server-manager/internal/config"

// Storages groups every storage backend the process uses.
type Storages struct {
	DocumentReader DocumentReader
}

// NewStorages wires the file-backed document reader for the given files
// configuration.
func NewStorages(files config.Files) *Storages {
	return &Storages{
		DocumentReader: NewJSONFileReader(files),
	}
}
