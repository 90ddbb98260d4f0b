package consts

import "path/filepath"

// Constants for configuration paths and defaults
const (
	AppName = "alpforge"

	// RecordDirName is the well-known directory holding one installed
	// record file per component id.
	RecordDirName = "/var/lib/alpforge/installed"

	// DefaultCatalogFile is looked up before falling back to the
	// embedded catalog.
	DefaultCatalogFile = "/etc/alpforge/catalog.yaml"

	// ConnectivityURL is probed during prerequisite checks.
	ConnectivityURL = "https://dl-cdn.alpinelinux.org/alpine/"

	// DefaultPriority is assigned to components that declare none.
	// Lower numbers install earlier.
	DefaultPriority = 9999
)

// RecordPath returns the record file path for a component id.
// The file name is the component id itself.
func RecordPath(dir, id string) string {
	return filepath.Join(dir, id)
}
