package version

import (
	"fmt"
	"runtime"
)

// Version is set at build time with -ldflags "-X github.com/cloudposse/yamlbridge/pkg/version.Version=...".
var Version = "test"

// String returns the version line printed by the CLI.
func String() string {
	return fmt.Sprintf("yamlbridge %s on %s/%s", Version, runtime.GOOS, runtime.GOARCH)
}
