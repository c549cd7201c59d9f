package version

import (
	"runtime/debug"
	"strings"
	"sync"
)

const (
	versionDevel   = "devel"
	versionUnknown = "unknown"
)

// version is set via ldflags at build time:
//
//	-ldflags "-X github.com/garrettladley/ecoscan/internal/version.version=v1.2.3"
//
// go install builds fall back to the module version from build info.
var version = versionDevel

var once sync.Once

func Get() string {
	once.Do(func() {
		if version != versionDevel {
			return
		}
		info, ok := debug.ReadBuildInfo()
		if !ok {
			return
		}
		if v := info.Main.Version; v != "" && v != "("+versionDevel+")" {
			version = v
		}
	})
	return version
}

// IsDevelopment reports whether v is a local or pseudo-version build.
func IsDevelopment(v string) bool {
	return v == versionDevel || v == versionUnknown || v == "" ||
		strings.Contains(v, "dirty") ||
		strings.Contains(v, "-0.")
}

// Short trims a pseudo-version down to something that fits in the footer.
func Short(v string) string {
	if v == "" {
		return versionUnknown
	}
	if i := strings.Index(v, "-0."); i > 0 {
		return v[:i] + "-dev"
	}
	return v
}
