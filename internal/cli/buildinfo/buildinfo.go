// Package buildinfo exposes metadata injected at build time, for example:
//
//	go build -ldflags "-X github.com/gcstr/linefilter/internal/cli/buildinfo.version=1.0.0 \
//	  -X github.com/gcstr/linefilter/internal/cli/buildinfo.commit=$(git rev-parse HEAD)"
package buildinfo

import "runtime"

var (
	version   = "0.1.0-dev"
	commit    = ""
	date      = ""
	builtBy   = ""
	goVersion = ""
)

const unknown = "<unknown>"

// Info is the build metadata with defaults filled in for dev builds.
type Info struct {
	Version   string
	Commit    string
	Date      string
	BuiltBy   string
	GoVersion string
	OS        string
	Arch      string
}

// Read returns the current build metadata. Missing commit and date read as
// "<unknown>"; a missing Go version falls back to the running toolchain.
func Read() Info {
	i := Info{
		Version:   version,
		Commit:    commit,
		Date:      date,
		BuiltBy:   builtBy,
		GoVersion: goVersion,
		OS:        runtime.GOOS,
		Arch:      runtime.GOARCH,
	}
	if i.Commit == "" {
		i.Commit = unknown
	}
	if i.Date == "" {
		i.Date = unknown
	}
	if i.GoVersion == "" {
		i.GoVersion = runtime.Version()
	}
	return i
}

// Version returns the semantic version string.
func Version() string { return version }

// VersionSimple returns the version with a short commit hash, for --version.
func VersionSimple() string {
	if commit == "" {
		return version
	}
	short := commit
	if len(short) > 7 {
		short = short[:7]
	}
	return version + " (" + short + ")"
}
