// Package buildinfo tells the version of the regoth-save binary.
package buildinfo

import "runtime/debug"

// BuildInfo cotains build information supplied at compile time.
type BuildInfo struct {
	Version    string // build version. e.g. v0.10.0
	CommitHash string // commit hash in vcs. e.g. git commit hash
}

var (
	// Those parameter can be supplied from compiler.
	// go build -ldflags "-X github.com/KirmesBude/REGoth/infra/buildinfo.version=v0.1.2 -X github.com/KirmesBude/REGoth/infra/buildinfo.commitHash=###"
	version    string = "dev"
	commitHash string = "none"
)

const (
	defaultVersion    = "dev"
	defaultCommitHash = "none"
)

// Get returns BuildInfo filling with information supplied at compile time.
// Without it, the module version and vcs revision recorded by the go command
// are used if any.
func Get() BuildInfo {
	b := BuildInfo{
		Version:    version,
		CommitHash: commitHash,
	}
	if b.Version != defaultVersion && b.CommitHash != defaultCommitHash {
		return b
	}
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return b
	}
	if v := info.Main.Version; b.Version == defaultVersion && v != "" && v != "(devel)" {
		b.Version = v
	}
	if b.CommitHash == defaultCommitHash {
		for _, s := range info.Settings {
			if s.Key == "vcs.revision" && s.Value != "" {
				b.CommitHash = s.Value
			}
		}
	}
	return b
}

// String returns "<version> (commit: <hash>)".
func (b BuildInfo) String() string {
	return b.Version + " (commit: " + b.CommitHash + ")"
}
