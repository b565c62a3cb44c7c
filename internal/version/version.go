// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package version reports the schemagen build and the metamodel it emits.
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"

	"github.com/dacolabs/schemagen/internal/metamodel"
)

// Set with -ldflags "-X github.com/dacolabs/schemagen/internal/version.Version=...".
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// Build describes a schemagen binary.
type Build struct {
	Version   string
	Commit    string
	Date      string
	GoVersion string
	MetaModel string
}

// Current returns the running binary's build, filling values that were not
// stamped at link time from the module build info.
func Current() Build {
	b := Build{
		Version:   Version,
		Commit:    Commit,
		Date:      Date,
		GoVersion: runtime.Version(),
		MetaModel: metamodel.DefaultNamespace,
	}
	if info, ok := debug.ReadBuildInfo(); ok {
		b = b.withBuildInfo(info)
	}
	return b
}

// withBuildInfo fills unset fields from info. Go install records the module
// version; VCS stamping records the revision and commit time.
func (b Build) withBuildInfo(info *debug.BuildInfo) Build {
	if b.Version == "dev" && info.Main.Version != "" && info.Main.Version != "(devel)" {
		b.Version = info.Main.Version
	}
	var revision string
	var dirty bool
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			revision = s.Value
		case "vcs.modified":
			dirty = s.Value == "true"
		case "vcs.time":
			if b.Date == "unknown" {
				b.Date = s.Value
			}
		}
	}
	if b.Commit == "none" && len(revision) >= 7 {
		b.Commit = revision[:7]
		if dirty {
			b.Commit += "-dirty"
		}
	}
	return b
}

func (b Build) String() string {
	return fmt.Sprintf("schemagen version %s (commit: %s, built: %s, go: %s, metamodel: %s)",
		b.Version, b.Commit, b.Date, b.GoVersion, b.MetaModel)
}

// Info returns the version line printed by the version command.
func Info() string {
	return Current().String()
}

// Short returns the version alone.
func Short() string {
	return Current().Version
}
