// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

// Package version formats the build metadata held in package info.
package version

import (
	"runtime"

	"github.com/mia-platform/diaglog/internal/info"
)

var (
	// Version defaults to info.Version and can be replaced at link time.
	Version = info.Version
	// BuildDate defaults to info.BuildDate and can be replaced at link time.
	BuildDate = info.BuildDate
)

// ServiceVersionInformation returns the version, the optional build date and the Go runtime version.
func ServiceVersionInformation() string {
	return Format(Version, BuildDate, runtime.Version())
}

// Format builds the version string from its parts, omitting an empty buildDate.
func Format(version, buildDate, runtimeVersion string) string {
	outputString := version
	if buildDate != "" {
		outputString += " (" + buildDate + ")"
	}

	return outputString + ", Go Version: " + runtimeVersion
}
