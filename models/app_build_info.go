// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Domy v Itálii

package models

// AppBuildInfo is the version/date/commit triple stamped into a binary
// by the linker. The fields stay unexported so the value cannot be
// altered after the binary starts.
type AppBuildInfo struct {
	buildVersion string
	buildDate    string
	buildCommit  string
}

// NewAppBuildInfo wraps the three ldflags values.
func NewAppBuildInfo(buildVersion, buildDate, buildCommit string) AppBuildInfo {
	return AppBuildInfo{
		buildVersion: buildVersion,
		buildDate:    buildDate,
		buildCommit:  buildCommit,
	}
}

// BuildVersion returns the release version of the binary.
func (a AppBuildInfo) BuildVersion() string {
	return a.buildVersion
}

// BuildDate returns when the binary was built.
func (a AppBuildInfo) BuildDate() string {
	return a.buildDate
}

// BuildCommit returns the commit the binary was built from.
func (a AppBuildInfo) BuildCommit() string {
	return a.buildCommit
}
