// Copyright (C) BotCity. All rights reserved.
//
// SPDX-License-Identifier: Apache-2.0

// Package version reports the SDK release number.
package version

// Version is assigned the release number at compile time via
// -ldflags.
var Version string

// GetVersion returns the release number if it was assigned by the
// compiler, or "dev" otherwise.
func GetVersion() string {
	if Version != "" {
		return Version
	}
	return "dev"
}
