// Copyright The Mantle Authors
// SPDX-License-Identifier: Apache-2.0

package version

// Version is overridden at build time with
// -ldflags "-X github.com/flatcar/fileserve/version.Version=..."
var Version = "was not built properly"
