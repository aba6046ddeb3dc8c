// Copyright The Mantle Authors
// SPDX-License-Identifier: Apache-2.0

//go:build !unix && !windows

package neterror

import "errors"

// No portable errno exists here; nothing is classified as in use.
var errAddrInUse = errors.New("address already in use")
