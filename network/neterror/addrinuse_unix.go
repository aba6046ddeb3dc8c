// Copyright The Mantle Authors
// SPDX-License-Identifier: Apache-2.0

//go:build unix

package neterror

import "golang.org/x/sys/unix"

var errAddrInUse error = unix.EADDRINUSE
