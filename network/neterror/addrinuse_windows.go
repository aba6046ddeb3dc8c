// Copyright The Mantle Authors
// SPDX-License-Identifier: Apache-2.0

package neterror

import "golang.org/x/sys/windows"

var errAddrInUse error = windows.WSAEADDRINUSE
