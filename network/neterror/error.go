// Copyright The Mantle Authors
// SPDX-License-Identifier: Apache-2.0

package neterror

import (
	"errors"
	"net"
)

// IsClosed detects if an error is due to a closed network connection
// or listener.
func IsClosed(err error) bool {
	if err == nil {
		return false
	}
	return errors.Is(err, net.ErrClosed)
}

// IsAddrInUse detects if a listen error was caused by the address
// already being bound by another socket.
func IsAddrInUse(err error) bool {
	if err == nil {
		return false
	}
	return errors.Is(err, errAddrInUse)
}
