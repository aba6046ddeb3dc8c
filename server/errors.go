// Copyright The Mantle Authors
// SPDX-License-Identifier: Apache-2.0

package server

import (
	"errors"
	"fmt"

	"github.com/flatcar/fileserve/network/neterror"
)

// ErrBind matches every error returned by Listen when the listening
// socket could not be created.
var ErrBind = errors.New("bind failed")

// BindError reports a failure to bind the listening socket.
type BindError struct {
	Addr string
	Err  error
}

func (e *BindError) Error() string {
	if e.AddrInUse() {
		return fmt.Sprintf("cannot listen on %s: address already in use", e.Addr)
	}
	return fmt.Sprintf("cannot listen on %s: %v", e.Addr, e.Err)
}

func (e *BindError) Unwrap() error {
	return e.Err
}

func (e *BindError) Is(target error) bool {
	return target == ErrBind
}

// AddrInUse reports whether another socket already holds the address.
func (e *BindError) AddrInUse() bool {
	return neterror.IsAddrInUse(e.Err)
}
