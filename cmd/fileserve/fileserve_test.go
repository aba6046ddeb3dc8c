// Copyright The Mantle Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"bytes"
	"context"
	"net"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flatcar/fileserve/server"
)

func TestServeUntilInterrupted(t *testing.T) {
	var out bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&out)

	root := t.TempDir()
	ctx, cancel := context.WithCancel(context.Background())
	// An already delivered interrupt still goes through the full
	// start, serve and stop sequence.
	cancel()

	err := serve(ctx, cmd, server.Config{Address: "127.0.0.1", Root: root})
	require.NoError(t, err)

	got := out.String()
	assert.Contains(t, got, "Serving "+root+" at http://127.0.0.1:")
	assert.Contains(t, got, "Press Ctrl+C to stop the server.\n")
	assert.Contains(t, got, "\nServer stopped.\n")
}

func TestServeBindFailure(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer ln.Close()

	var out bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&out)

	port := ln.Addr().(*net.TCPAddr).Port
	err = serve(context.Background(), cmd, server.Config{Address: "127.0.0.1", Port: port, Root: t.TempDir()})

	assert.ErrorIs(t, err, server.ErrBind)
	assert.Empty(t, out.String())
}

func TestRootCommand(t *testing.T) {
	assert.NoError(t, root.Args(root, nil))
	assert.Error(t, root.Args(root, []string{"somewhere"}))

	port := root.Flags().Lookup("port")
	require.NotNil(t, port)
	assert.Equal(t, "4002", port.DefValue)
	assert.NotNil(t, root.Flags().Lookup("address"))
}
