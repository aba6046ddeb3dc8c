// Copyright The Mantle Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/coreos/pkg/capnslog"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/flatcar/fileserve/cli"
	"github.com/flatcar/fileserve/server"
)

var (
	plog = capnslog.NewPackageLogger("github.com/flatcar/fileserve", "fileserve")

	root = &cobra.Command{
		Use:   "fileserve",
		Short: "Serve the current directory over HTTP",
		Long: `Serve the files below the current working directory over HTTP until
interrupted. Directories are answered with their index.html or a generated
listing.`,
		Args: cobra.NoArgs,
		RunE: runServe,
	}

	cfg = server.DefaultConfig("")
)

func init() {
	cfg.AddFlags(root.Flags())
}

func runServe(cmd *cobra.Command, args []string) error {
	wd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("resolving working directory: %w", err)
	}
	cfg.Root = wd

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return serve(ctx, cmd, cfg)
}

func serve(ctx context.Context, cmd *cobra.Command, cfg server.Config) error {
	srv, err := server.Listen(cfg)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Serving %s at %s\n", cfg.Root, color.CyanString(srv.URL()))
	fmt.Fprintln(out, "Press Ctrl+C to stop the server.")

	if err := srv.Serve(ctx); err != nil {
		return err
	}
	plog.Debugf("Server state %s", srv.State())

	fmt.Fprintln(out, "\nServer stopped.")
	return nil
}

func main() {
	cli.Execute(root)
}
