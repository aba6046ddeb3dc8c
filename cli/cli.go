// Copyright The Mantle Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"os"

	"github.com/coreos/pkg/capnslog"
	"github.com/spf13/cobra"

	"github.com/flatcar/fileserve/version"
)

var (
	versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Print the version number and exit.",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Printf("%s version %s\n",
				cmd.Root().Name(), version.Version)
		},
	}

	logDebug   bool
	logVerbose bool
	logLevel   = capnslog.NOTICE

	plog = capnslog.NewPackageLogger("github.com/flatcar/fileserve", "cli")
)

// Execute sets up common features that all fileserve commands should share
// and then executes the command. It does not return.
func Execute(main *cobra.Command) {
	os.Exit(run(main))
}

func run(main *cobra.Command) int {
	main.AddCommand(versionCmd)
	main.SilenceUsage = true

	main.PersistentFlags().Var(&logLevel, "log-level",
		"Set global log level.")
	main.PersistentFlags().BoolVarP(&logVerbose, "verbose", "v", false,
		"Alias for --log-level=INFO")
	main.PersistentFlags().BoolVarP(&logDebug, "debug", "d", false,
		"Alias for --log-level=DEBUG")

	WrapPreRun(main, func(cmd *cobra.Command, args []string) error {
		startLogging(cmd)
		return nil
	})

	if err := main.Execute(); err != nil {
		plog.Error(err)
		return 1
	}
	return 0
}

func startLogging(cmd *cobra.Command) {
	switch {
	case logDebug:
		logLevel = capnslog.DEBUG
	case logVerbose:
		logLevel = capnslog.INFO
	}

	capnslog.SetFormatter(capnslog.NewStringFormatter(cmd.ErrOrStderr()))
	capnslog.SetGlobalLogLevel(logLevel)

	plog.Infof("Started logging at level %s", logLevel)
}

type PreRunEFunc func(cmd *cobra.Command, args []string) error

// WrapPreRun runs f before any PersistentPreRun or PersistentPreRunE
// already set on root.
func WrapPreRun(root *cobra.Command, f PreRunEFunc) {
	preRun, preRunE := root.PersistentPreRun, root.PersistentPreRunE
	root.PersistentPreRun, root.PersistentPreRunE = nil, nil

	root.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		if err := f(cmd, args); err != nil {
			return err
		}
		if preRun != nil {
			preRun(cmd, args)
		} else if preRunE != nil {
			return preRunE(cmd, args)
		}
		return nil
	}
}
