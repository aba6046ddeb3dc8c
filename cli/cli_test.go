// Copyright The Mantle Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"bytes"
	"errors"
	"testing"

	"github.com/coreos/pkg/capnslog"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrapPreRun(t *testing.T) {
	t.Run("Order", func(t *testing.T) {
		var calls []string
		root := &cobra.Command{
			PersistentPreRun: func(cmd *cobra.Command, args []string) {
				calls = append(calls, "original")
			},
		}
		WrapPreRun(root, func(cmd *cobra.Command, args []string) error {
			calls = append(calls, "wrapper")
			return nil
		})

		assert.Nil(t, root.PersistentPreRun)
		require.NoError(t, root.PersistentPreRunE(root, nil))
		assert.Equal(t, []string{"wrapper", "original"}, calls)
	})
	t.Run("WrapperError", func(t *testing.T) {
		errStop := errors.New("stop")
		called := false
		root := &cobra.Command{
			PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
				called = true
				return nil
			},
		}
		WrapPreRun(root, func(cmd *cobra.Command, args []string) error {
			return errStop
		})

		assert.ErrorIs(t, root.PersistentPreRunE(root, nil), errStop)
		assert.False(t, called)
	})
}

func TestRun(t *testing.T) {
	var out bytes.Buffer
	ran := false
	main := &cobra.Command{
		Use: "tool",
		RunE: func(cmd *cobra.Command, args []string) error {
			ran = true
			return nil
		},
	}
	main.SetOut(&out)
	main.SetErr(&out)
	main.SetArgs([]string{"--verbose"})

	assert.Equal(t, 0, run(main))
	assert.True(t, ran)
	assert.Equal(t, capnslog.INFO, logLevel)

	failing := &cobra.Command{
		Use: "tool",
		RunE: func(cmd *cobra.Command, args []string) error {
			return errors.New("boom")
		},
	}
	failing.SetOut(&out)
	failing.SetErr(&out)
	failing.SetArgs([]string{})
	assert.Equal(t, 1, run(failing))
	assert.Contains(t, out.String(), "boom")
}
