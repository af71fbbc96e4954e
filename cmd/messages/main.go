// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"errors"
	"os"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-msg-board/internal/cli"
	"github.com/MKhiriev/go-msg-board/internal/handler"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var (
		req        handler.MessageRequest
		configPath string
	)

	root := &cobra.Command{
		Use:           "messages",
		Short:         "List received messages and send new ones",
		Version:       cli.Version(buildVersion, buildDate, buildCommit),
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().NFlag() == 0 {
				return cmd.Help()
			}
			req.Send = cmd.Flags().Changed("send")

			a, err := cli.NewApp("messages", configPath, cmd.OutOrStdout())
			if err != nil {
				return err
			}

			err = a.Run(cmd.Context(), func(ctx context.Context, h *handler.Handlers) error {
				return h.Messages.Run(ctx, req)
			})
			if errors.Is(err, handler.ErrNoCommand) {
				return cmd.Help()
			}

			return err
		},
	}

	flags := root.Flags()
	flags.StringVarP(&req.Username, "username", "u", "", "user login")
	flags.StringVarP(&req.Password, "password", "p", "", "user password")
	flags.BoolVarP(&req.List, "list", "l", false, "list messages received by the user")
	flags.StringVarP(&req.To, "to", "t", "", "recipient username")
	flags.StringVarP(&req.Text, "send", "s", "", "message text (max 255 characters)")
	flags.StringVarP(&configPath, "config", "c", "", "path to a JSON config file")

	return root
}
