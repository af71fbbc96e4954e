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
		req        handler.UserRequest
		configPath string
	)

	root := &cobra.Command{
		Use:           "users",
		Short:         "Create, edit, delete and list message board users",
		Version:       cli.Version(buildVersion, buildDate, buildCommit),
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().NFlag() == 0 {
				return cmd.Help()
			}

			a, err := cli.NewApp("users", configPath, cmd.OutOrStdout())
			if err != nil {
				return err
			}

			err = a.Run(cmd.Context(), func(ctx context.Context, h *handler.Handlers) error {
				return h.Users.Run(ctx, req)
			})
			if errors.Is(err, handler.ErrNoCommand) {
				return cmd.Help()
			}

			return err
		},
	}

	flags := root.Flags()
	flags.StringVarP(&req.Username, "username", "u", "", "user login")
	flags.StringVarP(&req.Password, "password", "p", "", "user password (min 8 characters)")
	flags.StringVarP(&req.NewPassword, "new_pass", "n", "", "new password (min 8 characters)")
	flags.BoolVarP(&req.List, "list", "l", false, "list all users")
	flags.BoolVarP(&req.Delete, "delete", "d", false, "delete the user")
	flags.BoolVarP(&req.Edit, "edit", "e", false, "change the user's password")
	flags.StringVarP(&configPath, "config", "c", "", "path to a JSON config file")

	return root
}
