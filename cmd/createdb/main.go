// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-msg-board/internal/cli"
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
	var configPath string

	root := &cobra.Command{
		Use:           "createdb",
		Short:         "Create the message board database and its tables",
		Version:       cli.Version(buildVersion, buildDate, buildCommit),
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := cli.NewApp("createdb", configPath, cmd.OutOrStdout())
			if err != nil {
				return err
			}

			return a.CreateDatabase(cmd.Context())
		},
	}

	root.Flags().StringVarP(&configPath, "config", "c", "", "path to a JSON config file")

	return root
}
