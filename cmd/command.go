// Copyright 2025 ZapFS Authors
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"os"

	"github.com/driftfs/objectgw/pkg/utils"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "objectgw",
	Short: "ObjectGW - a streaming S3-compatible object gateway",
	Long: `ObjectGW serves range-aware, backpressure-controlled GET requests
against a pluggable backend storage layer, speaking just enough of the S3
REST surface to retrieve objects and their metadata.`,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&utils.ConfigurationFileDirectory, "config_dir", ".", "Directory for configuration files")
}

func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
