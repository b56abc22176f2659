// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/katalvlaran/stochastic"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of stochastic",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "stochastic version %s\n", stochastic.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
