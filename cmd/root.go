// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

// Package cmd implements the azfp command line interface.
package cmd

import (
	"io"
	"log"
	"os"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	var enableDebugLogging bool

	cmd := &cobra.Command{
		Use:   "azfp",
		Short: "Generate ARM deployment templates for Azure Function Apps",
		Long: heredoc.Doc(`
			azfp translates a declarative service configuration into an ARM deployment
			template and parameter file for an Azure Function App and its companion
			resources (storage account, Application Insights component).

			Start from scratch with "azfp init", then produce deployment artifacts
			with "azfp generate". The generated template and parameters are consumed
			by your deployment pipeline; azfp itself never talks to Azure.`),
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			log.SetFlags(log.LstdFlags | log.Lshortfile)

			if !enableDebugLogging {
				log.SetOutput(io.Discard)
			}
		},
		SilenceUsage: true,
	}

	cmd.PersistentFlags().BoolVar(&enableDebugLogging, "debug", false, "Enable debug logging")
	cmd.CompletionOptions.HiddenDefaultCmd = true

	cmd.AddCommand(newInitCmd())
	cmd.AddCommand(newGenerateCmd())

	return cmd
}

// Execute runs the root command against os.Args.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
