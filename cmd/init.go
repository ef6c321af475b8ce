// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package cmd

import (
	"fmt"
	"os"

	"github.com/AlecAivazis/survey/v2"
	"github.com/MakeNowJust/heredoc/v2"
	"github.com/azure/azure-functions-provision/pkg/project"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func newInitCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a starter service configuration",
		Long: heredoc.Doc(`
			Init prompts for the service name, runtime and hosting OS and writes a
			starter configuration file. Existing files are never overwritten.`),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInit(configPath)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "azure.yaml", "Path the configuration file is written to")

	return cmd
}

func runInit(configPath string) error {
	if _, err := os.Stat(configPath); err == nil {
		return fmt.Errorf("%s already exists, refusing to overwrite", configPath)
	}

	var serviceName string
	if err := survey.AskOne(&survey.Input{
		Message: "Service name:",
	}, &serviceName, survey.WithValidator(survey.Required)); err != nil {
		return fmt.Errorf("prompting for service name: %w", err)
	}

	runtimeOptions := make([]string, 0)
	for _, runtime := range project.Runtimes() {
		runtimeOptions = append(runtimeOptions, string(runtime))
	}

	var runtimeIndex int
	if err := survey.AskOne(&survey.Select{
		Message: "Language runtime:",
		Options: runtimeOptions,
	}, &runtimeIndex); err != nil {
		return fmt.Errorf("prompting for runtime: %w", err)
	}

	var osIndex int
	if err := survey.AskOne(&survey.Select{
		Message: "Hosting OS:",
		Options: []string{string(project.OSWindows), string(project.OSLinux)},
	}, &osIndex); err != nil {
		return fmt.Errorf("prompting for os: %w", err)
	}

	hostingOS := project.OSWindows
	if osIndex == 1 {
		hostingOS = project.OSLinux
	}

	config := project.ServiceConfig{
		Name: serviceName,
		Provider: project.ProviderConfig{
			Runtime: project.FunctionRuntime(runtimeOptions[runtimeIndex]),
			OS:      hostingOS,
		},
	}

	contents, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("marshaling configuration: %w", err)
	}

	if err := os.WriteFile(configPath, contents, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", configPath, err)
	}

	color.Green("Created %s", configPath)

	return nil
}
