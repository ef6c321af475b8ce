// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/azure/azure-functions-provision/pkg/azure"
	"github.com/azure/azure-functions-provision/pkg/environment"
	"github.com/azure/azure-functions-provision/pkg/infra"
	"github.com/azure/azure-functions-provision/pkg/infra/appinsights"
	"github.com/azure/azure-functions-provision/pkg/infra/functionapp"
	"github.com/azure/azure-functions-provision/pkg/infra/storage"
	"github.com/azure/azure-functions-provision/pkg/osutil"
	"github.com/azure/azure-functions-provision/pkg/project"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

type generateFlags struct {
	configPath string
	envFile    string
	outputDir  string
}

func (f *generateFlags) Bind(flags *pflag.FlagSet) {
	flags.StringVarP(&f.configPath, "config", "c", "azure.yaml", "Path to the service configuration file")
	flags.StringVar(&f.envFile, "env-file", ".env", "Path to a dotenv file with values for ${VAR} references")
	flags.StringVarP(&f.outputDir, "output", "o", ".", "Directory the template and parameter files are written to")
}

func newGenerateCmd() *cobra.Command {
	flags := &generateFlags{}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate the ARM template and parameter files",
		Long: heredoc.Doc(`
			Generate reads the service configuration, resolves resource names and
			parameter values, and writes two files into the output directory:

			  template.json    the parameterized deployment template
			  parameters.json  the parameter values for this configuration

			${VAR} references in the configuration are substituted from the dotenv
			file when present, falling back to the process environment.`),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(flags)
		},
	}

	flags.Bind(cmd.Flags())

	return cmd
}

func runGenerate(flags *generateFlags) error {
	contents, err := os.ReadFile(flags.configPath)
	if err != nil {
		return fmt.Errorf("reading service configuration: %w", err)
	}

	config, err := project.Parse(contents)
	if err != nil {
		return err
	}

	env := environment.Empty()
	if _, statErr := os.Stat(flags.envFile); statErr == nil {
		env, err = environment.FromFile(flags.envFile)
		if err != nil {
			return err
		}
	} else if !errors.Is(statErr, fs.ErrNotExist) {
		return fmt.Errorf("checking env file: %w", statErr)
	}

	if !config.ResourceName.Empty() {
		resolved, err := config.ResourceName.Envsubst(env.Getenv)
		if err != nil {
			return fmt.Errorf("expanding resourceName: %w", err)
		}
		config.ResourceName = osutil.NewExpandableString(resolved)
	}

	template, values, err := infra.Compose(
		config,
		functionapp.Generator{},
		storage.Generator{},
		appinsights.Generator{},
	)
	if err != nil {
		return err
	}

	if err := writeJSON(filepath.Join(flags.outputDir, "template.json"), template); err != nil {
		return err
	}

	parameterFile := azure.NewArmParameterFile(values)
	if err := writeJSON(filepath.Join(flags.outputDir, "parameters.json"), parameterFile); err != nil {
		return err
	}

	color.Green("Generated template.json and parameters.json for service '%s'", config.Name)

	return nil
}

func writeJSON(path string, doc any) error {
	contents, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling %s: %w", filepath.Base(path), err)
	}

	if err := os.WriteFile(path, append(contents, '\n'), 0644); err != nil {
		return fmt.Errorf("writing %s: %w", filepath.Base(path), err)
	}

	return nil
}
