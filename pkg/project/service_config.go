// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package project

import (
	"fmt"

	"dario.cat/mergo"
	"github.com/azure/azure-functions-provision/pkg/osutil"
	"gopkg.in/yaml.v3"
)

// OperatingSystem selects the hosting plan flavor for a function app.
type OperatingSystem string

const (
	OSLinux   OperatingSystem = "linux"
	OSWindows OperatingSystem = "windows"
)

type ServiceConfig struct {
	// The friendly name/key of the service, used to derive resource names
	Name string `yaml:"name"`
	// The name used to override the default azure resource name
	ResourceName osutil.ExpandableString `yaml:"resourceName,omitempty"`
	// Provider-level settings shared by all resources of the service
	Provider ProviderConfig `yaml:"provider"`
}

type ProviderConfig struct {
	// Short prefix prepended to derived resource names
	Prefix string `yaml:"prefix,omitempty"`
	// The azure region resources deploy to
	Region string `yaml:"region,omitempty"`
	// The deployment stage, ex) dev, qa, prod
	Stage string `yaml:"stage,omitempty"`
	// The language runtime of the function app
	Runtime FunctionRuntime `yaml:"runtime"`
	// The hosting OS, linux or windows
	OS OperatingSystem `yaml:"os,omitempty"`
	// The optional Application Insights settings
	AppInsights *AppInsightsConfig `yaml:"appInsights,omitempty"`
	// The optional function app resource overrides
	FunctionApp *FunctionAppConfig `yaml:"functionApp,omitempty"`
}

type AppInsightsConfig struct {
	// Instrumentation key of an existing component. When set, generated app
	// settings carry the literal key instead of a reference expression.
	InstrumentationKey string `yaml:"instrumentationKey,omitempty"`
}

type FunctionAppConfig struct {
	// Override for the functions runtime extension version, ex) ~4
	ExtensionVersion string `yaml:"extensionVersion,omitempty"`
	// Override for the public network access policy, Enabled or Disabled
	PublicNetworkAccess string `yaml:"publicNetworkAccess,omitempty"`
}

// IsLinux returns true when the service deploys to a Linux hosting plan.
func (p ProviderConfig) IsLinux() bool {
	return p.OS == OSLinux
}

var defaultProvider = ProviderConfig{
	Prefix: "sls",
	Region: "westus",
	Stage:  "dev",
	OS:     OSWindows,
}

// Parse decodes and validates a service configuration document, filling
// unset provider fields with their defaults.
func Parse(yamlContent []byte) (*ServiceConfig, error) {
	var config ServiceConfig
	if err := yaml.Unmarshal(yamlContent, &config); err != nil {
		return nil, fmt.Errorf("unable to parse service configuration: %w", err)
	}

	if err := mergo.Merge(&config.Provider, defaultProvider); err != nil {
		return nil, fmt.Errorf("applying provider defaults: %w", err)
	}

	if config.Name == "" {
		return nil, fmt.Errorf("service configuration is missing required field 'name'")
	}

	if _, err := ParseFunctionRuntime(string(config.Provider.Runtime)); err != nil {
		return nil, err
	}

	if config.Provider.OS != OSLinux && config.Provider.OS != OSWindows {
		return nil, fmt.Errorf("unsupported os '%s', supported values are: linux, windows", config.Provider.OS)
	}

	return &config, nil
}
