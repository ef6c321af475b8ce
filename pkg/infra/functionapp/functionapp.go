// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

// Package functionapp generates the ARM template fragment, parameter schema
// and parameter values for a Microsoft.Web/sites function app resource.
package functionapp

import (
	"fmt"
	"strconv"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/to"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/appservice/armappservice/v2"
	"github.com/azure/azure-functions-provision/pkg/azure"
	"github.com/azure/azure-functions-provision/pkg/convert"
	"github.com/azure/azure-functions-provision/pkg/naming"
	"github.com/azure/azure-functions-provision/pkg/project"
)

const (
	resourceType = "Microsoft.Web/sites"
	apiVersion   = "2022-09-01"

	// Site names allow up to 60 characters.
	maxNameLength = 60
)

// Template parameter names. The declaration set produced by Parameters and the
// value set produced by ParameterValues always carry exactly these keys.
const (
	ParamName                = "functionAppName"
	ParamNodeVersion         = "functionAppNodeVersion"
	ParamKind                = "functionAppKind"
	ParamReserved            = "functionAppReserved"
	ParamLinuxFxVersion      = "linuxFxVersion"
	ParamWorkerRuntime       = "functionAppWorkerRuntime"
	ParamExtensionVersion    = "functionAppExtensionVersion"
	ParamRunFromPackage      = "functionAppRunFromPackage"
	ParamEnableRemoteBuild   = "functionAppEnableRemoteBuild"
	ParamPublicNetworkAccess = "functionAppPublicNetworkAccess"
	ParamAppInsightsName     = "appInsightsName"
	ParamStorageAccountName  = "storageAccountName"
)

const (
	defaultKind                = "functionapp"
	linuxKind                  = "functionapp,linux"
	defaultExtensionVersion    = "~3"
	defaultPublicNetworkAccess = "Enabled"
)

// UnsupportedRuntimeError is returned when resolving linux parameter values
// for a runtime with no registered container image. It aborts generation for
// the resource rather than emit a template with an invalid linuxFxVersion.
type UnsupportedRuntimeError struct {
	Runtime project.FunctionRuntime
}

func (e *UnsupportedRuntimeError) Error() string {
	return fmt.Sprintf(
		"no linux container image is registered for runtime '%s', unable to provision a linux function app",
		e.Runtime,
	)
}

// Generator produces the function app resource fragment. The zero value is
// ready to use.
type Generator struct{}

// ResourceName derives the function app name for the given configuration.
func (g Generator) ResourceName(config *project.ServiceConfig) string {
	return naming.ResourceName(config, naming.Options{MaxLength: maxNameLength})
}

// Template builds the parameterized site resource. Everything except the app
// settings list is a parameter placeholder resolved when values are supplied.
func (g Generator) Template(config *project.ServiceConfig) *azure.ArmTemplate {
	template := azure.NewArmTemplate()
	template.Parameters = g.Parameters()
	template.Resources = append(template.Resources, &azure.ArmResource{
		Type:       resourceType,
		APIVersion: apiVersion,
		Name:       azure.ParameterExpr(ParamName),
		Location:   azure.ResourceGroupLocationExpr,
		Kind:       azure.ParameterExpr(ParamKind),
		Identity: &armappservice.ManagedServiceIdentity{
			Type: to.Ptr(armappservice.ManagedServiceIdentityTypeSystemAssigned),
		},
		DependsOn: []string{
			azure.DependencyExpr("Microsoft.Storage/storageAccounts", ParamStorageAccountName),
			azure.DependencyExpr("microsoft.insights/components", ParamAppInsightsName),
		},
		Properties: siteProperties{
			Name: azure.ParameterExpr(ParamName),
			SiteConfig: siteConfig{
				AppSettings:    g.AppSettings(config),
				LinuxFxVersion: azure.ParameterExpr(ParamLinuxFxVersion),
			},
			Reserved:              azure.ParameterExpr(ParamReserved),
			PublicNetworkAccess:   azure.ParameterExpr(ParamPublicNetworkAccess),
			ClientAffinityEnabled: false,
			HostingEnvironment:    "",
		},
	})

	return template
}

type siteProperties struct {
	SiteConfig siteConfig `json:"siteConfig"`
	Name       string     `json:"name"`
	// Reserved resolves to a boolean at deployment time.
	Reserved              string `json:"reserved"`
	PublicNetworkAccess   string `json:"publicNetworkAccess"`
	ClientAffinityEnabled bool   `json:"clientAffinityEnabled"`
	HostingEnvironment    string `json:"hostingEnvironment"`
}

type siteConfig struct {
	AppSettings    []*armappservice.NameValuePair `json:"appSettings"`
	LinuxFxVersion string                         `json:"linuxFxVersion"`
}

// Parameters declares the authoritative parameter schema for the fragment.
func (g Generator) Parameters() azure.ArmTemplateParameterDefinitions {
	return azure.ArmTemplateParameterDefinitions{
		ParamName:                {Type: "string", DefaultValue: ""},
		ParamNodeVersion:         {Type: "string", DefaultValue: ""},
		ParamKind:                {Type: "string", DefaultValue: defaultKind},
		ParamReserved:            {Type: "bool", DefaultValue: false},
		ParamLinuxFxVersion:      {Type: "string", DefaultValue: ""},
		ParamWorkerRuntime:       {Type: "string", DefaultValue: "node"},
		ParamExtensionVersion:    {Type: "string", DefaultValue: defaultExtensionVersion},
		ParamRunFromPackage:      {Type: "string", DefaultValue: "1"},
		ParamEnableRemoteBuild:   {Type: "bool", DefaultValue: false},
		ParamPublicNetworkAccess: {Type: "string", DefaultValue: defaultPublicNetworkAccess},
		ParamAppInsightsName:     {Type: "string", DefaultValue: ""},
		ParamStorageAccountName:  {Type: "string", DefaultValue: ""},
	}
}

// ParameterValues resolves the concrete parameter values for a deployment.
// Entries with a nil value defer to the declared default. The sibling resource
// names (storage account, app insights component) are left unresolved here and
// filled in by their own generators during composition.
func (g Generator) ParameterValues(config *project.ServiceConfig) (azure.ArmParameters, error) {
	provider := config.Provider
	isLinux := provider.IsLinux()
	runtime := provider.Runtime
	overrides := convert.ToValueWithDefault(provider.FunctionApp, project.FunctionAppConfig{})

	values := azure.ArmParameters{
		ParamName:          {Value: g.ResourceName(config)},
		ParamWorkerRuntime: {Value: runtime.WorkerRuntime()},
		ParamExtensionVersion: {
			Value: convert.ToStringWithDefault(overrides.ExtensionVersion, defaultExtensionVersion),
		},
		ParamPublicNetworkAccess: {
			Value: convert.ToStringWithDefault(overrides.PublicNetworkAccess, defaultPublicNetworkAccess),
		},
		ParamEnableRemoteBuild:  {Value: isLinux},
		ParamNodeVersion:        {},
		ParamKind:               {},
		ParamReserved:           {},
		ParamLinuxFxVersion:     {},
		ParamAppInsightsName:    {},
		ParamStorageAccountName: {},
	}

	if runtime.IsNode() {
		values[ParamNodeVersion] = azure.ArmParameter{Value: nodeDefaultVersion(runtime)}
	}

	if isLinux {
		// Linux consumption plans run the package remotely; windows plans run
		// from an uploaded package file.
		values[ParamRunFromPackage] = azure.ArmParameter{Value: "0"}
		values[ParamKind] = azure.ArmParameter{Value: linuxKind}
		values[ParamReserved] = azure.ArmParameter{Value: true}

		image, ok := runtime.ContainerImage()
		if !ok {
			return nil, &UnsupportedRuntimeError{Runtime: runtime}
		}
		values[ParamLinuxFxVersion] = azure.ArmParameter{Value: image}
	} else {
		values[ParamRunFromPackage] = azure.ArmParameter{Value: "1"}
	}

	return values, nil
}

// AppSettings computes the site's app settings list. Settings are appended in
// three tiers: the base tier, a windows-only tier and a node-only tier. Tiers
// are strictly additive and never override earlier entries.
func (g Generator) AppSettings(config *project.ServiceConfig) []*armappservice.NameValuePair {
	provider := config.Provider
	appInsights := convert.ToValueWithDefault(provider.AppInsights, project.AppInsightsConfig{})

	instrumentationKey := appInsights.InstrumentationKey
	if instrumentationKey == "" {
		instrumentationKey = azure.AppInsightsInstrumentationKeyExpr(ParamAppInsightsName)
	}

	settings := []*armappservice.NameValuePair{
		{
			Name:  to.Ptr("FUNCTIONS_WORKER_RUNTIME"),
			Value: to.Ptr(azure.ParameterExpr(ParamWorkerRuntime)),
		},
		{
			Name:  to.Ptr("FUNCTIONS_EXTENSION_VERSION"),
			Value: to.Ptr(azure.ParameterExpr(ParamExtensionVersion)),
		},
		{
			Name:  to.Ptr("AzureWebJobsStorage"),
			Value: to.Ptr(azure.StorageConnectionStringExpr(ParamStorageAccountName)),
		},
		{
			Name:  to.Ptr("APPINSIGHTS_INSTRUMENTATIONKEY"),
			Value: to.Ptr(instrumentationKey),
		},
	}

	if !provider.IsLinux() {
		settings = append(settings,
			&armappservice.NameValuePair{
				Name:  to.Ptr("WEBSITE_CONTENTAZUREFILECONNECTIONSTRING"),
				Value: to.Ptr(azure.StorageConnectionStringExpr(ParamStorageAccountName)),
			},
			&armappservice.NameValuePair{
				Name:  to.Ptr("WEBSITE_CONTENTSHARE"),
				Value: to.Ptr(azure.ToLowerParameterExpr(ParamName)),
			},
			&armappservice.NameValuePair{
				Name:  to.Ptr("WEBSITE_RUN_FROM_PACKAGE"),
				Value: to.Ptr(azure.ParameterExpr(ParamRunFromPackage)),
			},
		)
	}

	if provider.Runtime.IsNode() {
		settings = append(settings, &armappservice.NameValuePair{
			Name:  to.Ptr("WEBSITE_NODE_DEFAULT_VERSION"),
			Value: to.Ptr(azure.ParameterExpr(ParamNodeVersion)),
		})
	}

	return settings
}

// nodeDefaultVersion maps a node runtime to the "~<major>" form that
// WEBSITE_NODE_DEFAULT_VERSION expects.
func nodeDefaultVersion(runtime project.FunctionRuntime) string {
	return "~" + strconv.FormatUint(runtime.Version().Major(), 10)
}
