// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

// Package storage generates the ARM fragment for the storage account backing
// a function app's job host and deployment packages.
package storage

import (
	"github.com/azure/azure-functions-provision/pkg/azure"
	"github.com/azure/azure-functions-provision/pkg/naming"
	"github.com/azure/azure-functions-provision/pkg/project"
)

const (
	resourceType = "Microsoft.Storage/storageAccounts"
	apiVersion   = "2022-09-01"

	// Storage account names are lowercase alphanumeric, 3-24 characters.
	maxNameLength = 24
)

const (
	ParamName    = "storageAccountName"
	ParamSkuName = "storageAccountSkuName"
	ParamSkuTier = "storageAccountSkuTier"
)

const (
	defaultSkuName = "Standard_LRS"
	defaultSkuTier = "Standard"
)

type Generator struct{}

// ResourceName derives the storage account name. The account name carries a
// hash segment since storage names are globally scoped, and is stripped down
// to the character set storage accounts allow.
func (g Generator) ResourceName(config *project.ServiceConfig) string {
	return naming.ResourceName(config, naming.Options{
		MaxLength:    maxNameLength,
		IncludeHash:  true,
		Alphanumeric: true,
	})
}

func (g Generator) Template(config *project.ServiceConfig) *azure.ArmTemplate {
	template := azure.NewArmTemplate()
	template.Parameters = g.Parameters()
	template.Resources = append(template.Resources, &azure.ArmResource{
		Type:       resourceType,
		APIVersion: apiVersion,
		Name:       azure.ParameterExpr(ParamName),
		Location:   azure.ResourceGroupLocationExpr,
		Kind:       "StorageV2",
		Sku: map[string]any{
			"name": azure.ParameterExpr(ParamSkuName),
			"tier": azure.ParameterExpr(ParamSkuTier),
		},
		Properties: map[string]any{
			"supportsHttpsTrafficOnly": true,
			"minimumTlsVersion":        "TLS1_2",
		},
	})

	return template
}

func (g Generator) Parameters() azure.ArmTemplateParameterDefinitions {
	return azure.ArmTemplateParameterDefinitions{
		ParamName:    {Type: "string", DefaultValue: ""},
		ParamSkuName: {Type: "string", DefaultValue: defaultSkuName},
		ParamSkuTier: {Type: "string", DefaultValue: defaultSkuTier},
	}
}

func (g Generator) ParameterValues(config *project.ServiceConfig) (azure.ArmParameters, error) {
	return azure.ArmParameters{
		ParamName:    {Value: g.ResourceName(config)},
		ParamSkuName: {},
		ParamSkuTier: {},
	}, nil
}
