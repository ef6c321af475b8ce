// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

// Package appinsights generates the ARM fragment for the Application Insights
// component a function app reports telemetry to.
package appinsights

import (
	"github.com/azure/azure-functions-provision/pkg/azure"
	"github.com/azure/azure-functions-provision/pkg/naming"
	"github.com/azure/azure-functions-provision/pkg/project"
)

const (
	resourceType = "microsoft.insights/components"
	apiVersion   = "2015-05-01"

	nameSuffix    = "ai"
	maxNameLength = 255
)

const ParamName = "appInsightsName"

type Generator struct{}

func (g Generator) ResourceName(config *project.ServiceConfig) string {
	return naming.ResourceName(config, naming.Options{
		Suffix:    nameSuffix,
		MaxLength: maxNameLength,
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
		Kind:       "web",
		Properties: map[string]any{
			"Application_Type": "web",
			"ApplicationId":    azure.ParameterExpr(ParamName),
		},
	})

	return template
}

func (g Generator) Parameters() azure.ArmTemplateParameterDefinitions {
	return azure.ArmTemplateParameterDefinitions{
		ParamName: {Type: "string", DefaultValue: ""},
	}
}

func (g Generator) ParameterValues(config *project.ServiceConfig) (azure.ArmParameters, error) {
	return azure.ArmParameters{
		ParamName: {Value: g.ResourceName(config)},
	}, nil
}
