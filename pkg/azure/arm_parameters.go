// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package azure

// ArmParameters is a map of arm template parameters to their configured values.
//
// A parameter whose Value is nil is still part of the map: presence signals that
// the parameter is declared by the matching template, while the nil value tells
// the deployment engine to fall back to the declared default.
type ArmParameters map[string]ArmParameter

// ArmParameterFile is the model type for a `.parameters.json` file. It fits the schema outlined here:
// https://schema.management.azure.com/schemas/2019-04-01/deploymentParameters.json
type ArmParameterFile struct {
	Schema         string        `json:"$schema"`
	ContentVersion string        `json:"contentVersion"`
	Parameters     ArmParameters `json:"parameters"`
}

// ParameterFileSchema is the schema stamped on generated parameter files.
const ParameterFileSchema = "https://schema.management.azure.com/schemas/2019-04-01/deploymentParameters.json#"

// ArmParameter wraps the configured value for a parameter.
type ArmParameter struct {
	Value any `json:"value"`
}

// NewArmParameterFile wraps the given values in a parameter file document,
// dropping entries left at their declared default.
func NewArmParameterFile(parameters ArmParameters) *ArmParameterFile {
	resolved := ArmParameters{}
	for name, parameter := range parameters {
		if parameter.Value == nil {
			continue
		}
		resolved[name] = parameter
	}

	return &ArmParameterFile{
		Schema:         ParameterFileSchema,
		ContentVersion: TemplateContentVersion,
		Parameters:     resolved,
	}
}
