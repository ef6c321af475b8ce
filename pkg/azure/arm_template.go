// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package azure

import (
	"encoding/json"

	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/appservice/armappservice/v2"
)

// TemplateSchema is the deployment template schema version emitted by the generators.
const TemplateSchema = "https://schema.management.azure.com/schemas/2015-01-01/deploymentTemplate.json#"

// TemplateContentVersion is the contentVersion stamped on every generated template.
const TemplateContentVersion = "1.0.0.0"

// RawArmTemplate is a JSON encoded ARM template.
type RawArmTemplate = json.RawMessage

// ArmTemplate represents an Azure Resource Manager deployment template. It follows the structure outlined
// at https://learn.microsoft.com/azure/azure-resource-manager/templates/syntax, but only exposes portions of the
// object that this tool cares about.
type ArmTemplate struct {
	Schema         string                          `json:"$schema"`
	ContentVersion string                          `json:"contentVersion"`
	Parameters     ArmTemplateParameterDefinitions `json:"parameters"`
	Variables      map[string]any                  `json:"variables"`
	Resources      []*ArmResource                  `json:"resources"`
}

// NewArmTemplate returns an empty template carrying the schema and content version
// every generated fragment shares.
func NewArmTemplate() *ArmTemplate {
	return &ArmTemplate{
		Schema:         TemplateSchema,
		ContentVersion: TemplateContentVersion,
		Parameters:     ArmTemplateParameterDefinitions{},
		Variables:      map[string]any{},
		Resources:      []*ArmResource{},
	}
}

type ArmTemplateParameterDefinitions map[string]ArmTemplateParameterDefinition

type ArmTemplateParameterDefinition struct {
	Type         string `json:"type"`
	DefaultValue any    `json:"defaultValue"`
}

func (d *ArmTemplateParameterDefinition) Secure() bool {
	return d.Type == "secureObject" || d.Type == "secureString"
}

// ArmResource is a single resource entry in a deployment template. Properties is
// left untyped since template fragments carry ARM expressions (strings) in fields
// that are booleans or objects on the wire once resolved.
type ArmResource struct {
	Type       string                                `json:"type"`
	APIVersion string                                `json:"apiVersion"`
	Name       string                                `json:"name"`
	Location   string                                `json:"location,omitempty"`
	Kind       string                                `json:"kind,omitempty"`
	Identity   *armappservice.ManagedServiceIdentity `json:"identity,omitempty"`
	DependsOn  []string                              `json:"dependsOn,omitempty"`
	Sku        map[string]any                        `json:"sku,omitempty"`
	Properties any                                   `json:"properties,omitempty"`
}
