// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package appinsights

import (
	"encoding/json"
	"testing"

	"github.com/azure/azure-functions-provision/pkg/project"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

func testConfig() *project.ServiceConfig {
	return &project.ServiceConfig{
		Name: "api",
		Provider: project.ProviderConfig{
			Prefix: "sls",
			Region: "westus",
			Stage:  "dev",
		},
	}
}

func Test_ResourceName_Suffix(t *testing.T) {
	require.Equal(t, "sls-dev-api-ai", Generator{}.ResourceName(testConfig()))
}

func Test_ParameterParity(t *testing.T) {
	declarations := Generator{}.Parameters()
	values, err := Generator{}.ParameterValues(testConfig())
	require.NoError(t, err)

	require.Len(t, values, len(declarations))
	require.Equal(t, "sls-dev-api-ai", values[ParamName].Value)
}

func Test_Template(t *testing.T) {
	contents, err := json.Marshal(Generator{}.Template(testConfig()))
	require.NoError(t, err)
	doc := string(contents)

	resource := gjson.Get(doc, "resources.0")
	require.Equal(t, "microsoft.insights/components", resource.Get("type").String())
	require.Equal(t, "web", resource.Get("kind").String())
	require.Equal(t, "web", resource.Get("properties.Application_Type").String())
}
