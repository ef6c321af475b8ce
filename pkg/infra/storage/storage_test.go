// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package storage

import (
	"encoding/json"
	"regexp"
	"testing"

	"github.com/azure/azure-functions-provision/pkg/project"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

func testConfig() *project.ServiceConfig {
	return &project.ServiceConfig{
		Name: "My Api",
		Provider: project.ProviderConfig{
			Prefix: "sls",
			Region: "westus",
			Stage:  "dev",
		},
	}
}

func Test_ResourceName_StorageRules(t *testing.T) {
	name := Generator{}.ResourceName(testConfig())

	// Lowercase alphanumeric, at most 24 characters.
	require.Regexp(t, regexp.MustCompile(`^[a-z0-9]{3,24}$`), name)
}

func Test_ParameterParity(t *testing.T) {
	declarations := Generator{}.Parameters()
	values, err := Generator{}.ParameterValues(testConfig())
	require.NoError(t, err)

	require.Len(t, values, len(declarations))
	for name := range declarations {
		require.Contains(t, values, name)
	}

	require.NotNil(t, values[ParamName].Value)
	require.Nil(t, values[ParamSkuName].Value)
	require.Nil(t, values[ParamSkuTier].Value)
}

func Test_Template(t *testing.T) {
	contents, err := json.Marshal(Generator{}.Template(testConfig()))
	require.NoError(t, err)
	doc := string(contents)

	resource := gjson.Get(doc, "resources.0")
	require.Equal(t, "Microsoft.Storage/storageAccounts", resource.Get("type").String())
	require.Equal(t, "StorageV2", resource.Get("kind").String())
	require.Equal(t, "[parameters('storageAccountSkuName')]", resource.Get("sku.name").String())
	require.True(t, resource.Get("properties.supportsHttpsTrafficOnly").Bool())
}
