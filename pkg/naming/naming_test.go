// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package naming

import (
	"testing"

	"github.com/azure/azure-functions-provision/pkg/osutil"
	"github.com/azure/azure-functions-provision/pkg/project"
	"github.com/stretchr/testify/require"
)

func config(name string) *project.ServiceConfig {
	return &project.ServiceConfig{
		Name: name,
		Provider: project.ProviderConfig{
			Prefix: "sls",
			Region: "westus",
			Stage:  "dev",
		},
	}
}

func Test_ResourceName(t *testing.T) {
	t.Run("Default", func(t *testing.T) {
		require.Equal(t, "sls-dev-myapp", ResourceName(config("myapp"), Options{}))
	})

	t.Run("StripsWhitespace", func(t *testing.T) {
		require.Equal(t, "sls-dev-myapp", ResourceName(config("my app"), Options{}))
	})

	t.Run("OverrideWins", func(t *testing.T) {
		cfg := config("myapp")
		cfg.ResourceName = osutil.NewExpandableString("custom-name")

		require.Equal(t, "custom-name", ResourceName(cfg, Options{IncludeHash: true, Suffix: "ai"}))
	})

	t.Run("Suffix", func(t *testing.T) {
		require.Equal(t, "sls-dev-myapp-ai", ResourceName(config("myapp"), Options{Suffix: "ai"}))
	})

	t.Run("IncludeHash", func(t *testing.T) {
		// md5("westus" + "dev" + "myapp")[:6]
		require.Equal(t, "sls-dev-myapp-619a7a", ResourceName(config("myapp"), Options{IncludeHash: true}))
	})

	t.Run("HashIsDeterministic", func(t *testing.T) {
		first := ResourceName(config("myapp"), Options{IncludeHash: true})
		second := ResourceName(config("myapp"), Options{IncludeHash: true})

		require.Equal(t, first, second)
	})

	t.Run("Alphanumeric", func(t *testing.T) {
		require.Equal(t, "slsdevmyapp619a7a", ResourceName(config("myapp"), Options{
			IncludeHash:  true,
			Alphanumeric: true,
		}))
	})

	t.Run("MaxLength", func(t *testing.T) {
		name := ResourceName(config("averylongservicename"), Options{MaxLength: 10})

		require.Len(t, name, 10)
		require.Equal(t, "sls-dev-av", name)
	})

	t.Run("EmptySegmentsDropped", func(t *testing.T) {
		cfg := config("myapp")
		cfg.Provider.Prefix = ""

		require.Equal(t, "dev-myapp", ResourceName(cfg, Options{}))
	})
}
