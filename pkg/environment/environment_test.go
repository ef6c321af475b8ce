// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package environment

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_FromFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), ".env")
	err := os.WriteFile(file, []byte("SERVICE_NAME=orders\nSTAGE=qa\n"), 0600)
	require.NoError(t, err)

	env, err := FromFile(file)
	require.NoError(t, err)
	require.Equal(t, "orders", env.Values["SERVICE_NAME"])
	require.Equal(t, "qa", env.Values["STAGE"])
}

func Test_FromFile_Missing(t *testing.T) {
	env, err := FromFile(filepath.Join(t.TempDir(), "missing.env"))
	require.Error(t, err)
	require.NotNil(t, env.Values)
}

func Test_Getenv(t *testing.T) {
	t.Setenv("FROM_PROCESS", "process")
	t.Setenv("SHADOWED", "process")

	env := Empty()
	env.Values["FROM_FILE"] = "file"
	env.Values["SHADOWED"] = "file"

	require.Equal(t, "file", env.Getenv("FROM_FILE"))
	require.Equal(t, "process", env.Getenv("FROM_PROCESS"))

	// File values win over the process environment.
	require.Equal(t, "file", env.Getenv("SHADOWED"))
	require.Equal(t, "", env.Getenv("UNSET"))
}
