// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package project

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_ParseFunctionRuntime(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		runtime, err := ParseFunctionRuntime("nodejs18")
		require.NoError(t, err)
		require.Equal(t, RuntimeNode18, runtime)
	})

	t.Run("Invalid", func(t *testing.T) {
		_, err := ParseFunctionRuntime("nodejs99")
		require.ErrorContains(t, err, "nodejs99")
	})
}

func Test_WorkerRuntime(t *testing.T) {
	require.Equal(t, "node", RuntimeNode18.WorkerRuntime())
	require.Equal(t, "python", RuntimePython311.WorkerRuntime())
	require.Equal(t, "dotnet", RuntimeDotnet8.WorkerRuntime())
	require.Equal(t, "java", RuntimeJava11.WorkerRuntime())
}

func Test_IsNode(t *testing.T) {
	for _, runtime := range []FunctionRuntime{RuntimeNode16, RuntimeNode18, RuntimeNode20} {
		require.True(t, runtime.IsNode(), "%s should be a node runtime", runtime)
	}

	for _, runtime := range []FunctionRuntime{RuntimePython39, RuntimeDotnet6, RuntimeJava8} {
		require.False(t, runtime.IsNode(), "%s should not be a node runtime", runtime)
	}
}

func Test_Version(t *testing.T) {
	require.Equal(t, uint64(18), RuntimeNode18.Version().Major())
	require.Equal(t, uint64(3), RuntimePython310.Version().Major())
	require.Equal(t, uint64(10), RuntimePython310.Version().Minor())
	require.Nil(t, FunctionRuntime("unknown").Version())
}

func Test_ContainerImage(t *testing.T) {
	t.Run("Registered", func(t *testing.T) {
		image, ok := RuntimePython39.ContainerImage()
		require.True(t, ok)
		require.Equal(t, "DOCKER|mcr.microsoft.com/azure-functions/python:4-python3.9", image)
	})

	t.Run("NotRegistered", func(t *testing.T) {
		_, ok := RuntimeJava11.ContainerImage()
		require.False(t, ok)
	})

	t.Run("UnknownRuntime", func(t *testing.T) {
		_, ok := FunctionRuntime("unknown").ContainerImage()
		require.False(t, ok)
	})
}

func Test_Runtimes_Stable(t *testing.T) {
	require.Equal(t, Runtimes(), Runtimes())
	require.Contains(t, Runtimes(), RuntimeNode18)
}
