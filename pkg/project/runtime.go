// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package project

import (
	"fmt"
	"sort"

	"github.com/Masterminds/semver/v3"
)

// FunctionRuntime is the language runtime a function app is built for.
type FunctionRuntime string

const (
	RuntimeNode16    FunctionRuntime = "nodejs16"
	RuntimeNode18    FunctionRuntime = "nodejs18"
	RuntimeNode20    FunctionRuntime = "nodejs20"
	RuntimePython38  FunctionRuntime = "python3.8"
	RuntimePython39  FunctionRuntime = "python3.9"
	RuntimePython310 FunctionRuntime = "python3.10"
	RuntimePython311 FunctionRuntime = "python3.11"
	RuntimeDotnet6   FunctionRuntime = "dotnet6"
	RuntimeDotnet8   FunctionRuntime = "dotnet8"
	RuntimeJava8     FunctionRuntime = "java8"
	RuntimeJava11    FunctionRuntime = "java11"
)

// runtimeInfo is the static metadata registered for each supported runtime.
// containerImage is empty for runtimes without a published Linux container
// image; callers must treat the lookup as fallible.
type runtimeInfo struct {
	workerRuntime  string
	version        *semver.Version
	containerImage string
	node           bool
}

var runtimes = map[FunctionRuntime]runtimeInfo{
	RuntimeNode16: {
		workerRuntime:  "node",
		version:        semver.MustParse("16.0.0"),
		containerImage: "DOCKER|mcr.microsoft.com/azure-functions/node:4-node16",
		node:           true,
	},
	RuntimeNode18: {
		workerRuntime:  "node",
		version:        semver.MustParse("18.0.0"),
		containerImage: "DOCKER|mcr.microsoft.com/azure-functions/node:4-node18",
		node:           true,
	},
	RuntimeNode20: {
		workerRuntime:  "node",
		version:        semver.MustParse("20.0.0"),
		containerImage: "DOCKER|mcr.microsoft.com/azure-functions/node:4-node20",
		node:           true,
	},
	RuntimePython38: {
		workerRuntime:  "python",
		version:        semver.MustParse("3.8.0"),
		containerImage: "DOCKER|mcr.microsoft.com/azure-functions/python:4-python3.8",
	},
	RuntimePython39: {
		workerRuntime:  "python",
		version:        semver.MustParse("3.9.0"),
		containerImage: "DOCKER|mcr.microsoft.com/azure-functions/python:4-python3.9",
	},
	RuntimePython310: {
		workerRuntime:  "python",
		version:        semver.MustParse("3.10.0"),
		containerImage: "DOCKER|mcr.microsoft.com/azure-functions/python:4-python3.10",
	},
	RuntimePython311: {
		workerRuntime:  "python",
		version:        semver.MustParse("3.11.0"),
		containerImage: "DOCKER|mcr.microsoft.com/azure-functions/python:4-python3.11",
	},
	RuntimeDotnet6: {
		workerRuntime:  "dotnet",
		version:        semver.MustParse("6.0.0"),
		containerImage: "DOCKER|mcr.microsoft.com/azure-functions/dotnet:4-dotnet6",
	},
	RuntimeDotnet8: {
		workerRuntime:  "dotnet",
		version:        semver.MustParse("8.0.0"),
		containerImage: "DOCKER|mcr.microsoft.com/azure-functions/dotnet-isolated:4-dotnet-isolated8.0",
	},
	// No container images are published for the java runtimes; they deploy to
	// Windows plans only.
	RuntimeJava8: {
		workerRuntime: "java",
		version:       semver.MustParse("8.0.0"),
	},
	RuntimeJava11: {
		workerRuntime: "java",
		version:       semver.MustParse("11.0.0"),
	},
}

// ParseFunctionRuntime validates and converts a configured runtime string.
func ParseFunctionRuntime(value string) (FunctionRuntime, error) {
	runtime := FunctionRuntime(value)
	if _, ok := runtimes[runtime]; !ok {
		return "", fmt.Errorf("unsupported runtime '%s', supported values are: %v", value, Runtimes())
	}

	return runtime, nil
}

// Runtimes returns the supported runtimes in a stable order.
func Runtimes() []FunctionRuntime {
	all := make([]FunctionRuntime, 0, len(runtimes))
	for runtime := range runtimes {
		all = append(all, runtime)
	}
	sort.Slice(all, func(i, j int) bool { return all[i] < all[j] })

	return all
}

// WorkerRuntime returns the identifier the Functions host uses to route
// execution for this runtime (e.g. "node", "python").
func (r FunctionRuntime) WorkerRuntime() string {
	return runtimes[r].workerRuntime
}

// Version returns the language version the runtime provides. Returns nil for
// unregistered runtimes.
func (r FunctionRuntime) Version() *semver.Version {
	info, ok := runtimes[r]
	if !ok {
		return nil
	}

	return info.version
}

// IsNode returns true when the runtime belongs to the Node.js family.
func (r FunctionRuntime) IsNode() bool {
	return runtimes[r].node
}

// ContainerImage returns the Linux container image registered for the runtime.
// The second return is false when no image is published, which callers must
// surface rather than emit a template with an empty linuxFxVersion.
func (r FunctionRuntime) ContainerImage() (string, bool) {
	info, ok := runtimes[r]
	if !ok || info.containerImage == "" {
		return "", false
	}

	return info.containerImage, true
}
