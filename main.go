// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package main

import "github.com/azure/azure-functions-provision/cmd"

func main() {
	cmd.Execute()
}
