// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

// Package environment holds deployment-scoped settings loaded from a dotenv
// file. Values present in the file win over the process environment when
// expanding ${VAR} references in a service configuration.
package environment

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

type Environment struct {
	// Values is a map of setting names to values.
	Values map[string]string
	// File is a path to the file that backs this environment. If empty, the
	// Environment was not loaded from disk. This allows the zero value to be
	// used for testing.
	File string
}

// Empty returns an environment with no values.
func Empty() Environment {
	return Environment{
		Values: make(map[string]string),
	}
}

// FromFile loads an environment from a dotenv file on disk. On error a valid
// empty environment is returned along with the error.
func FromFile(file string) (Environment, error) {
	env := Environment{
		Values: make(map[string]string),
		File:   file,
	}

	e, err := godotenv.Read(file)
	if err != nil {
		return env, fmt.Errorf("can't read %s: %w", file, err)
	}

	env.Values = e
	return env, nil
}

// Getenv behaves like os.Getenv, with values from the backing file taking
// precedence over the process environment. Suitable as an envsubst mapping.
func (e Environment) Getenv(name string) string {
	if value, ok := e.Values[name]; ok {
		return value
	}

	return os.Getenv(name)
}
