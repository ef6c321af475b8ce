// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

// Package infra assembles deployment templates from per-resource generators.
//
// Each generator is a pure translator from a service configuration to an ARM
// template fragment, the fragment's parameter declarations and the concrete
// parameter values for a deployment. Generators hold no state and their
// operations are safe to run in any order.
package infra

import (
	"fmt"
	"reflect"

	"github.com/azure/azure-functions-provision/pkg/azure"
	"github.com/azure/azure-functions-provision/pkg/project"
)

// ResourceGenerator produces one resource's worth of ARM artifacts.
type ResourceGenerator interface {
	// ResourceName derives the azure resource name for this resource.
	ResourceName(config *project.ServiceConfig) string
	// Template builds the parameterized template fragment. Pure construction,
	// no error conditions.
	Template(config *project.ServiceConfig) *azure.ArmTemplate
	// Parameters declares the full parameter schema of the fragment, with
	// defaults. Every declared parameter has a matching entry in the
	// ParameterValues output.
	Parameters() azure.ArmTemplateParameterDefinitions
	// ParameterValues resolves concrete parameter values for the given
	// configuration. Entries with a nil value fall back to the declared
	// default.
	ParameterValues(config *project.ServiceConfig) (azure.ArmParameters, error)
}

// Compose merges the fragments of the given generators into a single
// deployment template and parameter value set.
//
// Parameters declared by more than one generator must agree on type and
// default, and at most one generator may resolve a concrete value for a
// shared parameter. Each generator must declare exactly the parameters it
// resolves values for.
func Compose(
	config *project.ServiceConfig,
	generators ...ResourceGenerator,
) (*azure.ArmTemplate, azure.ArmParameters, error) {
	template := azure.NewArmTemplate()
	values := azure.ArmParameters{}

	for _, generator := range generators {
		declarations := generator.Parameters()

		generatorValues, err := generator.ParameterValues(config)
		if err != nil {
			return nil, nil, err
		}

		if err := checkParity(declarations, generatorValues); err != nil {
			return nil, nil, err
		}

		for name, declaration := range declarations {
			if existing, ok := template.Parameters[name]; ok {
				if !reflect.DeepEqual(existing, declaration) {
					return nil, nil, fmt.Errorf(
						"parameter '%s' is declared with conflicting definitions", name)
				}
				continue
			}
			template.Parameters[name] = declaration
		}

		for name, value := range generatorValues {
			existing, ok := values[name]
			if !ok || existing.Value == nil {
				values[name] = value
				continue
			}
			if value.Value != nil && !reflect.DeepEqual(existing.Value, value.Value) {
				return nil, nil, fmt.Errorf(
					"parameter '%s' is resolved to conflicting values", name)
			}
		}

		fragment := generator.Template(config)
		template.Resources = append(template.Resources, fragment.Resources...)
	}

	return template, values, nil
}

// checkParity enforces the schema/value invariant: the key set of the declared
// parameters must equal the key set of the resolved values.
func checkParity(
	declarations azure.ArmTemplateParameterDefinitions,
	values azure.ArmParameters,
) error {
	for name := range declarations {
		if _, ok := values[name]; !ok {
			return fmt.Errorf("declared parameter '%s' has no value entry", name)
		}
	}

	for name := range values {
		if _, ok := declarations[name]; !ok {
			return fmt.Errorf("value entry '%s' has no parameter declaration", name)
		}
	}

	return nil
}
