// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package osutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gopkg.in/yaml.v3"
)

func TestExpandableStringYaml(t *testing.T) {
	var e ExpandableString

	err := yaml.Unmarshal([]byte(`"${foo}"`), &e)
	assert.NoError(t, err)

	assert.Equal(t, "${foo}", e.Template)

	marshalled, err := yaml.Marshal(e)
	assert.NoError(t, err)

	assert.Equal(t, "${foo}\n", string(marshalled))
}

func TestExpandableString_Envsubst(t *testing.T) {
	e := NewExpandableString("${SERVICE}-func")

	value, err := e.Envsubst(func(name string) string {
		if name == "SERVICE" {
			return "orders"
		}
		return ""
	})
	assert.NoError(t, err)
	assert.Equal(t, "orders-func", value)
}

func TestExpandableString_Empty(t *testing.T) {
	t.Run("Empty", func(t *testing.T) {
		e := NewExpandableString("")
		assert.True(t, e.Empty())
	})

	t.Run("NonEmpty", func(t *testing.T) {
		e := NewExpandableString("${ENV_VAR}")
		assert.False(t, e.Empty())
	})
}
