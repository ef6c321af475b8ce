// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

// Package naming derives azure resource names from a service configuration.
// Name derivation is deterministic: the same configuration and options always
// produce the same name, so repeated generation passes stay stable.
package naming

import (
	"crypto/md5"
	"encoding/hex"
	"regexp"
	"strings"

	"github.com/azure/azure-functions-provision/pkg/project"
)

// hashLength is the number of hex characters kept from the name hash segment.
const hashLength = 6

// Options control how a resource name is derived.
type Options struct {
	// Suffix is an extra trailing segment, ex) "ai" for app insights components.
	Suffix string
	// MaxLength truncates the derived name. Zero means no limit.
	MaxLength int
	// IncludeHash adds a deterministic hash segment scoping the name to the
	// region and stage.
	IncludeHash bool
	// Alphanumeric strips separators and lower-cases the result, for resource
	// kinds with restricted character sets such as storage accounts.
	Alphanumeric bool
}

var whitespace = regexp.MustCompile(`\s`)
var nonAlphanumeric = regexp.MustCompile(`[^0-9a-zA-Z]`)

// ResourceName derives the name for a resource of the given service.
//
// An explicit resourceName override in the configuration wins over derivation.
// Otherwise the name joins the provider prefix, stage and the
// whitespace-stripped service name, plus the optional hash and suffix segments.
func ResourceName(config *project.ServiceConfig, options Options) string {
	if !config.ResourceName.Empty() {
		return config.ResourceName.Template
	}

	serviceName := whitespace.ReplaceAllString(config.Name, "")

	segments := []string{
		config.Provider.Prefix,
		config.Provider.Stage,
		serviceName,
	}

	if options.IncludeHash {
		segments = append(segments, nameHash(config, serviceName))
	}

	if options.Suffix != "" {
		segments = append(segments, options.Suffix)
	}

	nonEmpty := segments[:0]
	for _, segment := range segments {
		if segment != "" {
			nonEmpty = append(nonEmpty, segment)
		}
	}

	name := strings.Join(nonEmpty, "-")

	if options.Alphanumeric {
		name = strings.ToLower(nonAlphanumeric.ReplaceAllString(name, ""))
	}

	if options.MaxLength > 0 && len(name) > options.MaxLength {
		name = name[:options.MaxLength]
	}

	return name
}

func nameHash(config *project.ServiceConfig, serviceName string) string {
	sum := md5.Sum([]byte(config.Provider.Region + config.Provider.Stage + serviceName))
	return hex.EncodeToString(sum[:])[:hashLength]
}
