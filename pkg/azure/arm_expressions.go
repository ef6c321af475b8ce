// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package azure

import "fmt"

// Builders for the small set of bracketed ARM template expressions the
// generators emit. Expressions are resolved by Azure Resource Manager at
// deployment time; to this tool they are opaque strings.

// ParameterExpr returns a reference to a template parameter, e.g.
// "[parameters('functionAppName')]".
func ParameterExpr(name string) string {
	return fmt.Sprintf("[parameters('%s')]", name)
}

// ToLowerParameterExpr returns a lower-cased reference to a template parameter.
func ToLowerParameterExpr(name string) string {
	return fmt.Sprintf("[toLower(parameters('%s'))]", name)
}

// ResourceGroupLocationExpr resolves to the location of the target resource group.
const ResourceGroupLocationExpr = "[resourceGroup().location]"

// DependencyExpr names a sibling resource in a dependsOn entry by concatenating
// the resource type with a parameter-supplied resource name.
func DependencyExpr(resourceType string, nameParameter string) string {
	return fmt.Sprintf("[concat('%s/', parameters('%s'))]", resourceType, nameParameter)
}

// StorageConnectionStringExpr builds a storage account connection string from
// the account named by the given parameter, pulling the primary key with listKeys.
func StorageConnectionStringExpr(nameParameter string) string {
	return fmt.Sprintf(
		"[concat('DefaultEndpointsProtocol=https;AccountName=',parameters('%s'),';AccountKey=',"+
			"listKeys(resourceId('Microsoft.Storage/storageAccounts', parameters('%s')), '2022-09-01').keys[0].value)]",
		nameParameter,
		nameParameter,
	)
}

// AppInsightsInstrumentationKeyExpr reads the instrumentation key off the
// Application Insights component named by the given parameter.
func AppInsightsInstrumentationKeyExpr(nameParameter string) string {
	return fmt.Sprintf(
		"[reference(resourceId('microsoft.insights/components/', parameters('%s')), '2015-05-01').InstrumentationKey]",
		nameParameter,
	)
}
