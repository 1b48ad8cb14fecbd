package rulesets

import "azmig/internal/rules"

const (
	linkMoveSupport   = "https://learn.microsoft.com/azure/azure-resource-manager/management/move-support-resources"
	linkMoveLimits    = "https://learn.microsoft.com/azure/azure-resource-manager/management/move-resource-group-and-subscription"
	linkTenantMove    = "https://learn.microsoft.com/azure/role-based-access-control/transfer-subscription"
	linkKeyVaultMove  = "https://learn.microsoft.com/azure/key-vault/general/move-subscription"
	linkResourceMover = "https://learn.microsoft.com/azure/resource-mover/overview"
)

// TenantRules covers tenant-to-tenant transfers (directory changes). These
// moves keep resource IDs but sever every directory-backed association:
// RBAC, managed identities, AAD integrations.
func TenantRules() rules.Source {
	return rules.Source{
		Name: "tenant",
		Rules: []rules.Rule{
			{
				ID:                  "tenant-rbac-reset",
				ResourceTypePattern: "*",
				Scenario:            rules.ScenarioTenant,
				Severity:            rules.SeverityInfo,
				Message:             "Role assignments do not transfer to the target directory.",
				Impact:              "All RBAC on this resource must be recreated after the transfer.",
				Remediation:         "Export existing role assignments before the move and reapply them against target-directory principals.",
				ReferenceLink:       linkTenantMove,
			},
			{
				ID:                  "tenant-keyvault-binding",
				ResourceTypePattern: "microsoft.keyvault/vaults",
				Scenario:            rules.ScenarioTenant,
				Severity:            rules.SeverityCritical,
				Message:             "Key vault stays associated with the source tenant ID after the transfer.",
				Impact:              "Access policies and RBAC reference principals from the old directory; all data-plane access breaks until the vault is re-tenanted.",
				Remediation:         "Update the vault tenant ID and recreate access policies after the subscription changes directory.",
				ReferenceLink:       linkKeyVaultMove,
			},
			{
				ID:                  "tenant-user-assigned-identity",
				ResourceTypePattern: "microsoft.managedidentity/userassignedidentities",
				Scenario:            rules.ScenarioTenant,
				Severity:            rules.SeverityBlocker,
				Message:             "User-assigned managed identities cannot survive a directory change.",
				Impact:              "The identity's service principal exists only in the source tenant; every consumer loses authentication.",
				Remediation:         "Recreate the identity in the target tenant and reassign it to consuming resources.",
				ReferenceLink:       linkTenantMove,
			},
			{
				ID:                  "tenant-system-identity",
				ResourceTypePattern: "*",
				Scenario:            rules.ScenarioTenant,
				Condition:           &rules.Condition{Field: "identity.type", Operator: rules.OpContains, Value: "SystemAssigned"},
				Severity:            rules.SeverityCritical,
				Message:             "System-assigned managed identity is invalidated by the directory change.",
				Impact:              "The identity's service principal is orphaned in the source tenant; token acquisition fails after the move.",
				Remediation:         "Disable and re-enable the system-assigned identity after the transfer, then reapply its role assignments.",
				ReferenceLink:       linkTenantMove,
			},
			{
				ID:                  "tenant-aad-domain-services",
				ResourceTypePattern: "microsoft.aad/domainservices",
				Scenario:            rules.ScenarioTenant,
				Severity:            rules.SeverityBlocker,
				Message:             "Azure AD Domain Services is bound to its directory and cannot be transferred.",
				Impact:              "The managed domain ceases to function in the target tenant.",
				Remediation:         "Delete the managed domain before the transfer and deploy a new one in the target tenant.",
				ReferenceLink:       linkMoveSupport,
			},
			{
				ID:                  "tenant-databricks",
				ResourceTypePattern: "microsoft.databricks/workspaces",
				Scenario:            rules.ScenarioTenant,
				Severity:            rules.SeverityBlocker,
				Message:             "Databricks workspaces are tied to the source tenant's identity configuration.",
				Impact:              "Workspace authentication and the managed resource group break on transfer.",
				Remediation:         "Recreate the workspace in the target tenant and migrate notebooks and jobs.",
				ReferenceLink:       linkMoveSupport,
			},
			{
				ID:                  "tenant-storage-aad-auth",
				ResourceTypePattern: "microsoft.storage/storageaccounts",
				Scenario:            rules.ScenarioTenant,
				Severity:            rules.SeverityWarning,
				Message:             "Azure AD based storage authorization must be reconfigured in the target tenant.",
				Impact:              "Callers using AAD tokens lose access; shared-key access keeps working.",
				DowntimeRisk:        true,
				Remediation:         "Reassign data-plane RBAC roles to target-tenant principals after the move.",
				ReferenceLink:       linkTenantMove,
			},
			{
				ID:                  "tenant-sql-aad-admin",
				ResourceTypePattern: "microsoft.sql/servers",
				Scenario:            rules.ScenarioTenant,
				Condition:           &rules.Condition{Field: "properties.administrators.administratorType", Operator: rules.OpEquals, Value: "ActiveDirectory"},
				Severity:            rules.SeverityCritical,
				Message:             "SQL server Azure AD administrator references a principal in the source tenant.",
				Impact:              "AAD logins fail after the directory change.",
				Remediation:         "Reset the AAD admin to a target-tenant principal immediately after the transfer.",
				ReferenceLink:       linkTenantMove,
			},
		},
	}
}
