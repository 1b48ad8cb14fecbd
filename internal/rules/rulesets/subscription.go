package rulesets

import "azmig/internal/rules"

// SubscriptionRules covers subscription-to-subscription moves. Resource-group
// moves inherit every rule in this source, so anything that blocks a
// subscription move blocks a resource-group move too.
func SubscriptionRules() rules.Source {
	return rules.Source{
		Name: "subscription",
		Rules: []rules.Rule{
			{
				ID:                  "sub-public-ip-standard",
				ResourceTypePattern: "microsoft.network/publicipaddresses",
				Scenario:            rules.ScenarioSubscription,
				Condition:           &rules.Condition{Field: "sku.name", Operator: rules.OpEquals, Value: "Standard"},
				Severity:            rules.SeverityBlocker,
				Message:             "Standard SKU public IP addresses cannot be moved to another subscription.",
				Impact:              "The move validation fails while this address exists in the move set.",
				Remediation:         "Disassociate and delete the address, move the remaining resources, then recreate it in the target subscription.",
				ReferenceLink:       linkMoveSupport,
			},
			{
				ID:                  "sub-sql-server",
				ResourceTypePattern: "microsoft.sql/servers",
				Scenario:            rules.ScenarioSubscription,
				Severity:            rules.SeverityBlocker,
				Message:             "SQL logical servers cannot be moved while server-level features (failover groups, auditing targets) reference the source subscription.",
				Impact:              "Move validation fails for the server and every database it hosts.",
				Remediation:         "Remove failover groups and cross-subscription references, or migrate databases via export/import into a server in the target subscription.",
				DowntimeRisk:        true,
				ReferenceLink:       linkMoveLimits,
			},
			{
				ID:                  "sub-sql-managed-instance",
				ResourceTypePattern: "microsoft.sql/managedinstances",
				Scenario:            rules.ScenarioSubscription,
				Severity:            rules.SeverityBlocker,
				Message:             "SQL managed instances do not support subscription moves.",
				Remediation:         "Use a cross-instance database restore into a managed instance created in the target subscription.",
				DowntimeRisk:        true,
				ReferenceLink:       linkMoveSupport,
			},
			{
				ID:                  "sub-classic-resource",
				ResourceTypePattern: "microsoft.classiccompute/*",
				Scenario:            rules.ScenarioSubscription,
				Severity:            rules.SeverityBlocker,
				Message:             "Classic deployment model resources cannot move between subscriptions.",
				Remediation:         "Migrate the resource to the Azure Resource Manager model first.",
				ReferenceLink:       linkMoveSupport,
			},
			{
				ID:                  "sub-vnet-peered",
				ResourceTypePattern: "microsoft.network/virtualnetworks",
				Scenario:            rules.ScenarioSubscription,
				Condition:           &rules.Condition{Field: "properties.virtualNetworkPeerings", Operator: rules.OpNonEmpty},
				Severity:            rules.SeverityBlocker,
				Message:             "Peered virtual networks cannot be moved while peerings exist.",
				Impact:              "Move validation fails; traffic across the peering stops if it is force-deleted.",
				Remediation:         "Delete the peerings, move the network, then re-establish peering from the target subscription.",
				DowntimeRisk:        true,
				ReferenceLink:       linkMoveLimits,
			},
			{
				ID:                  "sub-app-service-certificate",
				ResourceTypePattern: "microsoft.web/certificates",
				Scenario:            rules.ScenarioSubscription,
				Severity:            rules.SeverityBlocker,
				Message:             "App Service certificates cannot be moved independently of their web apps.",
				Remediation:         "Move the certificate together with every app that binds it, in a single move operation.",
				ReferenceLink:       linkMoveSupport,
			},
			{
				ID:                  "sub-web-app",
				ResourceTypePattern: "microsoft.web/sites",
				Scenario:            rules.ScenarioSubscription,
				Severity:            rules.SeverityWarning,
				Message:             "Web apps must move together with their App Service plan and all slots.",
				Impact:              "A partial move set fails validation; custom domains need re-verification afterwards.",
				Remediation:         "Include the plan, all slots, and bound certificates in the same move operation.",
				ReferenceLink:       linkMoveLimits,
			},
			{
				ID:                  "sub-storage-account",
				ResourceTypePattern: "microsoft.storage/storageaccounts",
				Scenario:            rules.ScenarioSubscription,
				Severity:            rules.SeverityWarning,
				Message:             "Storage account access keys survive the move but RBAC and private endpoints do not.",
				Impact:              "AAD-authorized callers and private-endpoint consumers lose access until reconfigured.",
				Remediation:         "Reapply data-plane role assignments and recreate private endpoints in the target subscription.",
				ReferenceLink:       linkMoveLimits,
			},
			{
				ID:                  "sub-media-running-job",
				ResourceTypePattern: "microsoft.media/*",
				Scenario:            rules.ScenarioSubscription,
				Condition:           &rules.Condition{Field: "properties.state", Operator: rules.OpEquals, Value: "Running"},
				Severity:            rules.SeverityBlocker,
				Message:             "Media services cannot move while jobs are running.",
				Remediation:         "Wait for running jobs to complete or cancel them, then retry the move.",
				ReferenceLink:       linkMoveSupport,
			},
			{
				ID:                  "sub-managed-application",
				ResourceTypePattern: "microsoft.solutions/applications",
				Scenario:            rules.ScenarioSubscription,
				Severity:            rules.SeverityBlocker,
				Message:             "Marketplace managed applications cannot be moved across subscriptions.",
				Remediation:         "Redeploy the managed application in the target subscription.",
				ReferenceLink:       linkMoveSupport,
			},
			{
				ID:                  "sub-netapp",
				ResourceTypePattern: "microsoft.netapp/netappaccounts",
				Scenario:            rules.ScenarioSubscription,
				Severity:            rules.SeverityBlocker,
				Message:             "NetApp accounts and their pools cannot change subscription.",
				Remediation:         "Create a new account in the target subscription and replicate volumes across.",
				DowntimeRisk:        true,
				ReferenceLink:       linkMoveSupport,
			},
			{
				ID:                  "sub-restore-point-collection",
				ResourceTypePattern: "microsoft.compute/restorepointcollections",
				Scenario:            rules.ScenarioSubscription,
				Severity:            rules.SeverityBlocker,
				Message:             "Restore point collections cannot be moved between subscriptions.",
				Remediation:         "Delete the collection before the move; restore points are recreated by the next backup cycle.",
				ReferenceLink:       linkMoveSupport,
			},
			{
				ID:                  "sub-aks-cluster",
				ResourceTypePattern: "microsoft.containerservice/managedclusters",
				Scenario:            rules.ScenarioSubscription,
				Severity:            rules.SeverityBlocker,
				Message:             "AKS clusters cannot be moved; the node resource group and identities do not follow.",
				Remediation:         "Stand up a cluster in the target subscription and migrate workloads with a GitOps or backup/restore flow.",
				DowntimeRisk:        true,
				ReferenceLink:       linkMoveSupport,
			},
			{
				ID:                  "sub-recovery-vault-backup",
				ResourceTypePattern: "microsoft.recoveryservices/vaults",
				Scenario:            rules.ScenarioSubscription,
				Severity:            rules.SeverityWarning,
				Message:             "Protected items keep their policies, but the vault must move together with them.",
				Impact:              "Backups continue, but cross-subscription protected VMs must be re-registered.",
				Remediation:         "Move the vault and all protected resources in the same operation.",
				ReferenceLink:       linkMoveLimits,
			},
		},
	}
}
