package rulesets

import "azmig/internal/rules"

// RegionRules covers cross-region relocation. Region moves always have a
// redeployment path, so this source never issues a Blocker: the worst case
// is Critical (redeploy and re-point consumers).
func RegionRules() rules.Source {
	return rules.Source{
		Name: "region",
		Rules: []rules.Rule{
			{
				ID:                  "region-virtual-machine",
				ResourceTypePattern: "microsoft.compute/virtualmachines",
				Scenario:            rules.ScenarioRegion,
				Severity:            rules.SeverityWarning,
				Message:             "Virtual machines move via Azure Resource Mover with a replication and cutover window.",
				Impact:              "The VM is briefly stopped at cutover; its private and public IPs change.",
				Remediation:         "Plan a maintenance window and use Azure Resource Mover or Site Recovery.",
				DowntimeRisk:        true,
				ReferenceLink:       "https://learn.microsoft.com/azure/resource-mover/tutorial-move-region-virtual-machines",
			},
			{
				ID:                  "region-public-ip",
				ResourceTypePattern: "microsoft.network/publicipaddresses",
				Scenario:            rules.ScenarioRegion,
				Severity:            rules.SeverityCritical,
				Message:             "Public IP addresses cannot keep their address across regions.",
				Impact:              "DNS records, firewall allow-lists, and clients pinned to the address break.",
				Remediation:         "Create a new address in the target region and update DNS before cutover.",
				DowntimeRisk:        true,
				ReferenceLink:       linkResourceMover,
			},
			{
				ID:                  "region-sql",
				ResourceTypePattern: "microsoft.sql/*",
				Scenario:            rules.ScenarioRegion,
				Severity:            rules.SeverityCritical,
				Message:             "SQL resources relocate via geo-replication or export, not an in-place move.",
				Impact:              "Connection strings change; replication lag determines the cutover window.",
				Remediation:         "Set up an active geo-replica in the target region and fail over during the window.",
				DowntimeRisk:        true,
				ReferenceLink:       linkResourceMover,
			},
			{
				ID:                  "region-keyvault",
				ResourceTypePattern: "microsoft.keyvault/vaults",
				Scenario:            rules.ScenarioRegion,
				Severity:            rules.SeverityCritical,
				Message:             "Key vaults cannot be moved; secrets and keys must be migrated to a new vault.",
				Impact:              "Every consumer must be re-pointed; non-exportable keys cannot be migrated at all.",
				Remediation:         "Create a vault in the target region, copy secrets, and rotate keys that cannot be exported.",
				ReferenceLink:       "https://learn.microsoft.com/azure/key-vault/general/move-region",
			},
			{
				ID:                  "region-snapshot-incremental",
				ResourceTypePattern: "microsoft.compute/snapshots",
				Scenario:            rules.ScenarioRegion,
				Condition:           &rules.Condition{Field: "properties.incremental", Operator: rules.OpEquals, Value: true},
				Severity:            rules.SeverityWarning,
				Message:             "Incremental snapshots copy across regions as a background job.",
				Impact:              "The copy is asynchronous; the target snapshot is usable only once the copy completes.",
				Remediation:         "Start the cross-region copy early and verify completion before depending on the target.",
				ReferenceLink:       linkResourceMover,
			},
			{
				ID:                  "region-storage-account",
				ResourceTypePattern: "microsoft.storage/storageaccounts",
				Scenario:            rules.ScenarioRegion,
				Severity:            rules.SeverityWarning,
				Message:             "Storage accounts are recreated in the target region; data is copied, not moved.",
				Impact:              "The account endpoint changes unless a custom domain fronts it; copy time scales with data volume.",
				Remediation:         "Provision the target account, copy data with AzCopy, then re-point consumers.",
				DowntimeRisk:        true,
				ReferenceLink:       "https://learn.microsoft.com/azure/storage/common/storage-account-move",
			},
			{
				ID:                  "region-virtual-network",
				ResourceTypePattern: "microsoft.network/virtualnetworks",
				Scenario:            rules.ScenarioRegion,
				Severity:            rules.SeverityWarning,
				Message:             "Virtual networks are recreated in the target region with the same address space.",
				Impact:              "Peerings, gateways, and service endpoints must be rebuilt.",
				Remediation:         "Use Azure Resource Mover to stage the network and dependent resources together.",
				ReferenceLink:       "https://learn.microsoft.com/azure/virtual-network/move-across-regions-vnet-portal",
			},
			{
				ID:                  "region-network-interface",
				ResourceTypePattern: "microsoft.network/networkinterfaces",
				Scenario:            rules.ScenarioRegion,
				Severity:            rules.SeverityCritical,
				Message:             "Network interfaces cannot move alone; they are recreated with their VM.",
				Impact:              "Private IP addresses change unless the target subnet reserves them.",
				Remediation:         "Move the owning VM with Resource Mover; request static private IPs in the target subnet.",
				ReferenceLink:       linkResourceMover,
			},
			{
				ID:                  "region-media-running-job",
				ResourceTypePattern: "microsoft.media/*",
				Scenario:            rules.ScenarioRegion,
				Condition:           &rules.Condition{Field: "properties.state", Operator: rules.OpEquals, Value: "Running"},
				Severity:            rules.SeverityCritical,
				Message:             "Running media jobs must complete before the service is redeployed in another region.",
				Remediation:         "Drain or cancel running jobs, then redeploy and re-submit.",
				ReferenceLink:       linkMoveSupport,
			},
			{
				ID:                  "region-classic-resource",
				ResourceTypePattern: "microsoft.classiccompute/*",
				Scenario:            rules.ScenarioRegion,
				Severity:            rules.SeverityCritical,
				Message:             "Classic resources must be migrated to Resource Manager before any region change.",
				Remediation:         "Run the classic-to-ARM migration, then relocate the migrated resources.",
				ReferenceLink:       linkMoveSupport,
			},
			{
				ID:                  "region-zone-pinned",
				ResourceTypePattern: "*",
				Scenario:            rules.ScenarioRegion,
				Condition:           &rules.Condition{Field: "zones", Operator: rules.OpNonEmpty},
				Severity:            rules.SeverityWarning,
				Message:             "Zone-pinned resource; the target region must offer availability zones.",
				Impact:              "Deployment fails in target regions without zone support or with different zone counts.",
				Remediation:         "Verify zone availability in the target region before the move.",
				ReferenceLink:       linkResourceMover,
			},
			{
				ID:                  "region-aks-cluster",
				ResourceTypePattern: "microsoft.containerservice/managedclusters",
				Scenario:            rules.ScenarioRegion,
				Severity:            rules.SeverityCritical,
				Message:             "AKS clusters are redeployed in the target region, not moved.",
				Remediation:         "Recreate the cluster from configuration and shift traffic gradually.",
				DowntimeRisk:        true,
				ReferenceLink:       linkResourceMover,
			},
			{
				ID:                  "region-app-service-certificate",
				ResourceTypePattern: "microsoft.web/certificates",
				Scenario:            rules.ScenarioRegion,
				Severity:            rules.SeverityCritical,
				Message:             "App Service certificates are recreated alongside their apps in the target region.",
				Remediation:         "Re-import or re-issue the certificate after redeploying the apps.",
				ReferenceLink:       linkMoveSupport,
			},
			{
				ID:                  "region-user-assigned-identity",
				ResourceTypePattern: "microsoft.managedidentity/userassignedidentities",
				Scenario:            rules.ScenarioRegion,
				Severity:            rules.SeverityCritical,
				Message:             "User-assigned identities are regional; a new identity is created in the target region.",
				Impact:              "Federated credentials and role assignments must be recreated for the new identity.",
				Remediation:         "Create the identity in the target region and reassign roles before cutover.",
				ReferenceLink:       linkMoveSupport,
			},
			{
				ID:                  "region-managed-application",
				ResourceTypePattern: "microsoft.solutions/applications",
				Scenario:            rules.ScenarioRegion,
				Severity:            rules.SeverityCritical,
				Message:             "Marketplace managed applications must be redeployed in the target region.",
				Remediation:         "Deploy the offer again in the target region and migrate application state.",
				ReferenceLink:       linkMoveSupport,
			},
			{
				ID:                  "region-netapp",
				ResourceTypePattern: "microsoft.netapp/netappaccounts",
				Scenario:            rules.ScenarioRegion,
				Severity:            rules.SeverityCritical,
				Message:             "NetApp volumes relocate via cross-region replication to a new account.",
				Remediation:         "Create a target-region account and replicate volumes; break replication at cutover.",
				DowntimeRisk:        true,
				ReferenceLink:       linkMoveSupport,
			},
			{
				ID:                  "region-recovery-vault",
				ResourceTypePattern: "microsoft.recoveryservices/vaults",
				Scenario:            rules.ScenarioRegion,
				Severity:            rules.SeverityCritical,
				Message:             "Recovery Services vaults cannot change region; protection history stays behind.",
				Impact:              "Existing recovery points are not transferred to the new vault.",
				Remediation:         "Create a vault in the target region and re-protect resources after their move.",
				ReferenceLink:       linkMoveSupport,
			},
			{
				ID:                  "region-restore-point-collection",
				ResourceTypePattern: "microsoft.compute/restorepointcollections",
				Scenario:            rules.ScenarioRegion,
				Severity:            rules.SeverityCritical,
				Message:             "Restore point collections are regional and cannot be relocated.",
				Remediation:         "Delete the collection and let backups recreate restore points in the target region.",
				ReferenceLink:       linkMoveSupport,
			},
		},
	}
}
