// Package catalog - Azure authoritative catalog
package catalog

// RegisterAzure populates the catalog with Azure.
// Azure zones are numbered per region.
func RegisterAzure(c *Catalog) {
	c.Register(ProviderEntry{
		Provider:    Azure,
		DisplayName: "Microsoft Azure",
		Publishers: []string{
			"Microsoft",
			"Azure Marketplace",
			"Third Party",
		},
		InvoiceIssuers: []string{
			"Microsoft Corporation",
			"Microsoft Ireland",
			"Microsoft Singapore",
		},
		Regions: []Region{
			azureRegion("eastus", "East US"),
			azureRegion("westus", "West US"),
			azureRegion("northeurope", "North Europe"),
			azureRegion("southeastasia", "Southeast Asia"),
		},
		Services: map[string][]string{
			"Compute":                 {"Azure Virtual Machines", "Azure Functions", "Azure Container Instances", "Azure Batch", "Azure App Service", "Azure Kubernetes Service"},
			"Storage":                 {"Azure Blob Storage", "Azure Disk Storage", "Azure Files", "Azure Archive Storage", "Azure Data Lake Storage", "Azure Backup"},
			"Databases":               {"Azure SQL Database", "Azure Cosmos DB", "Azure Synapse", "Azure Cache for Redis", "Azure Database for PostgreSQL", "Azure Database for MySQL"},
			"Networking":              {"Azure Virtual Network", "Azure ExpressRoute", "Azure CDN", "Azure Load Balancer", "Azure Traffic Manager", "Azure Front Door"},
			"AI and Machine Learning": {"Azure Machine Learning", "Azure Cognitive Services", "Azure Computer Vision", "Azure OpenAI", "Azure Bot Service", "Azure Form Recognizer"},
			"Other":                   {"Azure Active Directory", "Azure Monitor", "Azure Policy", "Azure Key Vault", "Azure Resource Manager", "Azure Cost Management"},
		},
	})
}

func azureRegion(id, name string) Region {
	return Region{
		ID:    id,
		Name:  name,
		Zones: []string{id + "-1", id + "-2", id + "-3"},
	}
}
