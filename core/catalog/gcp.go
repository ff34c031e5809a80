// Package catalog - GCP authoritative catalog
package catalog

// RegisterGCP populates the catalog with Google Cloud
func RegisterGCP(c *Catalog) {
	c.Register(ProviderEntry{
		Provider:    GCP,
		DisplayName: "Google Cloud",
		Publishers: []string{
			"Google",
			"Google Cloud Marketplace",
			"Third Party",
		},
		InvoiceIssuers: []string{
			"Google LLC",
			"Google Cloud EMEA",
			"Google Asia Pacific",
		},
		Regions: []Region{
			{ID: "us-central1", Name: "Iowa", Zones: []string{"us-central1-a", "us-central1-b", "us-central1-c", "us-central1-f"}},
			{ID: "us-east1", Name: "South Carolina", Zones: []string{"us-east1-b", "us-east1-c", "us-east1-d"}},
			{ID: "europe-west1", Name: "Belgium", Zones: []string{"europe-west1-b", "europe-west1-c", "europe-west1-d"}},
			{ID: "asia-southeast1", Name: "Singapore", Zones: []string{"asia-southeast1-a", "asia-southeast1-b", "asia-southeast1-c"}},
		},
		Services: map[string][]string{
			"Compute":                 {"Google Compute Engine", "Google Cloud Functions", "Google Cloud Run", "Google Cloud Batch", "Google App Engine", "Google Kubernetes Engine"},
			"Storage":                 {"Google Cloud Storage", "Google Persistent Disk", "Google Filestore", "Google Cloud Archive", "Google Cloud Backup", "Google Transfer Service"},
			"Databases":               {"Google Cloud SQL", "Google Firestore", "Google BigQuery", "Google Memorystore", "Google Cloud Spanner", "Google Bigtable"},
			"Networking":              {"Google VPC", "Google Cloud Interconnect", "Google Cloud CDN", "Google Cloud Load Balancing", "Google Cloud DNS", "Google Cloud Armor"},
			"AI and Machine Learning": {"Google AI Platform", "Google Cloud AI", "Google Cloud Vision", "Google Vertex AI", "Google Cloud Natural Language", "Google Cloud Translation"},
			"Other":                   {"Google Cloud IAM", "Google Cloud Monitoring", "Google Cloud Asset Inventory", "Google Cloud Security Command Center", "Google Cloud Deployment Manager", "Google Cloud Billing"},
		},
	})
}
