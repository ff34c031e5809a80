// Package catalog - AWS authoritative catalog
// This is the source of truth for AWS billing entities, regions and services.
package catalog

// RegisterAWS populates the catalog with AWS
func RegisterAWS(c *Catalog) {
	c.Register(ProviderEntry{
		Provider:    AWS,
		DisplayName: "AWS",
		Publishers: []string{
			"Amazon Web Services",
			"AWS Marketplace",
			"Third Party",
		},
		InvoiceIssuers: []string{
			"Amazon Web Services, Inc.",
			"AWS EMEA SARL",
			"AWS Asia Pacific",
		},
		Regions: []Region{
			{ID: "us-east-1", Name: "US East (N. Virginia)", Zones: []string{"us-east-1a", "us-east-1b", "us-east-1c", "us-east-1d", "us-east-1f"}},
			{ID: "us-west-2", Name: "US West (Oregon)", Zones: []string{"us-west-2a", "us-west-2b", "us-west-2c", "us-west-2d"}},
			{ID: "eu-west-1", Name: "Europe (Ireland)", Zones: []string{"eu-west-1a", "eu-west-1b", "eu-west-1c"}},
			{ID: "ap-southeast-1", Name: "Asia Pacific (Singapore)", Zones: []string{"ap-southeast-1a", "ap-southeast-1b", "ap-southeast-1c"}},
			{ID: "ca-central-1", Name: "Canada (Central)", Zones: []string{"ca-central-1a", "ca-central-1b", "ca-central-1d"}},
		},
		Services: map[string][]string{
			"Compute":                 {"Amazon EC2", "AWS Lambda", "Amazon ECS", "AWS Batch", "Amazon Lightsail", "AWS Fargate"},
			"Storage":                 {"Amazon S3", "Amazon EBS", "Amazon EFS", "Amazon Glacier", "AWS Storage Gateway", "AWS Backup"},
			"Databases":               {"Amazon RDS", "Amazon DynamoDB", "Amazon Redshift", "Amazon ElastiCache", "Amazon DocumentDB", "Amazon Neptune"},
			"Networking":              {"Amazon VPC", "AWS Direct Connect", "Amazon CloudFront", "AWS Load Balancer", "Amazon Route 53", "AWS Global Accelerator"},
			"AI and Machine Learning": {"Amazon SageMaker", "Amazon Comprehend", "Amazon Rekognition", "AWS Bedrock", "Amazon Textract", "Amazon Forecast"},
			"Other":                   {"AWS IAM", "Amazon CloudWatch", "AWS Config", "AWS CloudTrail", "AWS Systems Manager", "AWS Organizations"},
		},
	})
}
