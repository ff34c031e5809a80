// Package focus - FOCUS v1.1 column set
package focus

// Column names
const (
	AvailabilityZone           = "AvailabilityZone"
	BilledCost                 = "BilledCost"
	BillingAccountId           = "BillingAccountId"
	BillingAccountName         = "BillingAccountName"
	BillingCurrency            = "BillingCurrency"
	BillingPeriodEnd           = "BillingPeriodEnd"
	BillingPeriodStart         = "BillingPeriodStart"
	CapacityReservationId      = "CapacityReservationId"
	CapacityReservationStatus  = "CapacityReservationStatus"
	ChargeCategory             = "ChargeCategory"
	ChargeClass                = "ChargeClass"
	ChargeDescription          = "ChargeDescription"
	ChargeFrequency            = "ChargeFrequency"
	ChargePeriodEnd            = "ChargePeriodEnd"
	ChargePeriodStart          = "ChargePeriodStart"
	CommitmentDiscountCategory = "CommitmentDiscountCategory"
	CommitmentDiscountId       = "CommitmentDiscountId"
	CommitmentDiscountName     = "CommitmentDiscountName"
	CommitmentDiscountQuantity = "CommitmentDiscountQuantity"
	CommitmentDiscountStatus   = "CommitmentDiscountStatus"
	CommitmentDiscountType     = "CommitmentDiscountType"
	CommitmentDiscountUnit     = "CommitmentDiscountUnit"
	ConsumedQuantity           = "ConsumedQuantity"
	ConsumedUnit               = "ConsumedUnit"
	ContractedCost             = "ContractedCost"
	ContractedUnitPrice        = "ContractedUnitPrice"
	EffectiveCost              = "EffectiveCost"
	InvoiceIssuerName          = "InvoiceIssuerName"
	ListCost                   = "ListCost"
	ListUnitPrice              = "ListUnitPrice"
	PricingCategory            = "PricingCategory"
	PricingQuantity            = "PricingQuantity"
	PricingUnit                = "PricingUnit"
	ProviderName               = "ProviderName"
	PublisherName              = "PublisherName"
	RegionId                   = "RegionId"
	RegionName                 = "RegionName"
	ResourceId                 = "ResourceId"
	ResourceName               = "ResourceName"
	ResourceType               = "ResourceType"
	ServiceCategory            = "ServiceCategory"
	ServiceName                = "ServiceName"
	ServiceSubcategory         = "ServiceSubcategory"
	SkuId                      = "SkuId"
	SkuMeter                   = "SkuMeter"
	SkuPriceDetails            = "SkuPriceDetails"
	SkuPriceId                 = "SkuPriceId"
	SubAccountId               = "SubAccountId"
	SubAccountName             = "SubAccountName"
	Tags                       = "Tags"
)

// Service categories defined by FOCUS v1.1
var ServiceCategories = []string{
	"AI and Machine Learning",
	"Analytics",
	"Business Applications",
	"Compute",
	"Databases",
	"Developer Tools",
	"Multicloud",
	"Identity",
	"Integration",
	"Internet of Things",
	"Management and Governance",
	"Media",
	"Migration",
	"Mobile",
	"Networking",
	"Security",
	"Storage",
	"Web",
	"Other",
}

// Service subcategories defined by FOCUS v1.1
var ServiceSubcategories = []string{
	"AI Platforms",
	"Bots",
	"Generative AI",
	"Machine Learning",
	"Natural Language Processing",
	"Other (AI and Machine Learning)",
	"Analytics Platforms",
	"Business Intelligence",
	"Data Processing",
	"Search",
	"Streaming Analytics",
	"Other (Analytics)",
	"Productivity and Collaboration",
	"Other (Business Applications)",
	"Containers",
	"End User Computing",
	"Quantum Compute",
	"Serverless Compute",
	"Virtual Machines",
	"Other (Compute)",
	"Caching",
	"Data Warehouses",
	"Ledger Databases",
	"NoSQL Databases",
	"Relational Databases",
	"Time Series Databases",
	"Other (Databases)",
	"Developer Platforms",
	"Continuous Integration and Deployment",
	"Development Environments",
	"Source Code Management",
	"Quality Assurance",
	"Other (Developer Tools)",
	"Identity and Access Management",
	"Other (Identity)",
	"API Management",
	"Messaging",
	"Workflow Orchestration",
	"Other (Integration)",
	"IoT Analytics",
	"IoT Platforms",
	"Other (Internet of Things)",
	"Architecture",
	"Compliance",
	"Cost Management",
	"Data Governance",
	"Disaster Recovery",
	"Endpoint Management",
	"Observability",
	"Support",
	"Other (Management and Governance)",
	"Content Creation",
	"Gaming",
	"Media Streaming",
	"Mixed Reality",
	"Other (Media)",
	"Data Migration",
	"Resource Migration",
	"Other (Migration)",
	"Other (Mobile)",
	"Multicloud Integration",
	"Other (Multicloud)",
	"Application Networking",
	"Content Delivery",
	"Network Connectivity",
	"Network Infrastructure",
	"Network Routing",
	"Network Security",
	"Other (Networking)",
	"Secret Management",
	"Security Posture Management",
	"Threat Detection and Response",
	"Other (Security)",
	"Backup Storage",
	"Block Storage",
	"File Storage",
	"Object Storage",
	"Storage Platforms",
	"Other (Storage)",
	"Application Platforms",
	"Other (Web)",
	"Other (Other)",
}

// RegisterV11 populates the registry with the 50 FOCUS v1.1 columns
func RegisterV11(r *Registry) {
	r.Register(Descriptor{Name: AvailabilityZone, DisplayName: "Availability Zone", Kind: Dimension, Level: Recommended, Nullable: true, DataType: TypeString, Introduced: "0.5"})
	r.Register(Descriptor{Name: BilledCost, DisplayName: "Billed Cost", Kind: Metric, Level: Mandatory, Nullable: false, DataType: TypeDecimal, ValueFormat: "Numeric Format", Introduced: "0.5"})
	r.Register(Descriptor{Name: BillingAccountId, DisplayName: "Billing Account ID", Kind: Dimension, Level: Mandatory, Nullable: false, DataType: TypeString, Introduced: "0.5"})
	r.Register(Descriptor{Name: BillingAccountName, DisplayName: "Billing Account Name", Kind: Dimension, Level: Mandatory, Nullable: true, DataType: TypeString, Introduced: "0.5"})
	r.Register(Descriptor{Name: BillingCurrency, DisplayName: "Billing Currency", Kind: Dimension, Level: Mandatory, Nullable: false, DataType: TypeString, ValueFormat: "Currency Code Format", Introduced: "0.5"})
	r.Register(Descriptor{Name: BillingPeriodEnd, DisplayName: "Billing Period End", Kind: Dimension, Level: Mandatory, Nullable: false, DataType: TypeDateTime, ValueFormat: "Date/Time Format", Introduced: "0.5"})
	r.Register(Descriptor{Name: BillingPeriodStart, DisplayName: "Billing Period Start", Kind: Dimension, Level: Mandatory, Nullable: false, DataType: TypeDateTime, ValueFormat: "Date/Time Format", Introduced: "0.5"})
	r.Register(Descriptor{Name: CapacityReservationId, DisplayName: "Capacity Reservation ID", Kind: Dimension, Level: Conditional, Nullable: true, DataType: TypeString, Introduced: "1.1"})
	r.Register(Descriptor{Name: CapacityReservationStatus, DisplayName: "Capacity Reservation Status", Kind: Dimension, Level: Conditional, Nullable: true, DataType: TypeString, AllowedValues: []string{"Used", "Unused"}, ValueFormat: "Allowed values", Introduced: "1.1"})
	r.Register(Descriptor{Name: ChargeCategory, DisplayName: "Charge Category", Kind: Dimension, Level: Mandatory, Nullable: false, DataType: TypeString, AllowedValues: []string{"Usage", "Purchase", "Tax", "Credit", "Adjustment"}, ValueFormat: "Allowed values", Introduced: "0.5"})
	r.Register(Descriptor{Name: ChargeClass, DisplayName: "Charge Class", Kind: Dimension, Level: Mandatory, Nullable: true, DataType: TypeString, AllowedValues: []string{"Correction"}, ValueFormat: "Allowed values", Introduced: "1.0"})
	r.Register(Descriptor{Name: ChargeDescription, DisplayName: "Charge Description", Kind: Dimension, Level: Mandatory, Nullable: true, DataType: TypeString, Introduced: "1.0-preview"})
	r.Register(Descriptor{Name: ChargeFrequency, DisplayName: "Charge Frequency", Kind: Dimension, Level: Recommended, Nullable: false, DataType: TypeString, AllowedValues: []string{"One-Time", "Recurring", "Usage-Based"}, ValueFormat: "Allowed values", Introduced: "1.0-preview"})
	r.Register(Descriptor{Name: ChargePeriodEnd, DisplayName: "Charge Period End", Kind: Dimension, Level: Mandatory, Nullable: false, DataType: TypeDateTime, ValueFormat: "Date/Time Format", Introduced: "0.5"})
	r.Register(Descriptor{Name: ChargePeriodStart, DisplayName: "Charge Period Start", Kind: Dimension, Level: Mandatory, Nullable: false, DataType: TypeDateTime, ValueFormat: "Date/Time Format", Introduced: "0.5"})
	r.Register(Descriptor{Name: CommitmentDiscountCategory, DisplayName: "Commitment Discount Category", Kind: Dimension, Level: Conditional, Nullable: true, DataType: TypeString, AllowedValues: []string{"Spend", "Usage"}, ValueFormat: "Allowed values", Introduced: "1.0-preview"})
	r.Register(Descriptor{Name: CommitmentDiscountId, DisplayName: "Commitment Discount ID", Kind: Dimension, Level: Conditional, Nullable: true, DataType: TypeString, Introduced: "1.0-preview"})
	r.Register(Descriptor{Name: CommitmentDiscountName, DisplayName: "Commitment Discount Name", Kind: Dimension, Level: Conditional, Nullable: true, DataType: TypeString, Introduced: "1.0-preview"})
	r.Register(Descriptor{Name: CommitmentDiscountQuantity, DisplayName: "Commitment Discount Quantity", Kind: Metric, Level: Conditional, Nullable: true, DataType: TypeDecimal, ValueFormat: "Numeric Format", Introduced: "1.1"})
	r.Register(Descriptor{Name: CommitmentDiscountStatus, DisplayName: "Commitment Discount Status", Kind: Dimension, Level: Conditional, Nullable: true, DataType: TypeString, AllowedValues: []string{"Used", "Unused"}, ValueFormat: "Allowed values", Introduced: "1.0"})
	r.Register(Descriptor{Name: CommitmentDiscountType, DisplayName: "Commitment Discount Type", Kind: Dimension, Level: Conditional, Nullable: true, DataType: TypeString, Introduced: "1.0-preview"})
	r.Register(Descriptor{Name: CommitmentDiscountUnit, DisplayName: "Commitment Discount Unit", Kind: Dimension, Level: Conditional, Nullable: true, DataType: TypeString, ValueFormat: "Unit Format", Introduced: "1.1"})
	r.Register(Descriptor{Name: ConsumedQuantity, DisplayName: "Consumed Quantity", Kind: Metric, Level: Conditional, Nullable: true, DataType: TypeDecimal, ValueFormat: "Numeric Format", Introduced: "1.0"})
	r.Register(Descriptor{Name: ConsumedUnit, DisplayName: "Consumed Unit", Kind: Dimension, Level: Conditional, Nullable: true, DataType: TypeString, ValueFormat: "Unit Format", Introduced: "1.0"})
	r.Register(Descriptor{Name: ContractedCost, DisplayName: "Contracted Cost", Kind: Metric, Level: Mandatory, Nullable: false, DataType: TypeDecimal, ValueFormat: "Numeric Format", Introduced: "1.0"})
	r.Register(Descriptor{Name: ContractedUnitPrice, DisplayName: "Contracted Unit Price", Kind: Metric, Level: Conditional, Nullable: true, DataType: TypeDecimal, ValueFormat: "Numeric Format", Introduced: "1.0"})
	r.Register(Descriptor{Name: EffectiveCost, DisplayName: "Effective Cost", Kind: Metric, Level: Mandatory, Nullable: false, DataType: TypeDecimal, ValueFormat: "Numeric Format", Introduced: "0.5"})
	r.Register(Descriptor{Name: InvoiceIssuerName, DisplayName: "Invoice Issuer", Kind: Dimension, Level: Mandatory, Nullable: false, DataType: TypeString, Introduced: "0.5"})
	r.Register(Descriptor{Name: ListCost, DisplayName: "List Cost", Kind: Metric, Level: Mandatory, Nullable: false, DataType: TypeDecimal, ValueFormat: "Numeric Format", Introduced: "1.0-preview"})
	r.Register(Descriptor{Name: ListUnitPrice, DisplayName: "List Unit Price", Kind: Metric, Level: Conditional, Nullable: true, DataType: TypeDecimal, ValueFormat: "Numeric Format", Introduced: "1.0-preview"})
	r.Register(Descriptor{Name: PricingCategory, DisplayName: "Pricing Category", Kind: Dimension, Level: Conditional, Nullable: true, DataType: TypeString, AllowedValues: []string{"Standard", "Dynamic", "Committed", "Other"}, ValueFormat: "Allowed values", Introduced: "1.0-preview"})
	r.Register(Descriptor{Name: PricingQuantity, DisplayName: "Pricing Quantity", Kind: Metric, Level: Mandatory, Nullable: true, DataType: TypeDecimal, ValueFormat: "Numeric Format", Introduced: "1.0-preview"})
	r.Register(Descriptor{Name: PricingUnit, DisplayName: "Pricing Unit", Kind: Dimension, Level: Mandatory, Nullable: true, DataType: TypeString, ValueFormat: "Unit Format", Introduced: "1.0-preview"})
	r.Register(Descriptor{Name: ProviderName, DisplayName: "Provider", Kind: Dimension, Level: Mandatory, Nullable: false, DataType: TypeString, Introduced: "0.5"})
	r.Register(Descriptor{Name: PublisherName, DisplayName: "Publisher", Kind: Dimension, Level: Mandatory, Nullable: false, DataType: TypeString, Introduced: "0.5"})
	r.Register(Descriptor{Name: RegionId, DisplayName: "Region ID", Kind: Dimension, Level: Conditional, Nullable: true, DataType: TypeString, Introduced: "1.0"})
	r.Register(Descriptor{Name: RegionName, DisplayName: "Region Name", Kind: Dimension, Level: Conditional, Nullable: true, DataType: TypeString, Introduced: "1.0"})
	r.Register(Descriptor{Name: ResourceId, DisplayName: "Resource ID", Kind: Dimension, Level: Conditional, Nullable: true, DataType: TypeString, Introduced: "0.5"})
	r.Register(Descriptor{Name: ResourceName, DisplayName: "Resource Name", Kind: Dimension, Level: Conditional, Nullable: true, DataType: TypeString, Introduced: "0.5"})
	r.Register(Descriptor{Name: ResourceType, DisplayName: "Resource Type", Kind: Dimension, Level: Conditional, Nullable: true, DataType: TypeString, Introduced: "1.0-preview"})
	r.Register(Descriptor{Name: ServiceCategory, DisplayName: "Service Category", Kind: Dimension, Level: Mandatory, Nullable: false, DataType: TypeString, AllowedValues: ServiceCategories, ValueFormat: "Allowed Values", Introduced: "0.5"})
	r.Register(Descriptor{Name: ServiceName, DisplayName: "Service Name", Kind: Dimension, Level: Mandatory, Nullable: false, DataType: TypeString, Introduced: "0.5"})
	r.Register(Descriptor{Name: ServiceSubcategory, DisplayName: "Service Subcategory", Kind: Dimension, Level: Recommended, Nullable: false, DataType: TypeString, AllowedValues: ServiceSubcategories, ValueFormat: "Allowed Values", Introduced: "1.1"})
	r.Register(Descriptor{Name: SkuId, DisplayName: "SKU ID", Kind: Dimension, Level: Conditional, Nullable: true, DataType: TypeString, Introduced: "1.0-preview"})
	r.Register(Descriptor{Name: SkuMeter, DisplayName: "SKU Meter", Kind: Dimension, Level: Conditional, Nullable: true, DataType: TypeString, Introduced: "1.1"})
	r.Register(Descriptor{Name: SkuPriceDetails, DisplayName: "SKU Price Details", Kind: Dimension, Level: Conditional, Nullable: true, DataType: TypeJSON, ValueFormat: "Key-Value Format", Introduced: "1.1"})
	r.Register(Descriptor{Name: SkuPriceId, DisplayName: "SKU Price ID", Kind: Dimension, Level: Conditional, Nullable: true, DataType: TypeString, Introduced: "1.0-preview"})
	r.Register(Descriptor{Name: SubAccountId, DisplayName: "Sub Account ID", Kind: Dimension, Level: Conditional, Nullable: true, DataType: TypeString, Introduced: "0.5"})
	r.Register(Descriptor{Name: SubAccountName, DisplayName: "Sub Account Name", Kind: Dimension, Level: Conditional, Nullable: true, DataType: TypeString, Introduced: "0.5"})
	r.Register(Descriptor{Name: Tags, DisplayName: "Tags", Kind: Dimension, Level: Conditional, Nullable: true, DataType: TypeJSON, ValueFormat: "Key-Value Format", Introduced: "1.0-preview"})
}

