package focus

// ChargeCategory values
const (
	ChargeUsage      = "Usage"
	ChargePurchase   = "Purchase"
	ChargeTax        = "Tax"
	ChargeCredit     = "Credit"
	ChargeAdjustment = "Adjustment"
)

// ChargeFrequency values
const (
	FrequencyOneTime    = "One-Time"
	FrequencyRecurring  = "Recurring"
	FrequencyUsageBased = "Usage-Based"
)

// ChargeClassCorrection is the only non-null ChargeClass
const ChargeClassCorrection = "Correction"

// Commitment discount and capacity reservation status values
const (
	StatusUsed   = "Used"
	StatusUnused = "Unused"
)

// Service categories used by the generator. FOCUS defines more; the
// workload distributions only weight these six.
const (
	CategoryCompute    = "Compute"
	CategoryStorage    = "Storage"
	CategoryDatabases  = "Databases"
	CategoryNetworking = "Networking"
	CategoryAIML       = "AI and Machine Learning"
	CategoryOther      = "Other"
)

// CommitmentDiscountColumns are the columns that only carry a value when
// CommitmentDiscountId is set
var CommitmentDiscountColumns = []string{
	CommitmentDiscountName,
	CommitmentDiscountStatus,
	CommitmentDiscountQuantity,
	CommitmentDiscountType,
	CommitmentDiscountUnit,
	CommitmentDiscountCategory,
}

// CostColumns are the monetary metric columns
var CostColumns = []string{
	BilledCost,
	EffectiveCost,
	ListCost,
	ContractedCost,
}
