// Package focus - FOCUS v1.1 column metadata
// Describes every column of the FOCUS billing schema. This is the single
// source of truth for types, nullability and allowed values; both the
// generators and the validator read it.
package focus

// Kind classifies a column as a dimension or a metric
type Kind int

const (
	// Dimension - categorical or identifying value
	Dimension Kind = iota
	// Metric - numeric, aggregatable value
	Metric
)

// String returns string representation
func (k Kind) String() string {
	switch k {
	case Dimension:
		return "Dimension"
	case Metric:
		return "Metric"
	default:
		return "unknown"
	}
}

// Level is the FOCUS feature level of a column
type Level int

const (
	// Mandatory - must be present in every dataset
	Mandatory Level = iota
	// Recommended - should be present; absence is a warning
	Recommended
	// Conditional - present only when the provider supports the feature
	Conditional
)

// String returns string representation
func (l Level) String() string {
	switch l {
	case Mandatory:
		return "Mandatory"
	case Recommended:
		return "Recommended"
	case Conditional:
		return "Conditional"
	default:
		return "unknown"
	}
}

// DataType is the value type of a column
type DataType string

const (
	TypeString   DataType = "string"
	TypeDecimal  DataType = "decimal"
	TypeDateTime DataType = "datetime"
	TypeJSON     DataType = "json"
)

// Descriptor is the registry entry for one column
type Descriptor struct {
	Name          string
	DisplayName   string
	Kind          Kind
	Level         Level
	Nullable      bool
	DataType      DataType
	AllowedValues []string
	ValueFormat   string
	Introduced    string
}

// HasAllowedValues reports whether the column is restricted to a value set
func (d Descriptor) HasAllowedValues() bool {
	return len(d.AllowedValues) > 0
}

// Allows reports whether v is in the allowed value set.
// Columns without a value set allow anything.
func (d Descriptor) Allows(v string) bool {
	if !d.HasAllowedValues() {
		return true
	}
	for _, allowed := range d.AllowedValues {
		if allowed == v {
			return true
		}
	}
	return false
}
