package rules

// Operator is a condition comparison operator.
type Operator string

const (
	OpEquals    Operator = "equals"
	OpNotEquals Operator = "not-equals"
	OpContains  Operator = "contains"
	OpNonEmpty  Operator = "non-empty"
)

func (o Operator) Valid() bool {
	switch o {
	case OpEquals, OpNotEquals, OpContains, OpNonEmpty:
		return true
	}
	return false
}

// Condition gates a rule on one field of the resource record. Field is a
// dotted path into the record (e.g. "sku.name", "properties.incremental").
// A resource missing the field never satisfies the condition, regardless of
// operator.
type Condition struct {
	Field    string   `json:"field"`
	Operator Operator `json:"operator"`
	Value    any      `json:"value,omitempty"`
}

// Rule is one declarative migration constraint: a resource-type pattern and
// scenario, optionally narrowed by a condition, mapped to a severity and a
// human-readable explanation. Rules are read-only after corpus load.
type Rule struct {
	// ID is unique within the corpus and stable across releases.
	ID string `json:"id"`

	// ResourceTypePattern matches resource types case-insensitively.
	// Supported forms: an exact "namespace/type" string, the bare wildcard
	// "*", or a prefix wildcard "namespace/type/*".
	ResourceTypePattern string `json:"resourceType"`

	Scenario  Scenario   `json:"scenario"`
	Condition *Condition `json:"condition,omitempty"`
	Severity  Severity   `json:"severity"`

	Message     string `json:"message"`
	Impact      string `json:"impact,omitempty"`
	Remediation string `json:"remediation,omitempty"`

	DowntimeRisk  bool   `json:"downtimeRisk"`
	ReferenceLink string `json:"referenceLink,omitempty"`
}
