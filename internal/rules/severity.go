package rules

import (
	"encoding/json"
	"fmt"
)

// Severity ranks how badly a rule finding affects a migration. The numeric
// order is the verdict order: a resource's migration status is the highest
// severity among its issues, or SeverityReady when nothing fired.
type Severity int

const (
	SeverityReady Severity = iota
	SeverityInfo
	SeverityWarning
	SeverityCritical
	SeverityBlocker
)

var severityNames = map[Severity]string{
	SeverityReady:    "Ready",
	SeverityInfo:     "Info",
	SeverityWarning:  "Warning",
	SeverityCritical: "Critical",
	SeverityBlocker:  "Blocker",
}

func (s Severity) String() string {
	if name, ok := severityNames[s]; ok {
		return name
	}
	return fmt.Sprintf("Severity(%d)", int(s))
}

// Compare returns -1, 0, or 1 as s ranks below, equal to, or above other.
func (s Severity) Compare(other Severity) int {
	switch {
	case s < other:
		return -1
	case s > other:
		return 1
	default:
		return 0
	}
}

// MaxSeverity returns the higher-ranked of a and b.
func MaxSeverity(a, b Severity) Severity {
	if a.Compare(b) >= 0 {
		return a
	}
	return b
}

// ParseSeverity maps a status string (as emitted by String) back to a Severity.
func ParseSeverity(s string) (Severity, error) {
	for sev, name := range severityNames {
		if name == s {
			return sev, nil
		}
	}
	return SeverityReady, fmt.Errorf("unknown severity %q", s)
}

func (s Severity) MarshalJSON() ([]byte, error) {
	name, ok := severityNames[s]
	if !ok {
		return nil, fmt.Errorf("cannot marshal severity %d", int(s))
	}
	return json.Marshal(name)
}

func (s *Severity) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return err
	}
	sev, err := ParseSeverity(name)
	if err != nil {
		return err
	}
	*s = sev
	return nil
}
