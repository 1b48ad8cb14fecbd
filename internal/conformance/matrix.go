package conformance

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"azmig/internal/rules"
)

// DefaultMatrixPath is the well-known location of the reference matrix,
// relative to the working directory.
const DefaultMatrixPath = "reference/move-support-matrix.csv"

// MatrixRow is one reference-matrix line: a resource type and the documented
// move expectation per scenario. Expectation text is kept verbatim; "No" and
// "Pending" (any case) mean the move should be blocked.
type MatrixRow struct {
	Line          int
	Provider      string
	ResourceType  string
	Expectations  map[rules.Scenario]string
	Notes         string
	ReferenceLink string
}

// FullType returns the lowercased "provider/type" resource type string.
func (r MatrixRow) FullType() string {
	return strings.ToLower(r.Provider + "/" + r.ResourceType)
}

// ShouldBlock reports whether the matrix expects the given scenario's move to
// be blocked for this row.
func (r MatrixRow) ShouldBlock(scenario rules.Scenario) bool {
	switch strings.ToLower(strings.TrimSpace(r.Expectations[scenario])) {
	case "no", "pending":
		return true
	}
	return false
}

// ParseMatrix reads the semicolon-delimited reference matrix. The first line
// is a header and is skipped. Rows with fewer than five fields are ignored
// rather than failing the whole parse; the matrix is reference data, not
// configuration.
func ParseMatrix(r io.Reader) ([]MatrixRow, error) {
	scanner := bufio.NewScanner(r)
	var rows []MatrixRow
	line := 0
	for scanner.Scan() {
		line++
		if line == 1 {
			continue
		}
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		fields := strings.Split(text, ";")
		if len(fields) < 5 {
			continue
		}
		row := MatrixRow{
			Line:         line,
			Provider:     strings.TrimSpace(fields[0]),
			ResourceType: strings.TrimSpace(fields[1]),
			Expectations: map[rules.Scenario]string{
				rules.ScenarioResourceGroup: strings.TrimSpace(fields[2]),
				rules.ScenarioSubscription:  strings.TrimSpace(fields[3]),
				rules.ScenarioRegion:        strings.TrimSpace(fields[4]),
			},
		}
		if len(fields) > 5 {
			row.Notes = strings.TrimSpace(fields[5])
		}
		if len(fields) > 6 {
			row.ReferenceLink = strings.TrimSpace(fields[6])
		}
		if row.Provider == "" || row.ResourceType == "" {
			continue
		}
		rows = append(rows, row)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read matrix: %w", err)
	}
	return rows, nil
}

// LoadMatrix reads the matrix file at path. A missing file is reported via
// os.IsNotExist on the returned error so callers can degrade gracefully.
func LoadMatrix(path string) ([]MatrixRow, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ParseMatrix(f)
}
