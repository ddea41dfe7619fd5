// Package roster reads the JSON employee registry used for roster import.
package roster

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/attendly/attendance-backend-go/internal/domain/employee"
)

// registryEntry mirrors the registry file layout. Ids may appear as JSON
// numbers or strings; json.Number keeps both.
type registryEntry struct {
	ID         json.Number `json:"id"`
	FirstName  string      `json:"firstName"`
	LastName   string      `json:"lastName"`
	Department string      `json:"department"`
	Shift      string      `json:"shift"`
}

// Load parses the registry file into import entries. The file is either a
// bare JSON array or an object with an "employees" key.
func Load(path string) ([]employee.ImportEntry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read employee registry: %w", err)
	}
	return Parse(data)
}

func Parse(data []byte) ([]employee.ImportEntry, error) {
	var raw []registryEntry
	if err := json.Unmarshal(data, &raw); err != nil {
		var wrapped struct {
			Employees []registryEntry `json:"employees"`
		}
		if err2 := json.Unmarshal(data, &wrapped); err2 != nil {
			return nil, fmt.Errorf("failed to parse employee registry: %w", err)
		}
		raw = wrapped.Employees
	}

	entries := make([]employee.ImportEntry, 0, len(raw))
	for _, e := range raw {
		entries = append(entries, employee.ImportEntry{
			ID:         e.ID.String(),
			FirstName:  e.FirstName,
			LastName:   e.LastName,
			Department: e.Department,
			Shift:      e.Shift,
		})
	}
	return entries, nil
}
