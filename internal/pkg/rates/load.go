package rates

import (
	"fmt"
	"os"

	"github.com/kyuyo-labs/payroll-engine-go/internal/domain/payroll"
	"gopkg.in/yaml.v3"
)

// Load reads a rate table from a YAML file. Fields the file omits keep
// their built-in defaults, so a file can override just the fiscal
// year's insurance rates without restating the whole bracket table.
// The merged table is validated before it is handed out.
func Load(path string) (payroll.RateTable, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return payroll.RateTable{}, fmt.Errorf("failed to read rate table: %w", err)
	}

	table := Default()
	if err := yaml.Unmarshal(data, &table); err != nil {
		return payroll.RateTable{}, fmt.Errorf("failed to parse rate table: %w", err)
	}

	if err := table.Validate(); err != nil {
		return payroll.RateTable{}, fmt.Errorf("invalid rate table %s: %w", path, err)
	}

	return table, nil
}
