// Package tables - selects the financial summary table from extracted tables.
package tables

import (
	"reportlens/pkg/models"
)

// Summarize scans tables in document order and returns the first non-empty
// one, with its first row as column headers and the rest as data records.
// A nil return is the explicit "absent" value. Only the first qualifying
// table is used; later tables are never merged in, even when they look more
// relevant. That is a deliberate simplification, not a bug.
func Summarize(raw [][][]string) *models.FinancialTable {
	for _, t := range raw {
		if len(t) == 0 || len(t[0]) == 0 {
			continue
		}
		return &models.FinancialTable{
			Headers: t[0],
			Rows:    t[1:],
		}
	}
	return nil
}
