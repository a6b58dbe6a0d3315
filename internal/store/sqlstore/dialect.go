package sqlstore

import (
	"fmt"

	"gorm.io/gorm"
)

// dialect holds the few expressions MySQL and SQLite spell differently.
type dialect struct {
	name string
}

func dialectFor(db *gorm.DB) dialect {
	return dialect{name: db.Dialector.Name()}
}

func (d dialect) year(col string) string {
	if d.name == "sqlite" {
		return fmt.Sprintf("CAST(strftime('%%Y', %s) AS INTEGER)", col)
	}
	return fmt.Sprintf("YEAR(%s)", col)
}

func (d dialect) month(col string) string {
	if d.name == "sqlite" {
		return fmt.Sprintf("CAST(strftime('%%m', %s) AS INTEGER)", col)
	}
	return fmt.Sprintf("MONTH(%s)", col)
}

// exactEquals compares col to a bound value byte for byte. MySQL's default
// collations ignore case; SQLite's "=" already compares exactly.
func (d dialect) exactEquals(col string) string {
	if d.name == "mysql" {
		return fmt.Sprintf("BINARY %s = ?", col)
	}
	return fmt.Sprintf("%s = ?", col)
}
