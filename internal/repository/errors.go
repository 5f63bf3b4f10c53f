// Package repository defines error values and helpers that are reused by
// every table. These allow higher layers such as services to tell an
// absent row apart from a store fault, and to recognise constraint
// violations regardless of which SQL dialect produced them.
package repository

import (
	"errors"
	"strings"

	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

// ErrNotFound is returned when no row matches the requested primary key.
// Services translate it into an "absent" result rather than a failure.
var ErrNotFound = errors.New("record not found")

// MySQL server error numbers for foreign key failures.
const (
	mysqlRowIsReferenced = 1451 // parent row still referenced (delete/update)
	mysqlNoReferencedRow = 1452 // child row points at a missing parent (insert/update)
)

// IsForeignKeyViolation reports whether err was caused by a foreign key
// constraint.  It understands GORM's translated error, raw MySQL errors
// and the SQLite message used in tests.
func IsForeignKeyViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}
	var me *mysql.MySQLError
	if errors.As(err, &me) {
		return me.Number == mysqlRowIsReferenced || me.Number == mysqlNoReferencedRow
	}
	return strings.Contains(err.Error(), "FOREIGN KEY constraint failed")
}
