package repository

import (
	"errors"

	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

// ErrNoRowsAffected reports that a conditional update matched no rows,
// meaning the row was missing or already past the guarded state.
var ErrNoRowsAffected = errors.New("NO_ROWS_AFFECTED")

func isDuplicateKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	var mysqlErr *mysql.MySQLError
	return errors.As(err, &mysqlErr) && mysqlErr.Number == 1062
}
