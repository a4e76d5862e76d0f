package db

import (
	"errors"

	"github.com/go-sql-driver/mysql"
)

const mysqlDupEntry = 1062

// IsDupKeyErr reports whether err is a MySQL duplicate-key violation.
func IsDupKeyErr(err error) bool {
	var mysqlErr *mysql.MySQLError
	if !errors.As(err, &mysqlErr) {
		return false
	}
	return mysqlErr.Number == mysqlDupEntry
}
