package services

import (
	"errors"

	mysql "github.com/go-sql-driver/mysql"
)

// isDuplicateKey reports MySQL error 1062, a unique index violation.
func isDuplicateKey(err error) bool {
	var mysqlErr *mysql.MySQLError
	return errors.As(err, &mysqlErr) && mysqlErr.Number == 1062
}
