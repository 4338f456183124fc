package service

import (
	"errors"

	"github.com/fulldump/crosstable/database"
)

var (
	ErrorTableNotFound    = errors.New("table not found")
	ErrorInvalidTableName = errors.New("invalid table name")
)

type Servicer interface { // todo: review naming
	CreateTable(name string) (*Table, error)
	GetTable(name string) (*Table, error)
	ListTables() ([]*Table, error)
	DeleteTable(name string) error
}

// Table is a named table as seen by the API.
type Table struct {
	Name  string
	Table *database.Table
}
