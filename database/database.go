package database

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/google/btree"

	"github.com/fulldump/crosstable/table"
)

var (
	ErrTableAlreadyExists = errors.New("table already exists")
	ErrTableNotFound      = errors.New("table not found")
)

const (
	StatusOpening   = "opening"
	StatusOperating = "operating"
	StatusClosing   = "closing"
)

// Table is the concrete table kind served by the database: string keys on
// both dimensions and arbitrary JSON items.
type Table = table.SyncTable[string, string, any]

type Config struct {
	Degree int // btree degree of the table registry
}

// Entry is a named table in the registry.
type Entry struct {
	Name  string
	Table *Table
}

type Database struct {
	config *Config
	status string
	tables *btree.BTreeG[*Entry]
	mutex  sync.RWMutex
	exit   chan struct{}
}

func NewDatabase(config *Config) *Database { // todo: return error?
	if config == nil {
		config = &Config{}
	}
	degree := config.Degree
	if degree < 2 {
		degree = 32
	}

	s := &Database{
		config: config,
		status: StatusOpening,
		tables: btree.NewG(degree, func(a, b *Entry) bool {
			return a.Name < b.Name
		}),
		exit: make(chan struct{}),
	}

	return s
}

func (db *Database) GetStatus() string {
	db.mutex.RLock()
	defer db.mutex.RUnlock()
	return db.status
}

func (db *Database) CreateTable(name string) (*Table, error) {

	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("table name is required")
	}

	db.mutex.Lock()
	defer db.mutex.Unlock()

	if db.tables.Has(&Entry{Name: name}) {
		return nil, ErrTableAlreadyExists
	}

	t := table.NewSync[string, string, any]()
	db.tables.ReplaceOrInsert(&Entry{Name: name, Table: t})

	return t, nil
}

func (db *Database) GetTable(name string) (*Table, bool) {
	db.mutex.RLock()
	defer db.mutex.RUnlock()

	e, ok := db.tables.Get(&Entry{Name: name})
	if !ok {
		return nil, false
	}
	return e.Table, true
}

// ListTables returns every table ordered by name.
func (db *Database) ListTables() []Entry {
	db.mutex.RLock()
	defer db.mutex.RUnlock()

	result := make([]Entry, 0, db.tables.Len())
	db.tables.Ascend(func(e *Entry) bool {
		result = append(result, *e)
		return true
	})
	return result
}

func (db *Database) DropTable(name string) error {

	db.mutex.Lock()
	e, exists := db.tables.Delete(&Entry{Name: name})
	db.mutex.Unlock()
	if !exists {
		return ErrTableNotFound
	}

	e.Table.Clear()

	return nil
}

// Load makes the database operational. Tables live only in memory, so there
// is nothing to read.
func (db *Database) Load() error {

	fmt.Println("Loading database...") // todo: move to logger

	db.mutex.Lock()
	defer db.mutex.Unlock()
	if db.status == StatusOpening {
		db.status = StatusOperating
	}

	return nil
}

func (db *Database) Start() error {

	go db.Load()

	<-db.exit

	return nil
}

func (db *Database) Stop() error {

	defer close(db.exit)

	db.mutex.Lock()
	defer db.mutex.Unlock()

	db.status = StatusClosing

	db.tables.Ascend(func(e *Entry) bool {
		fmt.Printf("Closing '%s'...\n", e.Name)
		e.Table.Clear()
		return true
	})
	db.tables.Clear(false)

	return nil
}
