package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/fulldump/crosstable/database"
)

type Service struct {
	db *database.Database
}

func NewService(db *database.Database) *Service {
	return &Service{
		db: db,
	}
}

var ErrorTableAlreadyExists = errors.New("table already exists")

// validateName rejects names with leading or trailing spaces. Names are
// never rewritten, so a table is always reachable by the name it was
// created with.
func validateName(name string) error {
	if name != strings.TrimSpace(name) {
		return fmt.Errorf("%w: '%s' has leading or trailing spaces", ErrorInvalidTableName, name)
	}
	return nil
}

// CreateTable registers a new empty table. An empty name gets a random one.
func (s *Service) CreateTable(name string) (*Table, error) {

	if err := validateName(name); err != nil {
		return nil, err
	}
	if name == "" {
		name = uuid.NewString()
	}

	t, err := s.db.CreateTable(name)
	if err == database.ErrTableAlreadyExists {
		return nil, ErrorTableAlreadyExists
	}
	if err != nil {
		return nil, err
	}

	return &Table{
		Name:  name,
		Table: t,
	}, nil
}

func (s *Service) GetTable(name string) (*Table, error) {
	if err := validateName(name); err != nil {
		return nil, err
	}
	t, exist := s.db.GetTable(name)
	if !exist {
		return nil, ErrorTableNotFound
	}

	return &Table{
		Name:  name,
		Table: t,
	}, nil
}

func (s *Service) ListTables() ([]*Table, error) {
	result := []*Table{}

	for _, e := range s.db.ListTables() {
		result = append(result, &Table{
			Name:  e.Name,
			Table: e.Table,
		})
	}

	return result, nil
}

func (s *Service) DeleteTable(name string) error {
	if err := validateName(name); err != nil {
		return err
	}
	err := s.db.DropTable(name)
	if err == database.ErrTableNotFound {
		return ErrorTableNotFound
	}
	return err
}
