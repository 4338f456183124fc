package apitablev1

import (
	"context"
	"net/http"

	"github.com/fulldump/crosstable/service"
)

func listTables(s service.Servicer) interface{} {
	return func(ctx context.Context, w http.ResponseWriter) ([]*TableResponse, error) {

		list, err := s.ListTables()
		if err != nil {
			return nil, err // todo: wrap this?
		}

		result := []*TableResponse{}
		for _, t := range list {
			result = append(result, newTableResponse(t))
		}

		return result, nil
	}
}
