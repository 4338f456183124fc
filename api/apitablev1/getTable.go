package apitablev1

import (
	"context"
)

func getTable(ctx context.Context) (*TableResponse, error) {

	t, err := getTableFromUrl(ctx)
	if err != nil {
		return nil, err
	}

	return newTableResponse(t), nil
}
