package apitablev1

import (
	"context"
)

type hasResponse struct {
	Has bool `json:"has"`
}

func has(ctx context.Context, input *pairRequest) (*hasResponse, error) {

	if err := input.validate(); err != nil {
		return nil, err
	}

	t, err := getTableFromUrl(ctx)
	if err != nil {
		return nil, err
	}

	return &hasResponse{
		Has: t.Table.Has(*input.A, *input.B),
	}, nil
}
