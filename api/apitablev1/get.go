package apitablev1

import (
	"context"
)

func (p *pairRequest) validate() error {
	if p.A == nil || p.B == nil {
		return badRequest("fields 'a' and 'b' are mandatory")
	}
	return nil
}

func get(ctx context.Context, input *pairRequest) (*entryResponse, error) {

	if err := input.validate(); err != nil {
		return nil, err
	}

	t, err := getTableFromUrl(ctx)
	if err != nil {
		return nil, err
	}

	item, ok := t.Table.Get(*input.A, *input.B)
	if !ok {
		return nil, ErrEntryNotFound
	}

	return &entryResponse{
		A:    *input.A,
		B:    *input.B,
		Item: item,
	}, nil
}
