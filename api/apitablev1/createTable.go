package apitablev1

import (
	"context"
	"net/http"
)

type createTableRequest struct {
	Name string `json:"name"`
}

func createTable(ctx context.Context, w http.ResponseWriter, input *createTableRequest) (*TableResponse, error) {

	s := GetServicer(ctx)

	t, err := s.CreateTable(input.Name)
	if err != nil {
		return nil, err
	}

	w.WriteHeader(http.StatusCreated)
	return newTableResponse(t), nil
}
