package apitablev1

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/fulldump/box"
	"github.com/go-json-experiment/json"
	"github.com/go-json-experiment/json/jsontext"

	"github.com/fulldump/crosstable/service"
)

type setRequest struct {
	A    *string        `json:"a"`
	B    *string        `json:"b"`
	Item jsontext.Value `json:"item"`
}

func (r *setRequest) entry() (*entryResponse, error) {
	if r.A == nil || r.B == nil {
		return nil, badRequest("fields 'a' and 'b' are mandatory")
	}
	if len(r.Item) == 0 {
		return nil, badRequest("field 'item' is mandatory")
	}
	var item any
	if err := json.Unmarshal(r.Item, &item); err != nil {
		return nil, badRequest("item: %s", err.Error())
	}
	return &entryResponse{A: *r.A, B: *r.B, Item: item}, nil
}

// set stores a stream of entries, one JSON object per line. The table is
// created if it does not exist.
//
// Rows are applied as they are read. If a row fails, the rows before it stay
// stored, the status is already 201 and the error body follows the echoed
// entries.
func set(ctx context.Context, w http.ResponseWriter, r *http.Request) error {

	s := GetServicer(ctx)
	tableName := box.GetUrlParameter(ctx, "tableName")
	if tableName == "" {
		return badRequest("table name is required")
	}
	t, err := s.GetTable(tableName)
	if err == service.ErrorTableNotFound {
		t, err = s.CreateTable(tableName)
		if err == service.ErrorTableAlreadyExists {
			t, err = s.GetTable(tableName)
		}
	}
	if err != nil {
		return err // todo: handle/wrap this properly
	}

	jsonReader := jsontext.NewDecoder(r.Body)
	jsonWriter := jsontext.NewEncoder(w)

	for i := 0; ; i++ {
		input := &setRequest{}
		err := json.UnmarshalDecode(jsonReader, input)
		if errors.Is(err, io.EOF) {
			if i == 0 {
				w.WriteHeader(http.StatusNoContent)
			}
			return nil
		}
		if err != nil {
			fmt.Println("ERROR:", err.Error())
			return badRequest("row %d: %s", i, err.Error())
		}

		e, err := input.entry()
		if err != nil {
			return err
		}
		t.Table.Set(e.A, e.B, e.Item)

		if i == 0 {
			w.WriteHeader(http.StatusCreated)
		}
		json.MarshalEncode(jsonWriter, e)
	}
}
