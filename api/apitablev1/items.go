package apitablev1

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/SierraSoftworks/connor"
	"github.com/go-json-experiment/json"
	"github.com/go-json-experiment/json/jsontext"
)

type itemsRequest struct {
	Filter map[string]interface{} `json:"filter"`
	Skip   int64                  `json:"skip"`
	Limit  int64                  `json:"limit"`
}

// items streams every entry of the table, one JSON object per line. The
// optional filter is matched against {"a": ..., "b": ..., "item": ...}.
func items(ctx context.Context, w http.ResponseWriter, r *http.Request) error {

	requestBody, err := io.ReadAll(r.Body)
	if err != nil {
		return err
	}

	params := &itemsRequest{
		Filter: map[string]interface{}{},
		Skip:   0,
		Limit:  -1,
	}
	if len(requestBody) > 0 {
		if err := json.Unmarshal(requestBody, params); err != nil {
			return badRequest("%s", err.Error())
		}
	}

	t, err := getTableFromUrl(ctx)
	if err != nil {
		return err
	}

	hasFilter := len(params.Filter) > 0

	jsonWriter := jsontext.NewEncoder(w)

	skip := params.Skip
	limit := params.Limit
	for _, entry := range t.Table.Items() {

		if limit == 0 {
			break
		}

		if hasFilter {
			rowData := map[string]interface{}{
				"a":    entry.A,
				"b":    entry.B,
				"item": entry.Item,
			}
			match, err := connor.Match(params.Filter, rowData)
			if err != nil {
				return badRequest("match: %s", err.Error())
			}
			if !match {
				continue
			}
		}

		if skip > 0 {
			skip--
			continue
		}

		limit--
		err := json.MarshalEncode(jsonWriter, &entryResponse{
			A:    entry.A,
			B:    entry.B,
			Item: entry.Item,
		})
		if err != nil {
			return fmt.Errorf("encode entry: %w", err)
		}
	}

	return nil
}
