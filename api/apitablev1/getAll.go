package apitablev1

import (
	"context"
	"io"
	"net/http"

	"github.com/go-json-experiment/json"
	"github.com/go-json-experiment/json/jsontext"

	"github.com/fulldump/crosstable/table"
)

type getAllRequest struct {
	A jsontext.Value `json:"a"`
	B jsontext.Value `json:"b"`
}

// parseSelector accepts an omitted or null value (every key), a string (one
// key) or an array of strings (those keys).
func parseSelector(field string, v jsontext.Value) (table.Selector[string], error) {
	if len(v) == 0 {
		return table.Any[string](), nil
	}

	switch v.Kind() {
	case 'n':
		return table.Any[string](), nil
	case '"':
		key := ""
		if err := json.Unmarshal(v, &key); err != nil {
			return table.Selector[string]{}, badRequest("%s: %s", field, err.Error())
		}
		return table.Key(key), nil
	case '[':
		keys := []string{}
		if err := json.Unmarshal(v, &keys); err != nil {
			return table.Selector[string]{}, badRequest("%s: %s", field, err.Error())
		}
		return table.Keys(keys...), nil
	}

	return table.Selector[string]{}, badRequest("%s must be null, a string or an array of strings", field)
}

func getAll(ctx context.Context, w http.ResponseWriter, r *http.Request) ([]any, error) {

	requestBody, err := io.ReadAll(r.Body)
	if err != nil {
		return nil, err
	}

	input := &getAllRequest{}
	if len(requestBody) > 0 {
		if err := json.Unmarshal(requestBody, input); err != nil {
			return nil, badRequest("%s", err.Error())
		}
	}

	selectorA, err := parseSelector("a", input.A)
	if err != nil {
		return nil, err
	}
	selectorB, err := parseSelector("b", input.B)
	if err != nil {
		return nil, err
	}

	t, err := getTableFromUrl(ctx)
	if err != nil {
		return nil, err
	}

	return t.Table.GetAll(selectorA, selectorB), nil
}
