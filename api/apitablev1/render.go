package apitablev1

import (
	"context"

	"github.com/go-json-experiment/json"
)

func identity(s string) string {
	return s
}

func formatItem(item any, ok bool) string {
	if !ok {
		return ""
	}
	b, err := json.Marshal(item)
	if err != nil {
		return "?"
	}
	return string(b)
}

func render(ctx context.Context) ([][]string, error) {

	t, err := getTableFromUrl(ctx)
	if err != nil {
		return nil, err
	}

	return t.Table.Render(identity, identity, formatItem), nil
}
