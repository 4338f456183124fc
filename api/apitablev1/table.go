package apitablev1

import (
	"github.com/fulldump/crosstable/service"
)

type TableResponse struct {
	Name  string `json:"name"`
	KeysA int    `json:"keysA"`
	KeysB int    `json:"keysB"`
	Total int    `json:"total"`
}

func newTableResponse(t *service.Table) *TableResponse {
	return &TableResponse{
		Name:  t.Name,
		KeysA: len(t.Table.KeysA()),
		KeysB: len(t.Table.KeysB()),
		Total: t.Table.Len(),
	}
}

// pairRequest addresses a single cell. Missing keys are nil.
type pairRequest struct {
	A *string `json:"a"`
	B *string `json:"b"`
}

type entryResponse struct {
	A    string `json:"a"`
	B    string `json:"b"`
	Item any    `json:"item"`
}
