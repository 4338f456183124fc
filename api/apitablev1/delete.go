package apitablev1

import (
	"context"
	"net/http"
)

// deleteKeys removes a single cell when both keys are given, or a whole key
// when only one is. Only the first form is gated by occupancy.
func deleteKeys(ctx context.Context, w http.ResponseWriter, input *pairRequest) error {

	t, err := getTableFromUrl(ctx)
	if err != nil {
		return err
	}

	switch {
	case input.A != nil && input.B != nil:
		t.Table.Delete(*input.A, *input.B)
	case input.A != nil:
		t.Table.DeleteA(*input.A)
	case input.B != nil:
		t.Table.DeleteB(*input.B)
	}

	w.WriteHeader(http.StatusNoContent)
	return nil
}
