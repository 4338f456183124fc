package apitablev1

import (
	"context"
	"net/http"

	"github.com/fulldump/box"
)

func dropTable(ctx context.Context, w http.ResponseWriter) error {

	s := GetServicer(ctx)

	tableName := box.GetUrlParameter(ctx, "tableName")

	return s.DeleteTable(tableName)
}
