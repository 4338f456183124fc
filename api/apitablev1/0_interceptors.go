package apitablev1

import (
	"context"

	"github.com/fulldump/box"

	"github.com/fulldump/crosstable/service"
)

const ContextServicerKey = "5c1b7a52-8d0e-11f0-a3a1-6b3c2e9f4d10"

func SetServicer(ctx context.Context, s service.Servicer) context.Context {
	return context.WithValue(ctx, ContextServicerKey, s)
}

func GetServicer(ctx context.Context) service.Servicer {
	return ctx.Value(ContextServicerKey).(service.Servicer) // TODO: can raise panic :D
}

func getTableFromUrl(ctx context.Context) (*service.Table, error) {
	s := GetServicer(ctx)
	tableName := box.GetUrlParameter(ctx, "tableName")
	return s.GetTable(tableName)
}
