package api

import (
	"net/http"
	"testing"

	"github.com/fulldump/apitest"
	"github.com/fulldump/biff"

	"github.com/fulldump/crosstable/database"
	"github.com/fulldump/crosstable/service"
)

func TestReadOnly(t *testing.T) {

	biff.Alternative("Read only", func(a *biff.A) {

		db := database.NewDatabase(&database.Config{})
		db.Load()

		s := service.NewService(db)
		created, err := s.CreateTable("my-table")
		biff.AssertNil(err)
		created.Table.Set("x", "p", 1.0)

		b := Build(s, "test", "", "", true)
		b.WithInterceptors(
			PrettyErrorInterceptor,
		)

		api := apitest.NewWithHandler(b)

		a.Alternative("Set is rejected", func(a *biff.A) {
			resp := api.Request("POST", "/v1/tables/my-table:set").
				WithBodyJson(map[string]any{"a": "y", "b": "p", "item": 2}).
				Do()
			biff.AssertEqual(resp.StatusCode, http.StatusForbidden)
			biff.AssertFalse(created.Table.Has("y", "p"))
		})

		a.Alternative("Create is rejected", func(a *biff.A) {
			resp := api.Request("POST", "/v1/tables").
				WithBodyJson(map[string]any{"name": "other"}).
				Do()
			biff.AssertEqual(resp.StatusCode, http.StatusForbidden)
		})

		a.Alternative("Get is allowed", func(a *biff.A) {
			resp := api.Request("POST", "/v1/tables/my-table:get").
				WithBodyJson(map[string]any{"a": "x", "b": "p"}).
				Do()
			biff.AssertEqual(resp.StatusCode, http.StatusOK)
			biff.AssertEqualJson(resp.BodyJson(), map[string]any{
				"a":    "x",
				"b":    "p",
				"item": 1,
			})
		})

	})
}

func TestUnavailable(t *testing.T) {

	db := database.NewDatabase(&database.Config{})

	b := Build(service.NewService(db), "test", "", "", false)
	b.WithInterceptors(
		InterceptorUnavailable(db),
		PrettyErrorInterceptor,
	)

	api := apitest.NewWithHandler(b)

	resp := api.Request("GET", "/v1/tables").Do()
	biff.AssertEqual(resp.StatusCode, http.StatusServiceUnavailable)
}

func TestNotImplemented(t *testing.T) {

	db := database.NewDatabase(&database.Config{})
	db.Load()

	b := Build(service.NewService(db), "test", "", "", false)
	b.WithInterceptors(
		PrettyErrorInterceptor,
	)

	api := apitest.NewWithHandler(b)

	resp := api.Request("GET", "/v1/unknown/thing").Do()
	biff.AssertEqual(resp.StatusCode, http.StatusNotImplemented)
	biff.AssertEqualJson(resp.BodyJson(), map[string]any{
		"error": map[string]any{
			"message":     "not implemented",
			"description": "this endpoint does not exist, please check the documentation",
		},
	})
}
