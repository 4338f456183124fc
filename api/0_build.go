package api

import (
	"context"
	"net/http"

	"github.com/fulldump/box"
	"github.com/fulldump/box/boxopenapi"

	"github.com/fulldump/crosstable/api/apitablev1"
	"github.com/fulldump/crosstable/service"
)

func Build(s service.Servicer, version string, apiKey, apiSecret string, readOnly bool) *box.B {

	b := box.NewBox()

	v1 := b.Resource("/v1")
	v1.WithInterceptors(
		box.SetResponseHeader("Content-Type", "application/json"),
		Authenticate(apiKey, apiSecret),
	)

	apitablev1.BuildV1Table(v1, s).
		WithInterceptors(
			injectServicer(s),
			ReadOnly(readOnly),
		)

	b.Resource("/v1/*").
		WithActions(box.AnyMethod(func(w http.ResponseWriter) interface{} {
			w.WriteHeader(http.StatusNotImplemented)
			return PrettyError{
				Message:     "not implemented",
				Description: "this endpoint does not exist, please check the documentation",
			}
		}))

	b.Resource("/release").
		WithActions(box.Get(func() string {
			return version
		}).WithName("release"))

	spec := boxopenapi.Spec(b)
	spec.Info.Title = "CrossTable"
	spec.Info.Description = "An in-memory two-key table: values addressed by a pair of keys with dense, compacting slots."
	spec.Info.Contact = &boxopenapi.Contact{
		Url: "https://github.com/fulldump/crosstable/issues/new",
	}
	b.Handle("GET", "/openapi.json", func(r *http.Request) any {

		spec.Servers = []boxopenapi.Server{
			{
				Url: "https://" + r.Host,
			},
			{
				Url: "http://" + r.Host,
			},
		}

		return spec
	})

	return b
}

func injectServicer(s service.Servicer) box.I {
	return func(next box.H) box.H {
		return func(ctx context.Context) {
			next(apitablev1.SetServicer(ctx, s))
		}
	}
}
