package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/fulldump/box"
	"github.com/go-json-experiment/json/jsontext"

	"github.com/fulldump/crosstable/api/apitablev1"
	"github.com/fulldump/crosstable/database"
	"github.com/fulldump/crosstable/service"
)

var ErrUnavailable = errors.New("temporary unavailable")

type PrettyError struct {
	Message     string `json:"message"`
	Description string `json:"description"`
}

func (p PrettyError) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]interface{}{
		"error": struct {
			Message     string `json:"message"`
			Description string `json:"description"`
		}{
			p.Message,
			p.Description,
		},
	})
}

func (p PrettyError) MarshalTo(w io.Writer) error {
	return json.NewEncoder(w).Encode(p)
}

func InterceptorUnavailable(db *database.Database) box.I {
	return func(next box.H) box.H {
		return func(ctx context.Context) {

			status := db.GetStatus()
			if status == database.StatusOpening {
				box.SetError(ctx, fmt.Errorf("%w: opening", ErrUnavailable))
				return
			}
			if status == database.StatusClosing {
				box.SetError(ctx, fmt.Errorf("%w: closing", ErrUnavailable))
				return
			}
			next(ctx)
		}
	}
}

func writePrettyError(w http.ResponseWriter, status int, err error, description string) {
	w.WriteHeader(status)
	PrettyError{
		Message:     err.Error(),
		Description: description,
	}.MarshalTo(w)
}

func PrettyErrorInterceptor(next box.H) box.H {
	return func(ctx context.Context) {

		next(ctx)

		err := box.GetError(ctx)
		if err == nil {
			return
		}
		w := box.GetResponse(ctx)

		if err == ErrUnauthorized {
			writePrettyError(w, http.StatusUnauthorized, err, "user is not authenticated")
			return
		}

		if err == ErrReadOnly {
			writePrettyError(w, http.StatusForbidden, err, "server is running in read only mode")
			return
		}

		if errors.Is(err, ErrUnavailable) {
			writePrettyError(w, http.StatusServiceUnavailable, err, "database is not operating, try again later")
			return
		}

		if err == box.ErrResourceNotFound {
			writePrettyError(w, http.StatusNotFound, err,
				fmt.Sprintf("resource '%s' not found", box.GetRequest(ctx).URL.String()))
			return
		}

		if err == service.ErrorTableNotFound {
			writePrettyError(w, http.StatusNotFound, err,
				fmt.Sprintf("table '%s' not found", box.GetUrlParameter(ctx, "tableName")))
			return
		}

		if err == apitablev1.ErrEntryNotFound {
			writePrettyError(w, http.StatusNotFound, err, "there is no item stored under that pair of keys")
			return
		}

		if err == box.ErrMethodNotAllowed {
			writePrettyError(w, http.StatusMethodNotAllowed, err,
				fmt.Sprintf("method '%s' not allowed", box.GetRequest(ctx).Method))
			return
		}

		if err == service.ErrorTableAlreadyExists {
			writePrettyError(w, http.StatusConflict, err,
				"choose a different table name")
			return
		}

		if errors.Is(err, apitablev1.ErrBadRequest) || errors.Is(err, service.ErrorInvalidTableName) {
			writePrettyError(w, http.StatusBadRequest, err, "Invalid request")
			return
		}

		var syntaxError *json.SyntaxError
		var syntacticError *jsontext.SyntacticError
		if errors.As(err, &syntaxError) || errors.As(err, &syntacticError) {
			writePrettyError(w, http.StatusBadRequest, err, "Malformed JSON")
			return
		}

		writePrettyError(w, http.StatusInternalServerError, err, "Unexpected error")
	}
}
