package service

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/fulldump/apitest"
	"github.com/fulldump/biff"
)

type JSON = map[string]interface{}

func decodeLines(body string) []interface{} {
	result := []interface{}{}
	dec := json.NewDecoder(strings.NewReader(body))
	for dec.More() {
		var row interface{}
		if err := dec.Decode(&row); err != nil {
			break
		}
		result = append(result, row)
	}
	return result
}

func Acceptance(a *biff.A, apiRequest func(method, path string) *apitest.Request) {

	a.Alternative("Create table", func(a *biff.A) {
		resp := apiRequest("POST", "/tables").
			WithBodyJson(JSON{
				"name": "my-table",
			}).Do()
		Save(resp, "Create table", ``)

		biff.AssertEqual(resp.StatusCode, http.StatusCreated)
		expectedBody := JSON{
			"name":  "my-table",
			"keysA": 0,
			"keysB": 0,
			"total": 0,
		}
		biff.AssertEqualJson(resp.BodyJson(), expectedBody)

		a.Alternative("Create table again", func(a *biff.A) {
			resp := apiRequest("POST", "/tables").
				WithBodyJson(JSON{
					"name": "my-table",
				}).Do()
			Save(resp, "Create table - conflict", ``)

			biff.AssertEqual(resp.StatusCode, http.StatusConflict)
		})

		a.Alternative("Retrieve table", func(a *biff.A) {
			resp := apiRequest("GET", "/tables/my-table").Do()
			Save(resp, "Retrieve table", ``)

			biff.AssertEqual(resp.StatusCode, http.StatusOK)
			biff.AssertEqualJson(resp.BodyJson(), expectedBody)
		})

		a.Alternative("List tables", func(a *biff.A) {
			resp := apiRequest("GET", "/tables").Do()
			Save(resp, "List tables", ``)

			biff.AssertEqual(resp.StatusCode, http.StatusOK)
			biff.AssertEqualJson(resp.BodyJson(), []JSON{expectedBody})
		})

		a.Alternative("Drop table", func(a *biff.A) {
			resp := apiRequest("POST", "/tables/my-table:drop").Do()
			Save(resp, "Drop table", ``)

			biff.AssertEqual(resp.StatusCode, http.StatusOK)

			a.Alternative("Get dropped table", func(a *biff.A) {
				resp := apiRequest("GET", "/tables/my-table").Do()
				Save(resp, "Retrieve table - not found", ``)

				biff.AssertEqual(resp.StatusCode, http.StatusNotFound)
			})
		})

		a.Alternative("Set with empty body", func(a *biff.A) {
			resp := apiRequest("POST", "/tables/my-table:set").Do()

			biff.AssertEqual(resp.StatusCode, http.StatusNoContent)
		})

		a.Alternative("Set malformed", func(a *biff.A) {
			resp := apiRequest("POST", "/tables/my-table:set").
				WithBodyString(`{"a": "x",`).Do()
			Save(resp, "Set - malformed", ``)

			biff.AssertEqual(resp.StatusCode, http.StatusBadRequest)
		})

		a.Alternative("Set without keys", func(a *biff.A) {
			resp := apiRequest("POST", "/tables/my-table:set").
				WithBodyJson(JSON{"a": "x", "item": 1}).Do()

			biff.AssertEqual(resp.StatusCode, http.StatusBadRequest)
		})
	})

	a.Alternative("Create table without name", func(a *biff.A) {
		resp := apiRequest("POST", "/tables").
			WithBodyJson(JSON{}).Do()
		Save(resp, "Create table - generated name", ``)

		biff.AssertEqual(resp.StatusCode, http.StatusCreated)
		body := resp.BodyJson().(map[string]interface{})
		biff.AssertEqual(len(body["name"].(string)), 36)
	})

	a.Alternative("Set on a padded table name", func(a *biff.A) {
		resp := apiRequest("POST", "/tables/foo%20:set").
			WithBodyJson(JSON{"a": "x", "b": "p", "item": 1}).Do()
		Save(resp, "Set - invalid table name", ``)

		biff.AssertEqual(resp.StatusCode, http.StatusBadRequest)

		resp = apiRequest("GET", "/tables").Do()
		biff.AssertEqualJson(resp.BodyJson(), []JSON{})

		resp = apiRequest("GET", "/tables/foo%20").Do()
		biff.AssertEqual(resp.StatusCode, http.StatusBadRequest)
	})

	a.Alternative("Set stops at the first invalid row", func(a *biff.A) {
		body := `{"a":"x","b":"p","item":1}` + "\n" + `{"a":"y","item":2}` + "\n"
		resp := apiRequest("POST", "/tables/partial:set").
			WithBodyString(body).Do()
		Save(resp, "Set - invalid row", `
			Rows before the invalid one are kept. The status was already sent.
		`)

		biff.AssertEqual(resp.StatusCode, http.StatusCreated)

		resp = apiRequest("POST", "/tables/partial:items").Do()
		biff.AssertEqualJson(decodeLines(resp.BodyString()), []JSON{
			{"a": "x", "b": "p", "item": 1},
		})
	})

	a.Alternative("Create table with a padded name", func(a *biff.A) {
		resp := apiRequest("POST", "/tables").
			WithBodyJson(JSON{"name": " "}).Do()

		biff.AssertEqual(resp.StatusCode, http.StatusBadRequest)
	})

	a.Alternative("Get missing table", func(a *biff.A) {
		resp := apiRequest("POST", "/tables/nope:get").
			WithBodyJson(JSON{"a": "x", "b": "p"}).Do()

		biff.AssertEqual(resp.StatusCode, http.StatusNotFound)
	})

	a.Alternative("Set many", func(a *biff.A) {

		myEntries := []JSON{
			{"a": "x", "b": "p", "item": 1},
			{"a": "x", "b": "q", "item": 2},
			{"a": "y", "b": "p", "item": 3},
		}

		body := ""
		for _, myEntry := range myEntries {
			myEntry, _ := json.Marshal(myEntry)
			body += string(myEntry) + "\n"
		}
		resp := apiRequest("POST", "/tables/grid:set").
			WithBodyString(body).Do()
		Save(resp, "Set many", `
			Stores one entry per line. The table is created if it does not exist.
		`)

		biff.AssertEqual(resp.StatusCode, http.StatusCreated)
		biff.AssertEqualJson(decodeLines(resp.BodyString()), myEntries)

		a.Alternative("Retrieve table", func(a *biff.A) {
			resp := apiRequest("GET", "/tables/grid").Do()

			biff.AssertEqualJson(resp.BodyJson(), JSON{
				"name":  "grid",
				"keysA": 2,
				"keysB": 2,
				"total": 3,
			})
		})

		a.Alternative("Get", func(a *biff.A) {
			resp := apiRequest("POST", "/tables/grid:get").
				WithBodyJson(JSON{"a": "x", "b": "q"}).Do()
			Save(resp, "Get", ``)

			biff.AssertEqual(resp.StatusCode, http.StatusOK)
			biff.AssertEqualJson(resp.BodyJson(), myEntries[1])
		})

		a.Alternative("Get empty cell", func(a *biff.A) {
			resp := apiRequest("POST", "/tables/grid:get").
				WithBodyJson(JSON{"a": "y", "b": "q"}).Do()
			Save(resp, "Get - not found", ``)

			biff.AssertEqual(resp.StatusCode, http.StatusNotFound)
		})

		a.Alternative("Get without keys", func(a *biff.A) {
			resp := apiRequest("POST", "/tables/grid:get").
				WithBodyJson(JSON{"a": "y"}).Do()

			biff.AssertEqual(resp.StatusCode, http.StatusBadRequest)
		})

		a.Alternative("Has", func(a *biff.A) {
			resp := apiRequest("POST", "/tables/grid:has").
				WithBodyJson(JSON{"a": "y", "b": "p"}).Do()
			Save(resp, "Has", ``)

			biff.AssertEqual(resp.StatusCode, http.StatusOK)
			biff.AssertEqualJson(resp.BodyJson(), JSON{"has": true})

			resp = apiRequest("POST", "/tables/grid:has").
				WithBodyJson(JSON{"a": "y", "b": "q"}).Do()
			biff.AssertEqualJson(resp.BodyJson(), JSON{"has": false})
		})

		a.Alternative("GetAll by single key", func(a *biff.A) {
			resp := apiRequest("POST", "/tables/grid:getAll").
				WithBodyJson(JSON{"a": "x"}).Do()
			Save(resp, "GetAll - single key", ``)

			biff.AssertEqual(resp.StatusCode, http.StatusOK)
			biff.AssertEqualJson(resp.BodyJson(), []int{1, 2})
		})

		a.Alternative("GetAll by explicit keys", func(a *biff.A) {
			resp := apiRequest("POST", "/tables/grid:getAll").
				WithBodyJson(JSON{"b": []string{"p", "unknown"}}).Do()
			Save(resp, "GetAll - explicit keys", ``)

			biff.AssertEqual(resp.StatusCode, http.StatusOK)
			biff.AssertEqualJson(resp.BodyJson(), []int{1, 3})
		})

		a.Alternative("GetAll everything", func(a *biff.A) {
			resp := apiRequest("POST", "/tables/grid:getAll").Do()
			Save(resp, "GetAll - any", ``)

			biff.AssertEqual(resp.StatusCode, http.StatusOK)
			biff.AssertEqualJson(resp.BodyJson(), []int{1, 2, 3})
		})

		a.Alternative("GetAll with invalid selector", func(a *biff.A) {
			resp := apiRequest("POST", "/tables/grid:getAll").
				WithBodyJson(JSON{"a": 7}).Do()

			biff.AssertEqual(resp.StatusCode, http.StatusBadRequest)
		})

		a.Alternative("Render", func(a *biff.A) {
			resp := apiRequest("POST", "/tables/grid:render").Do()
			Save(resp, "Render", ``)

			biff.AssertEqual(resp.StatusCode, http.StatusOK)
			biff.AssertEqualJson(resp.BodyJson(), [][]string{
				{"", "p", "q"},
				{"x", "1", "2"},
				{"y", "3", ""},
			})
		})

		a.Alternative("Items with filter", func(a *biff.A) {
			resp := apiRequest("POST", "/tables/grid:items").
				WithBodyJson(JSON{
					"filter": JSON{
						"item": JSON{"$gt": 1},
					},
				}).Do()
			Save(resp, "Items - filter", ``)

			biff.AssertEqual(resp.StatusCode, http.StatusOK)
			biff.AssertEqualJson(decodeLines(resp.BodyString()), []JSON{
				myEntries[1],
				myEntries[2],
			})
		})

		a.Alternative("Items with skip and limit", func(a *biff.A) {
			resp := apiRequest("POST", "/tables/grid:items").
				WithBodyJson(JSON{"skip": 1, "limit": 1}).Do()
			Save(resp, "Items - skip and limit", ``)

			biff.AssertEqual(resp.StatusCode, http.StatusOK)
			biff.AssertEqualJson(decodeLines(resp.BodyString()), []JSON{
				myEntries[1],
			})
		})

		a.Alternative("Delete cell", func(a *biff.A) {
			resp := apiRequest("POST", "/tables/grid:delete").
				WithBodyJson(JSON{"a": "x", "b": "q"}).Do()
			Save(resp, "Delete - cell", `
				Removes one item. A key whose line becomes empty is removed too.
			`)

			biff.AssertEqual(resp.StatusCode, http.StatusNoContent)

			resp = apiRequest("POST", "/tables/grid:render").Do()
			biff.AssertEqualJson(resp.BodyJson(), [][]string{
				{"", "p"},
				{"x", "1"},
				{"y", "3"},
			})
		})

		a.Alternative("Delete key A", func(a *biff.A) {
			resp := apiRequest("POST", "/tables/grid:delete").
				WithBodyJson(JSON{"a": "x"}).Do()
			Save(resp, "Delete - key a", `
				Removes a key and all its items. Keys of the other dimension are kept.
			`)

			biff.AssertEqual(resp.StatusCode, http.StatusNoContent)

			resp = apiRequest("GET", "/tables/grid").Do()
			biff.AssertEqualJson(resp.BodyJson(), JSON{
				"name":  "grid",
				"keysA": 1,
				"keysB": 2,
				"total": 1,
			})

			resp = apiRequest("POST", "/tables/grid:items").Do()
			biff.AssertEqualJson(decodeLines(resp.BodyString()), []JSON{
				myEntries[2],
			})
		})

		a.Alternative("Delete key B", func(a *biff.A) {
			resp := apiRequest("POST", "/tables/grid:delete").
				WithBodyJson(JSON{"b": "p"}).Do()
			Save(resp, "Delete - key b", ``)

			biff.AssertEqual(resp.StatusCode, http.StatusNoContent)

			resp = apiRequest("POST", "/tables/grid:render").Do()
			biff.AssertEqualJson(resp.BodyJson(), [][]string{
				{"", "q"},
				{"x", "2"},
				{"y", ""},
			})
		})

		a.Alternative("Delete nothing", func(a *biff.A) {
			resp := apiRequest("POST", "/tables/grid:delete").
				WithBodyJson(JSON{}).Do()

			biff.AssertEqual(resp.StatusCode, http.StatusNoContent)

			resp = apiRequest("GET", "/tables/grid").Do()
			biff.AssertEqualJson(resp.BodyJson(), JSON{
				"name":  "grid",
				"keysA": 2,
				"keysB": 2,
				"total": 3,
			})
		})

		a.Alternative("Overwrite", func(a *biff.A) {
			resp := apiRequest("POST", "/tables/grid:set").
				WithBodyJson(JSON{"a": "x", "b": "p", "item": JSON{"name": "Fulanez"}}).Do()

			biff.AssertEqual(resp.StatusCode, http.StatusCreated)

			resp = apiRequest("POST", "/tables/grid:get").
				WithBodyJson(JSON{"a": "x", "b": "p"}).Do()
			biff.AssertEqualJson(resp.BodyJson(), JSON{
				"a":    "x",
				"b":    "p",
				"item": JSON{"name": "Fulanez"},
			})
		})
	})

}
