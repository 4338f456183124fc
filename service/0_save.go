package service

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"path"
	"sort"
	"strings"

	"github.com/fulldump/apitest"
)

const exampleHost = "crosstable.example.com"

// Save writes the request and response of an acceptance step as a markdown
// API example into API_EXAMPLES_PATH. Nothing is written when it is unset.
func Save(response *apitest.Response, title, description string) {

	examplesPath := os.Getenv("API_EXAMPLES_PATH")
	if examplesPath == "" {
		return
	}

	request := response.Request

	query := request.URL.RawQuery
	if query != "" {
		query = "?" + query
	}
	requestBody := formatJSON(response.BodyRequestString())

	sb := &strings.Builder{}

	fmt.Fprintf(sb, "# %s\n", title)
	fmt.Fprintf(sb, "%s\n", mdDescription(description))

	sb.WriteString("Curl example:\n\n```sh\n")
	method := ""
	if request.Method != http.MethodGet {
		method = "-X " + request.Method + " "
	}
	fmt.Fprintf(sb, "curl %s\"https://%s%s%s\"", method, exampleHost, request.URL.Path, query)
	for _, k := range sortedKeys(request.Header) {
		for _, v := range request.Header[k] {
			fmt.Fprintf(sb, " \\\n-H \"%s: %s\"", k, v)
		}
	}
	if requestBody != "" {
		fmt.Fprintf(sb, " \\\n-d '%s'", requestBody)
	}
	sb.WriteString("\n```\n\n\n")

	sb.WriteString("HTTP request/response example:\n\n```http\n")
	fmt.Fprintf(sb, "%s %s%s %s\n", request.Method, request.URL.Path, query, request.Proto)
	fmt.Fprintf(sb, "Host: %s\n", exampleHost)
	for _, k := range sortedKeys(request.Header) {
		for _, v := range request.Header[k] {
			fmt.Fprintf(sb, "%s: %s\n", k, v)
		}
	}
	fmt.Fprintf(sb, "\n%s\n\n", requestBody)

	fmt.Fprintf(sb, "%s %s\n", response.Proto, response.Status)
	for _, k := range sortedKeys(response.Header) {
		if k == "Date" {
			sb.WriteString("Date: Mon, 15 Aug 2022 02:08:13 GMT\n")
			continue
		}
		for _, v := range response.Header[k] {
			fmt.Fprintf(sb, "%s: %s\n", k, v)
		}
	}
	fmt.Fprintf(sb, "\n%s\n```\n\n\n", formatJSON(response.BodyString()))

	filename := strings.ReplaceAll(strings.ToLower(title), " ", "_") + ".md"
	p := path.Join(examplesPath, path.Clean(filename))
	fmt.Println("Saving", p)
	err := os.WriteFile(p, []byte(sb.String()), 0666)
	if err != nil {
		fmt.Println("Saving err:", err)
	}
}

func sortedKeys(h http.Header) []string {
	keys := make([]string, 0, len(h))
	for k := range h {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// formatJSON indents body when it is a single JSON document, otherwise it is
// returned untouched (NDJSON streams, plain text).
func formatJSON(body string) string {

	var i interface{}

	err := json.Unmarshal([]byte(body), &i)
	if err != nil {
		return body
	}

	bytes, err := json.MarshalIndent(i, "", "    ")
	if err != nil {
		return body
	}

	return string(bytes)
}

func mdDescription(d string) string {
	d = mdCropTabs(d)
	d = strings.ReplaceAll(d, "\n´´´", "\n```")
	return d
}

// mdCropTabs removes the common tab indentation of a raw string literal.
func mdCropTabs(d string) string {
	lines := strings.Split(d, "\n")

	first := 0
	last := len(lines)
	if len(lines) > 2 {
		first++
		last--
	}

	minTabs := -1
	for _, line := range lines[first:last] {
		if strings.TrimSpace(line) == "" {
			continue
		}
		c := mdCountTabs(line)
		if minTabs < 0 || c < minTabs {
			minTabs = c
		}
	}
	if minTabs < 0 {
		minTabs = 0
	}

	prefix := strings.Repeat("\t", minTabs)
	for i, line := range lines {
		lines[i] = strings.TrimPrefix(line, prefix)
	}

	return strings.Join(lines, "\n")
}

func mdCountTabs(d string) int {
	i := 0
	for _, c := range d {
		if c != '\t' {
			break
		}
		i++
	}
	return i
}
