package main

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"sync/atomic"
	"time"
)

// TestDelete preloads a table and then removes it cell by cell, so every
// delete exercises slot compaction.
func TestDelete(c Config) {

	table := CreateTable(c.Base)

	client := NewClient()
	defer client.CloseIdleConnections()

	{
		fmt.Println("Preload items...")
		items := c.N
		r, w := io.Pipe()
		go func() {
			writeItems(w, &items, c.Width)
			w.Close()
		}()

		req, err := http.NewRequest("POST", c.Base+"/v1/tables/"+table+":set", r)
		if err != nil {
			fmt.Println("ERROR: new request:", err.Error())
			os.Exit(3)
		}

		resp, err := client.Do(req)
		if err != nil {
			fmt.Println("ERROR: do request:", err.Error())
			os.Exit(4)
		}
		io.Copy(io.Discard, resp.Body)
		resp.Body.Close()
	}

	deleteURL := fmt.Sprintf("%s/v1/tables/%s:delete", c.Base, table)

	t0 := time.Now()
	pending := c.N
	Parallel(c.Workers, func() {
		for {
			n := atomic.AddInt64(&pending, -1)
			if n < 0 {
				return
			}

			body := fmt.Sprintf(`{"a":"a%d","b":"b%d"}`, n/c.Width, n%c.Width)
			req, err := http.NewRequest(http.MethodPost, deleteURL, strings.NewReader(body))
			if err != nil {
				fmt.Println("ERROR: new request:", err.Error())
				return
			}
			req.Header.Set("Content-Type", "application/json")

			resp, err := client.Do(req)
			if err != nil {
				fmt.Println("ERROR: do request:", err.Error())
				return
			}
			io.Copy(io.Discard, resp.Body)
			resp.Body.Close()

			if resp.StatusCode != http.StatusNoContent {
				fmt.Println("ERROR: bad status:", resp.Status)
			}
		}
	})

	took := time.Since(t0)
	fmt.Println("deleted:", c.N)
	fmt.Println("took:", took)
	fmt.Printf("Throughput: %.2f items/sec\n", float64(c.N)/took.Seconds())
}
