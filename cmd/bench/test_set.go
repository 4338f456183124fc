package main

import (
	"bufio"
	"fmt"
	"io"
	"net/http"
	"os"
	"sync/atomic"
	"time"
)

// writeItems streams {"a","b","item"} lines until the shared counter is
// exhausted. Item n lands on row n/width, column n%width.
func writeItems(w io.Writer, counter *int64, width int64) {
	wb := bufio.NewWriterSize(w, 1*1024*1024)
	for {
		n := atomic.AddInt64(counter, -1)
		if n < 0 {
			break
		}
		fmt.Fprintf(wb, "{\"a\":\"a%d\",\"b\":\"b%d\",\"item\":%d}\n", n/width, n%width, n)
	}
	wb.Flush()
}

func TestSet(c Config) {

	table := CreateTable(c.Base)

	client := NewClient()

	items := c.N

	go func() {
		for {
			fmt.Println("items:", atomic.LoadInt64(&items))
			time.Sleep(1 * time.Second)
		}
	}()

	t0 := time.Now()
	Parallel(c.Workers, func() {

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
	})

	took := time.Since(t0)
	fmt.Println("sent:", c.N)
	fmt.Println("took:", took)
	fmt.Printf("Throughput: %.2f items/sec\n", float64(c.N)/took.Seconds())

}
