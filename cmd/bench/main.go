package main

import (
	"log"
	"strings"

	"github.com/fulldump/goconfig"
)

type Config struct {
	Test    string `usage:"name of the test: ALL | SET | DELETE"`
	Base    string `usage:"base URL, empty starts an embedded server"`
	N       int64  `usage:"number of items"`
	Width   int64  `usage:"number of distinct B keys per A key"`
	Workers int    `usage:"number of workers"`
}

func main() {

	c := Config{
		Test:    "set",
		Base:    "",
		N:       1_000_000,
		Width:   100,
		Workers: 16,
	}
	goconfig.Read(&c)

	if c.Width <= 0 {
		log.Fatalf("Width must be positive")
	}

	if c.Base == "" {
		start, stop := CreateServer(&c)
		defer stop()
		go start()
	}

	switch strings.ToUpper(c.Test) {
	case "ALL":
		TestSet(c)
		TestDelete(c)
	case "SET":
		TestSet(c)
	case "DELETE":
		TestDelete(c)
	default:
		log.Fatalf("Unknown test %s", c.Test)
	}

}
