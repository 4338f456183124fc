package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/fulldump/goconfig"

	"github.com/fulldump/crosstable/bootstrap"
	"github.com/fulldump/crosstable/configuration"
)

var banner = `
  ____                   _____     _     _
 / ___|_ __ ___  ___ ___|_   _|_ _| |__ | | ___
| |   | '__/ _ \/ __/ __| | |/ _' | '_ \| |/ _ \
| |___| | | (_) \__ \__ \ | | (_| | |_) | |  __/
 \____|_|  \___/|___/___/ |_|\__,_|_.__/|_|\___|
                          version ` + bootstrap.VERSION + `
`

func main() {

	c := configuration.Default()
	goconfig.Read(c)

	if c.Version {
		fmt.Println("Version:", bootstrap.VERSION)
		return
	}

	if c.ShowBanner {
		fmt.Println(banner)
	}

	if c.ShowConfig {
		e := json.NewEncoder(os.Stdout)
		e.SetIndent("", "    ")
		e.Encode(c)
	}

	start, _ := bootstrap.Bootstrap(c)
	start()
}
