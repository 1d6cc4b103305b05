package main

import (
	_ "embed"

	"github.com/haierkeys/link-store-service/cmd"
	"github.com/haierkeys/link-store-service/web"
)

//go:embed config/config.yaml
var c string

func main() {
	cmd.Execute(web.Files, c)
}
