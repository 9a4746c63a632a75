package main

import (
	"github.com/coecms/zenmeta/cmd"

	// Register all source and target plugins
	_ "github.com/coecms/zenmeta/source/csiro"
	_ "github.com/coecms/zenmeta/source/geonetwork"
	_ "github.com/coecms/zenmeta/target/invenio"
	_ "github.com/coecms/zenmeta/target/zenodo"
)

func main() {
	cmd.Execute()
}
