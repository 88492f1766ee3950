package main

import (
	"github.com/Zachkp/portfolio/cmd"
)

func main() {
	cmd.Execute(newCatalog())
}
