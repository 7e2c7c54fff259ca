package main

import "github.com/BruksfildServices01/quickcut/internal/cli"

func main() {
	cli.Execute()
}
