package main

import (
	"fmt"
	"os"
	"vigil/cmd/vigil"
)

func main() {
	if err := vigil.Command.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
