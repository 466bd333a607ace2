package main

import (
	"fmt"
	"os"

	"fjacquet/raiffeisen-csv/cmd/raiffeisen"
	"fjacquet/raiffeisen-csv/cmd/root"
)

func init() {
	root.Init()
	root.Cmd.AddCommand(raiffeisen.Cmd)
}

func main() {
	if err := root.Cmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
