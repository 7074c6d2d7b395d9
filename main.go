package main

import (
	"github.com/primevis/primevis/cmd"
)

func main() {
	cmd.Execute()
}
