package main

import (
	"github.com/thirdweb-dev/chainscan/cmd"
)

func main() {
	cmd.Execute()
}
