package main

import "github.com/atogen/atogen/cmd/atogen/cmd"

func main() {
	cmd.Execute()
}
