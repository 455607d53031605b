package main

import "github.com/tagpack/tagpack/cmd/tagpack/cmd"

func main() {
	cmd.Execute()
}
