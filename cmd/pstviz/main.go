package main

import "github.com/dcollins-dev/pst/cmd/pstviz/cmd"

func main() {
	cmd.Execute()
}
