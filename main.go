package main

import "github.com/inovacc/routeguide/cmd"

func main() {
	cmd.Execute()
}
