package main

import "icon-data/cmd"

func main() {
	cmd.Execute()
}
