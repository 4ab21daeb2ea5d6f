package main

import "dayboard/cmd"

func main() {
	cmd.Execute()
}
