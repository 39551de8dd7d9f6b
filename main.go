package main

import "flightdeals-cli/cmd"

func main() {
	cmd.Execute()
}
