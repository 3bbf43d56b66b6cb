package main

import "coanalyst/cmd"

func main() {
	cmd.Execute()
}
