package main

import "coursectl/cmd"

func main() {
	cmd.Execute()
}
