package main

import "stakegulf-cms/cmd"

func main() {
	cmd.Execute()
}
