package main

import "csv-adapter/cmd"

func main() {
	cmd.Execute()
}
