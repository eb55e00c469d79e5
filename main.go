package main

import "sheetmerge/cmd"

func main() {
	cmd.Execute()
}
