package main

import "market-board/cmd"

func main() {
	cmd.Execute()
}
