package main

import "world-crawler/cmd"

func main() {
	cmd.Execute()
}
