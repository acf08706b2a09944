package main

import "quality-engine/src/handler/cli"

func main() {
	cli.Run()
}
