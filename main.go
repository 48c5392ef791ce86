package main

import "github.com/mouse-blink/bytebeat/cmd"

func main() {
	cmd.Execute()
}
