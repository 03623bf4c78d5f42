package main

import "tvshows-client/cmd"

func main() {
	cmd.Run()
}
