package main

import "silktouch/internal/cmd"

func main() {
	cmd.Execute()
}
