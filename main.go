package main

import "github.com/jaimeum/musicdata/cmd"

func main() {
	cmd.Execute()
}
