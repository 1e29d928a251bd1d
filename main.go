package main

import "github.com/bmatsuo/risp/cmd"

func main() {
	cmd.Execute()
}
