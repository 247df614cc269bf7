package main

import "github.com/tmessner/fieldlog/cmd"

func main() {
	cmd.Execute()
}
