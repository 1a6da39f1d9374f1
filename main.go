package main

import "golang-ifconf/cmd"

func main() {
	cmd.Execute()
}
