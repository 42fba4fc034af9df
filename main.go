package main

import "github.com/nextlevelbuilder/guessgame/cmd"

func main() {
	cmd.Execute()
}
