/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>

*/
package main

import "github.com/blu3eee/gospoty/cmd"

func main() {
	cmd.Execute()
}
