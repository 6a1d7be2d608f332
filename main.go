package main

import "github.com/carson-networks/hustle-tracker/internal/cli"

func main() {
	cli.Execute()
}
