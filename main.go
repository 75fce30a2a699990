package main

import "github.com/hance08/bankbook/cmd"

func main() {
	cmd.Execute()
}
