package main

import "github.com/tonhe/replaylens/cmd"

func main() {
	cmd.Execute()
}
