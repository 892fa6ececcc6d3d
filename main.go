package main

import "github.com/xiaot623/wallboard/cmd"

func main() {
	cmd.Execute()
}
