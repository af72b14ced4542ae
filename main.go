package main

import "github.com/aditsuru-git/rpomodoro/cmd"

func main() {
	cmd.Execute()
}
