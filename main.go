package main

import "github.com/faftech/portfolio-admin/cmd"

func main() {
	cmd.Execute()
}
