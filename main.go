package main

import "github.com/huutaile/portfolio-admin/cmd"

func main() {
	cmd.Execute()
}
