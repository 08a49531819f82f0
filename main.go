package main

import "github.com/tirumala-planners/site-backend/cmd"

func main() {
	cmd.Execute()
}
