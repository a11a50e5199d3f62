package main

import "github.com/RifqiMT/working-hours-tracker/cmd"

func main() {
	cmd.Execute()
}
