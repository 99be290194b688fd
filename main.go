package main

import "github.com/EeOneDown/spbuTimetableAPI/cmd"

func main() {
	cmd.Execute()
}
