package main

import "github.com/bochkarevko/timetable-bot/cmd"

func main() {
	cmd.Execute()
}
