package main

import "github.com/brianleepetros/weather-ai/cmd"

func main() {
	cmd.Execute()
}
