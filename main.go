package main

import "github.com/jsphweid/midisolo/cmd"

func main() {
	cmd.Execute()
}
