package main

import "deviceinfocompare/cmd"

func main() {
	cmd.Execute()
}
