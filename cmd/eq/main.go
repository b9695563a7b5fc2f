package main

import "ecoquest/cmd/eq/root"

func main() {
	root.Execute()
}
