package main

import "impractical.co/learnphoto/internal/cli"

func main() {
	cli.Execute()
}
