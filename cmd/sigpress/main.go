package main

import "github.com/mvp-joe/sigpress/internal/cli"

func main() {
	cli.Execute()
}
