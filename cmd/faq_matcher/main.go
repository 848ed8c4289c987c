package main

import (
	"github.com/gcbaptista/go-faq-matcher/internal/cli"
)

func main() {
	cli.Execute()
}
