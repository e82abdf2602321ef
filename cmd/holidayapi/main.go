package main

import (
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/flarebyte/holidayapi-cli/cmd/holidayapi/root"
)

type exitCoder interface {
	ExitCode() int
}

func main() {
	if err := root.Execute(os.Args[1:]); err != nil {
		// Single line on stderr, no usage.
		msg := strings.Join(strings.Fields(err.Error()), " ")
		if msg == "" {
			msg = "error"
		}
		_, _ = color.New(color.FgRed).Fprintln(os.Stderr, msg)
		code := 1
		if ec, ok := err.(exitCoder); ok {
			if c := ec.ExitCode(); c != 0 {
				code = c
			}
		}
		os.Exit(code)
	}
}
