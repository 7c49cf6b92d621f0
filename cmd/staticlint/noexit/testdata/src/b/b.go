package main

import (
	stdos "os"
)

type exiter struct{}

func (exiter) Exit(code int) {}

func main() {
	var os exiter
	os.Exit(0)

	go func() {
		stdos.Exit(3)
	}()

	stdos.Exit(2) // want `avoid calling os.Exit in main.main`
}
