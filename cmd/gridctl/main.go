// Package main provides the gridctl CLI for launching and attaching to
// session clusters on the grid resource manager.
package main

func main() {
	Execute()
}
