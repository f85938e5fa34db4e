package main

import "go-peerrank-backend/internal/cli"

func main() {
	cli.Execute()
}
