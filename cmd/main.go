package main

import (
	cmd "github.com/kerbaras/podscan/cmd/podscan"
)

func main() {
	cmd.Execute()
}
