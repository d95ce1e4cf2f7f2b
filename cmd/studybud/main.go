package main

import "github.com/thereayou/studybud/internal/server"

func main() {
	server.NewServer().Run()
}
