// Package main is the entry point for the product search gateway.
//
// @title Product Search Gateway API
// @version 1.0
// @description Searches the upstream product catalog and reformats results with a text-generation model.
//
// @host localhost:8080
// @BasePath /
// @schemes http https
package main

import "github.com/nhalm/search-gateway/cmd/gateway/cmd"

func main() {
	cmd.Execute()
}
