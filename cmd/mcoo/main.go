// Package main is the entry point for the MCOO overlay editor.
package main

import (
	"flag"
	"fmt"
	"os"
)

func printHelp() {
	fmt.Println("Usage: mcoo [-c <config file>] [script...]")
	fmt.Println("\nOptions:")
	fmt.Println("  -c, --config     Path to the config file (default: ./data/config.json)")
	fmt.Println("  -h, --help       Show this help message")
	fmt.Println("\nWithout scripts the editor starts an interactive shell when stdin is a")
	fmt.Println("terminal, and reads commands from stdin otherwise. Each script is a file")
	fmt.Println("of shell commands, one per line; '-' reads stdin.")
}

func main() {
	var help bool
	var configPath string

	flag.StringVar(&configPath, "c", "", "Path to the config file")
	flag.StringVar(&configPath, "config", "", "Path to the config file")
	flag.BoolVar(&help, "h", false, "Show help")
	flag.BoolVar(&help, "help", false, "Show help")
	flag.Parse()

	if help {
		printHelp()
		os.Exit(0)
	}

	if err := bootstrap(configPath, flag.Args()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
