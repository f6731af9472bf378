package main

import (
	"fmt"
	"os"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "serve":
		if err := runServe(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "probe":
		if err := runProbe(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "--help", "-h", "help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println("gomymcp — MySQL MCP Server")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  gomymcp serve       Start the MCP server")
	fmt.Println("  gomymcp probe       Validate config and test a database connection")
	fmt.Println("  gomymcp --help      Show this help message")
}
