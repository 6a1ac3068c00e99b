package main

import (
	"fmt"
	"os"

	pkgversion "github.com/pzverkov/curvelab/pkg/version"
)

// Build-time variables (set via -ldflags)
var (
	version   = ""        // Set via -ldflags "-X main.version=x.y.z"
	buildTime = "unknown" // Set via -ldflags "-X main.buildTime=..."
)

func getVersion() string {
	if version != "" {
		return version
	}
	return pkgversion.String()
}

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "demo":
		demoCommand()
	case "points":
		pointsCommand()
	case "contrast":
		contrastCommand()
	case "version":
		fmt.Printf("curvelab version %s\n", getVersion())
		if buildTime != "unknown" {
			fmt.Printf("Built: %s\n", buildTime)
		}
	case "help", "--help", "-h":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`curvelab - Elliptic-Curve Diffie-Hellman Classroom Tool

USAGE:
    curvelab <command> [options]

COMMANDS:
    demo      Walk through a two-party ECDH + encryption exchange
    points    Enumerate every point on a curve
    contrast  Place the classroom curve next to real X25519
    version   Print version information
    help      Show this help message

Run 'curvelab <command> --help' for more information on a command.

EXAMPLES:
    # Full Alice/Bob walkthrough with fixed scalars
    curvelab demo --d 7 --k 5 --message hi

    # All points of y² = x³ + 2x + 3 over F_97
    curvelab points

    # The same curve equation over a different tiny prime
    curvelab points --p 11 --a 0 --b 1

    # Toy curve vs. Curve25519
    curvelab contrast

PROJECT:
    curvelab - a teaching tool, not a cryptographic library.
    The curve has 100 points; everything it "protects" is public
    by construction.`)
}
