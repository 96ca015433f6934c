package commands

import (
	"fmt"

	"github.com/qaforge/qaforge/internal/version"
)

// printStartupBanner prints the user-friendly startup message
func printStartupBanner(port int, outputDir string) {
	cyan := "\033[36m"
	green := "\033[32m"
	yellow := "\033[33m"
	blue := "\033[34m"
	bold := "\033[1m"
	reset := "\033[0m"

	versionInfo := version.Get()

	fmt.Printf("\n%s%s", cyan, bold)
	fmt.Printf("   ╔═══════════════════════════════════════════╗\n")
	fmt.Printf("   ║                                           ║\n")
	fmt.Printf("   ║    ██████   █████     qaforge             ║\n")
	fmt.Printf("   ║   ██    ██ ██   ██                        ║\n")
	fmt.Printf("   ║   ██    ██ ███████    QA documentation    ║\n")
	fmt.Printf("   ║   ██ ▄▄ ██ ██   ██    generator           ║\n")
	fmt.Printf("   ║    ██████  ██   ██                        ║\n")
	fmt.Printf("   ║       ▀▀                                  ║\n")
	fmt.Printf("   ║                                           ║\n")
	fmt.Printf("   ╚═══════════════════════════════════════════╝%s\n\n", reset)

	fmt.Printf("%s%s┌─ qaforge Info ──────────────────────────────┐%s\n", green, bold, reset)
	fmt.Printf("%s│%s Version: %s (commit %s)\n", green, reset, versionInfo.Version, versionInfo.Short())
	fmt.Printf("%s│%s Built:   %s\n", green, reset, versionInfo.BuildTime)
	fmt.Printf("%s│%s Port:    %d\n", green, reset, port)
	fmt.Printf("%s│%s Output:  %s\n", green, reset, outputDir)
	fmt.Printf("%s└─────────────────────────────────────────────┘%s\n", green, reset)

	fmt.Printf("\n%s%s✨ POST a requirement to /api/generate%s\n", yellow, bold, reset)
	fmt.Printf("%s💡 Press Ctrl+C to stop%s\n\n", blue, reset)
}
