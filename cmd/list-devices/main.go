// list-devices prints the available audio endpoints. Use it to find the
// exact device names for the device-name and input-device-name config
// options.
package main

import (
	"fmt"
	"os"

	"soundswitch/internal/catalog"
)

func main() {
	cat := catalog.NewSystem()

	printKind(cat, catalog.Output, "output")
	fmt.Println()
	printKind(cat, catalog.Input, "input")

	fmt.Println()
	fmt.Println("To use a device, add to config.toml:")
	fmt.Println(`  [[hotkeys]]`)
	fmt.Println(`  keys = "Ctrl+Alt+F1"`)
	fmt.Println(`  device-name = "DEVICE_NAME"`)
}

func printKind(cat catalog.Catalog, kind catalog.Kind, label string) {
	endpoints, err := cat.Endpoints(kind)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error listing %s devices: %v\n", label, err)
		os.Exit(1)
	}

	if len(endpoints) == 0 {
		fmt.Printf("No %s devices found.\n", label)
		return
	}

	fmt.Printf("Available %s devices:\n", label)
	for i, ep := range endpoints {
		defaultMarker := ""
		if ep.Default {
			defaultMarker = " (default)"
		}
		fmt.Printf("  %d: %s%s\n", i, ep.FriendlyName, defaultMarker)
	}
}
