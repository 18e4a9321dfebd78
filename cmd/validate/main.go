// Command validate checks the embedded gazetteer and neighborhood
// directory for data-quality problems: zip codes assigned to more than
// one neighborhood, colliding or near-duplicate names and aliases,
// malformed zips, and inverted bounds. Run it in CI whenever the data
// files change; it exits non-zero if any finding is an error.
package main

import (
	"fmt"
	"os"

	"github.com/lowcountrylister/listing-service/internal/directory"
	"github.com/lowcountrylister/listing-service/internal/gazetteer"
)

func main() {
	gaz, err := gazetteer.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "gazetteer:", err)
		os.Exit(1)
	}
	fmt.Printf("gazetteer: %d entries, %d popular\n", gaz.Len(), len(gaz.Popular()))

	dir, err := directory.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "directory:", err)
		os.Exit(1)
	}
	fmt.Printf("directory: %d neighborhoods\n", dir.Len())

	issues := directory.Validate(dir)
	if len(issues) == 0 {
		fmt.Println("directory: no issues")
		return
	}

	for _, issue := range issues {
		fmt.Printf("%-7s %-28s %s\n", issue.Severity, issue.Record, issue.Message)
	}
	if directory.HasErrors(issues) {
		os.Exit(1)
	}
}
