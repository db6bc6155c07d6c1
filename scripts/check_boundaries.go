package main

import (
	"fmt"
	"os"

	"campaignhub/internal/platform/boundaries"
)

func main() {
	violations, err := boundaries.Check("contexts", boundaries.Rules{
		Module:               "campaignhub",
		ApplicationLibraries: []string{"github.com/go-playground/validator/v10"},
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "boundary check failed: %v\n", err)
		os.Exit(1)
	}
	if len(violations) == 0 {
		fmt.Println("boundary checks passed")
		return
	}

	fmt.Println("boundary violations found:")
	for _, v := range violations {
		fmt.Printf("- %s\n", v)
	}
	os.Exit(1)
}
