package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/DjordjeVuckovic/rpn-calc/internal/bench/suite"
	"github.com/DjordjeVuckovic/rpn-calc/pkg/schema"
)

func main() {
	outputDir := flag.String("output", "configs/suites", "Output directory for generated schemas")
	baseID := flag.String("base-id", "https://schemas.rpn-calc.dev", "Base URI for schema $id")
	flag.Parse()

	if err := os.MkdirAll(*outputDir, 0755); err != nil {
		log.Fatalf("Failed to create output directory: %v", err)
	}

	data, err := schema.NewGenerator(*baseID).GenerateJSON(suite.TestSuite{})
	if err != nil {
		log.Fatalf("Failed to generate suite schema: %v", err)
	}

	out := filepath.Join(*outputDir, "suite.schema.json")
	if err := os.WriteFile(out, data, 0644); err != nil {
		log.Fatalf("Failed to write JSON schema: %v", err)
	}

	fmt.Printf("Generated JSON schema: %s\n", out)
}
