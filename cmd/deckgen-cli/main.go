package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	charmlog "github.com/charmbracelet/log"

	"github.com/goliatone/go-deckgen/pkg/logging"
	"github.com/goliatone/go-deckgen/pkg/orchestrator"
	"github.com/goliatone/go-deckgen/pkg/payload"
)

func main() {
	source := flag.String("source", "", "deck payload path (JSON or YAML)")
	renderer := flag.String("renderer", "deckjson", "renderer to use")
	output := flag.String("output", "", "output file (derived filename if empty, '-' for stdout)")
	lint := flag.Bool("lint", false, "report strict contract deviations")
	verbose := flag.Bool("verbose", false, "log repair diagnostics")
	flag.Parse()

	if *source == "" {
		log.Fatal("missing -source payload path")
	}

	doc, err := payload.FromFile(*source)
	if err != nil {
		log.Fatalf("Failed to read payload: %v", err)
	}

	level := charmlog.WarnLevel
	if *verbose {
		level = charmlog.InfoLevel
	}
	logger := logging.New(&logging.Config{Level: level, Output: os.Stderr, Prefix: "deckgen"})

	gen := orchestrator.New(orchestrator.WithLogger(logger))

	result, err := gen.Generate(context.Background(), orchestrator.Request{
		Document:   &doc,
		Renderer:   *renderer,
		StrictLint: *lint,
	})
	if err != nil {
		log.Fatalf("Failed to generate deck: %v", err)
	}

	if *lint {
		for _, deviation := range result.Deviations {
			fmt.Fprintf(os.Stderr, "deviation: %s\n", deviation)
		}
		if len(result.Deviations) == 0 {
			fmt.Fprintln(os.Stderr, "payload conforms to the strict contract")
		}
	}

	switch *output {
	case "-":
		os.Stdout.Write(result.Output)
	case "":
		if err := os.WriteFile(result.Filename, result.Output, 0o644); err != nil {
			log.Fatalf("Failed to write output: %v", err)
		}
		fmt.Printf("Deck written to %s\n", result.Filename)
	default:
		if err := os.WriteFile(*output, result.Output, 0o644); err != nil {
			log.Fatalf("Failed to write output: %v", err)
		}
		fmt.Printf("Deck written to %s\n", *output)
	}
}
