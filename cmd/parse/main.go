// Command parse runs the voice utterance parser on a transcript and prints
// the structured result as JSON. Useful for tuning keyword tables and
// debugging segmentation without starting the API server.
//
// Usage:
//
//	go run ./cmd/parse -ref 2024-03-13T10:00:00Z "buy groceries tomorrow at 5pm"
//	echo "call mom next friday" | go run ./cmd/parse -stats
package main

import (
	"bufio"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"voicetask/config"
	"voicetask/internal/category"
	"voicetask/pkg/voiceparse"
)

func main() {
	refFlag := flag.String("ref", "", "reference instant, RFC 3339 (default: now)")
	statsFlag := flag.Bool("stats", false, "print transcript diagnostics instead of the parse result")
	fuzzyFlag := flag.Bool("fuzzy", false, "enable phonetic-tolerant category matching")
	flag.Parse()

	text := strings.Join(flag.Args(), " ")
	if text == "" {
		scanner := bufio.NewScanner(os.Stdin)
		var lines []string
		for scanner.Scan() {
			lines = append(lines, scanner.Text())
		}
		text = strings.Join(lines, " ")
	}

	ref := time.Now()
	if *refFlag != "" {
		parsed, err := time.Parse(time.RFC3339, *refFlag)
		if err != nil {
			fmt.Fprintf(os.Stderr, "invalid -ref value %q: %v\n", *refFlag, err)
			os.Exit(1)
		}
		ref = parsed
	}

	// Category overrides from config.yaml apply here too, so CLI output
	// matches what the API would return.
	opts := []voiceparse.Option{}
	if cfg, err := config.Load(); err == nil {
		opts = append(opts, voiceparse.WithTables(category.NewCatalog(cfg.Parser.Categories).Tables()))
		if loc, locErr := time.LoadLocation(cfg.Parser.Timezone); locErr == nil && *refFlag == "" {
			ref = ref.In(loc)
		}
	}
	if *fuzzyFlag {
		opts = append(opts, voiceparse.WithFuzzyMatching(0))
	}
	parser := voiceparse.New(opts...)

	var out any
	if *statsFlag {
		out = parser.Stats(text)
	} else {
		out = parser.Parse(text, ref)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		fmt.Fprintf(os.Stderr, "failed to encode result: %v\n", err)
		os.Exit(1)
	}
}
