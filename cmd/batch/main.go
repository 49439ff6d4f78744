// Batch runner: analyzes every report in a directory and prints one summary
// line per document. Useful for regression-checking a rule template against
// a folder of known reports.
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"reportlens/pkg/core/extract"
	"reportlens/pkg/core/fields"
	"reportlens/pkg/core/pipeline"
	"reportlens/pkg/core/sentiment"
)

func main() {
	godotenv.Load()

	if len(os.Args) < 2 {
		fmt.Println("Usage: batch <report-dir> [template]")
		os.Exit(1)
	}
	dir := os.Args[1]

	templateName := "standard"
	if len(os.Args) > 2 {
		templateName = os.Args[2]
	}
	rules, ok := fields.BuiltinTemplates()[templateName]
	if !ok {
		fmt.Printf("[FATAL] Unknown template %q\n", templateName)
		os.Exit(1)
	}

	// Offline classifier: the batch runner should not burn API quota.
	analyzer := pipeline.NewAnalyzer(rules, sentiment.NewLexiconClassifier(), 0)

	entries, err := os.ReadDir(dir)
	if err != nil {
		fmt.Printf("[FATAL] Cannot read %s: %v\n", dir, err)
		os.Exit(1)
	}

	start := time.Now()
	analyzed := 0
	for _, entry := range entries {
		name := strings.ToLower(entry.Name())
		if entry.IsDir() || (!strings.HasSuffix(name, ".pdf") && !strings.HasSuffix(name, ".html")) {
			continue
		}

		path := filepath.Join(dir, entry.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			fmt.Printf("[BATCH] %s: read failed: %v\n", entry.Name(), err)
			continue
		}

		doc, err := extract.Open(data, entry.Name())
		if err != nil {
			fmt.Printf("[BATCH] %s: %v\n", entry.Name(), err)
			continue
		}

		result := analyzer.Analyze(context.Background(), doc)
		analyzed++

		if result.Unreadable {
			fmt.Printf("[BATCH] %s: UNREADABLE (%s)\n", entry.Name(), result.FailureReason)
			continue
		}
		rec := "Not Found"
		if v, found := result.KeyInfo.Get("recommendation"); found {
			rec = v
		}
		fmt.Printf("[BATCH] %s: score=%d risk=%s rec=%s value=%s growth=%s\n",
			entry.Name(), result.InvestmentScore, result.RiskTier, rec,
			result.ValueFit, result.GrowthFit)
	}

	fmt.Printf("[BATCH] Analyzed %d reports in %v\n", analyzed, time.Since(start))
}
