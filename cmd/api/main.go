package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"

	"reportlens/pkg/api/analyze"
	"reportlens/pkg/core/fields"
	"reportlens/pkg/core/pipeline"
	"reportlens/pkg/core/sentiment"
)

func main() {
	// Load environment variables
	godotenv.Load()

	// Classifier provider config
	var classifierCfg sentiment.Config
	configData, err := os.ReadFile("config/models.yaml")
	if err != nil {
		fmt.Printf("[WARNING] Failed to read config/models.yaml: %v\n", err)
		fmt.Println("  Falling back to the offline lexicon classifier")
	} else if err := yaml.Unmarshal(configData, &classifierCfg); err != nil {
		fmt.Printf("[WARNING] Invalid config/models.yaml: %v\n", err)
	}
	manager := sentiment.NewManager(classifierCfg)
	fmt.Printf("[SENTIMENT] Active classifier: %s (max_chars=%d)\n",
		manager.ActiveProvider(), manager.MaxChars())

	// Field-rule templates
	templates, err := fields.LoadDir("config/templates")
	if err != nil {
		fmt.Printf("[WARNING] Failed to load rule templates: %v\n", err)
		fmt.Println("  Falling back to built-in templates")
		templates = fields.BuiltinTemplates()
	}

	templateName := os.Getenv("REPORT_TEMPLATE")
	if templateName == "" {
		templateName = "standard"
	}
	rules, ok := templates[templateName]
	if !ok {
		fmt.Printf("[FATAL] Unknown report template %q\n", templateName)
		os.Exit(1)
	}
	fmt.Printf("[FIELDS] Template %q with %d rules\n", rules.Template, len(rules.Rules))

	analyzer := pipeline.NewAnalyzer(rules, manager.GetClassifier(), manager.MaxChars())
	handler := analyze.NewHandler(analyzer)

	http.HandleFunc("/api/analyze", handler.HandleAnalyze)
	http.HandleFunc("/api/analyze/result", handler.HandleResult)
	http.HandleFunc("/api/analyze/report", handler.HandleReport)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	fmt.Printf("API server starting on :%s...\n", port)
	fmt.Println("  - POST /api/analyze          (multipart upload, field \"report\")")
	fmt.Println("  - GET  /api/analyze/result   (?id=)")
	fmt.Println("  - GET  /api/analyze/report   (?id=, rendered HTML)")

	if err := http.ListenAndServe(":"+port, nil); err != nil {
		fmt.Printf("[FATAL] Server failed to start: %v\n", err)
		os.Exit(1)
	}
}
