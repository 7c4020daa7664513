package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/plantrx/guide-engine/internal/config"
	"github.com/plantrx/guide-engine/internal/db"
	"github.com/plantrx/guide-engine/internal/guide"
	"github.com/plantrx/guide-engine/internal/llm"
	"github.com/plantrx/guide-engine/internal/observability"
	"github.com/plantrx/guide-engine/internal/types"
	"github.com/plantrx/guide-engine/internal/validation"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate one personalized guide PDF",
	Long: `Generates a transformation guide for a single plan type from a profile and
optional questionnaire answers, and writes the PDF to the output directory.

Configuration can be loaded from a JSON file using --config. Command-line
arguments override config file values.`,
	RunE: runGenerateCmd,
}

var (
	genConfigPath  string
	genPlan        string
	genProfilePath string
	genAnswersPath string
	genOutputDir   string
	genAINote      bool
	genAPIKey      string
	genSave        bool
	genDatabaseURL string
	genVerbose     bool
)

func init() {
	generateCmd.Flags().StringVar(&genConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")

	generateCmd.Flags().StringVarP(&genPlan, "plan", "p", "", "Plan type: diet, fitness, skincare, wellness, recovery")
	generateCmd.Flags().StringVar(&genProfilePath, "profile", "", "Path to user profile JSON file")
	generateCmd.Flags().StringVar(&genAnswersPath, "answers", "", "Path to questionnaire answers JSON file")
	generateCmd.Flags().StringVarP(&genOutputDir, "out", "o", ".", "Output directory for the PDF")
	generateCmd.Flags().BoolVar(&genAINote, "ai-note", false, "Generate an AI-personalized intro note (requires GEMINI_API_KEY)")
	generateCmd.Flags().StringVar(&genAPIKey, "api-key", "", "Gemini API Key (optional, defaults to GEMINI_API_KEY env var)")
	generateCmd.Flags().BoolVar(&genSave, "save", false, "Store the generated guide in the database")
	generateCmd.Flags().StringVar(&genDatabaseURL, "db-url", "", "PostgreSQL connection URL (optional, defaults to DATABASE_URL env var)")
	generateCmd.Flags().BoolVarP(&genVerbose, "verbose", "v", false, "Print a generation summary and layout checks")

	rootCmd.AddCommand(generateCmd)
}

func runGenerateCmd(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	var cfg config.Config
	if genConfigPath != "" {
		loadedCfg, err := config.LoadConfig(genConfigPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if err := loadedCfg.Validate(); err != nil {
			return err
		}
		cfg = *loadedCfg
	}

	// CLI flags override config file values
	if cmd.Flags().Changed("plan") {
		cfg.Plan = genPlan
	}
	if cmd.Flags().Changed("profile") {
		cfg.ProfilePath = genProfilePath
	}
	if cmd.Flags().Changed("answers") {
		cfg.AnswersPath = genAnswersPath
	}
	if cmd.Flags().Changed("out") {
		cfg.OutputDir = genOutputDir
	}
	if cmd.Flags().Changed("ai-note") {
		cfg.AINote = genAINote
	}
	if cmd.Flags().Changed("api-key") {
		cfg.APIKey = genAPIKey
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = genVerbose
	}
	if cfg.OutputDir == "" {
		cfg.OutputDir = "."
	}

	plan, err := types.ParsePlanType(cfg.Plan)
	if err != nil {
		return err
	}

	profile, err := loadProfile(cfg.ProfilePath)
	if err != nil {
		return err
	}
	answers, err := loadAnswers(cfg.AnswersPath)
	if err != nil {
		return err
	}

	// The personal note is computed before assembly so generation itself
	// stays deterministic in its inputs.
	var note string
	if cfg.AINote {
		client, err := newNoteClient(ctx, cfg.APIKey)
		if err != nil {
			return err
		}
		if client != nil {
			defer client.Close()
		}
		note = llm.PersonalNote(ctx, client, plan, profile)
	}

	gen := &guide.Generator{}
	res, err := gen.Generate(ctx, guide.Request{
		Plan:         plan,
		Profile:      profile,
		Answers:      answers,
		PersonalNote: note,
	})
	if err != nil {
		return err
	}

	outPath := filepath.Join(cfg.OutputDir, outputFilename(plan, profile))
	if err := os.WriteFile(outPath, res.PDF, 0o644); err != nil {
		return fmt.Errorf("failed to write guide: %w", err)
	}
	fmt.Printf("Wrote %s (%d pages, %.1f KB)\n", outPath, res.Pages, float64(len(res.PDF))/1024)

	if cfg.Verbose {
		printer := observability.NewPrinter(os.Stdout)
		printer.PrintGuideSummary(plan, profile, res)
		printer.PrintViolations(layoutViolations(res))
	}

	if genSave {
		if err := saveGuide(ctx, firstNonEmpty(genDatabaseURL, cfg.DatabaseURL, os.Getenv("DATABASE_URL")), plan, profile, res); err != nil {
			return err
		}
	}

	return nil
}

// newNoteClient builds the Gemini client for note generation. A missing key
// returns a nil client, which downgrades to static copy.
func newNoteClient(ctx context.Context, apiKey string) (llm.Client, error) {
	if apiKey == "" {
		apiKey = os.Getenv("GEMINI_API_KEY")
	}
	if apiKey == "" {
		fmt.Fprintln(os.Stderr, "No GEMINI_API_KEY set; using the standard intro note")
		return nil, nil
	}
	client, err := llm.NewGeminiClient(ctx, apiKey, "")
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return client, nil
}

// loadProfile reads a profile JSON file. An empty path yields a nil profile,
// which generates with defaults.
func loadProfile(path string) (*types.UserProfile, error) {
	if path == "" {
		return nil, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read profile: %w", err)
	}
	var profile types.UserProfile
	if err := json.Unmarshal(data, &profile); err != nil {
		return nil, fmt.Errorf("failed to parse profile JSON: %w", err)
	}
	if err := validation.ValidateProfile(&profile); err != nil {
		return nil, fmt.Errorf("invalid profile: %w", err)
	}
	return &profile, nil
}

// loadAnswers reads and schema-checks an answers JSON file
func loadAnswers(path string) (types.Answers, error) {
	if path == "" {
		return nil, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read answers: %w", err)
	}
	if err := validation.ValidateAnswersJSON(data); err != nil {
		return nil, fmt.Errorf("invalid answers: %w", err)
	}
	var answers types.Answers
	if err := json.Unmarshal(data, &answers); err != nil {
		return nil, fmt.Errorf("failed to parse answers JSON: %w", err)
	}
	return answers, nil
}

// outputFilename builds a filesystem-safe name like "jordan-diet-guide.pdf"
func outputFilename(plan types.PlanType, profile *types.UserProfile) string {
	name := strings.ToLower(profile.DisplayName())
	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ' || r == '-' || r == '_':
			b.WriteByte('-')
		}
	}
	safe := strings.Trim(b.String(), "-")
	if safe == "" {
		safe = "guide"
	}
	return fmt.Sprintf("%s-%s-guide.pdf", safe, plan)
}

// layoutViolations runs the trace checks the layout engine guarantees
func layoutViolations(res *guide.Result) []validation.Violation {
	declared := make(map[string]int, len(res.Sections))
	for _, s := range res.Sections {
		declared[s.Title] = s.Page
	}
	var violations []validation.Violation
	violations = append(violations, validation.CheckOverflow(res.Trace)...)
	violations = append(violations, validation.CheckPageNumbering(res.Trace)...)
	violations = append(violations, validation.CheckTOC(res.Trace, declared)...)
	return violations
}

// saveGuide stores the result when a database URL is available
func saveGuide(ctx context.Context, databaseURL string, plan types.PlanType, profile *types.UserProfile, res *guide.Result) error {
	if databaseURL == "" {
		return fmt.Errorf("--save requires a database URL (--db-url or DATABASE_URL)")
	}
	database, err := db.Connect(ctx, databaseURL)
	if err != nil {
		return err
	}
	defer database.Close()

	id, err := database.SaveGuide(ctx, plan.String(), profile.DisplayName(), profile.DurationDays(), res.Pages, res.PDF)
	if err != nil {
		return err
	}
	fmt.Printf("Stored guide %s\n", id)
	return nil
}

// firstNonEmpty returns the first non-empty string
func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
