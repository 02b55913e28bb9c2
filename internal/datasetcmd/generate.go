package datasetcmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/time/rate"

	"github.com/artatlas/curator/internal/artwork"
	"github.com/artatlas/curator/internal/dataset"
	"github.com/artatlas/curator/internal/generation"
	"github.com/artatlas/curator/internal/results"
)

// placeholderAPIKey is the value shipped in .env.example; treating it as
// unset keeps a copy-pasted template from burning quota on 401s.
const placeholderAPIKey = "YOUR_ACTUAL_API_KEY_HERE"

type generateOptions struct {
	input        string
	output       string
	provider     string
	model        string
	batchSize    int
	delay        float64
	paintings    int
	sculptures   int
	architecture int
	verbose      bool
}

// NewGenerateCmd creates the generate command
func NewGenerateCmd() *cobra.Command {
	var opts generateOptions

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate artworks with an LLM until category targets are met",
		Long: `Generate additional artwork records with an LLM provider until each
category reaches its target count.

Existing records are never modified: the command computes the per-category
gaps, requests batches of candidate records, drops every candidate whose
artist and title are already in the collection, and merges the survivors
into a complete dataset with sequential ids and run metadata. A YAML run
report is written under runs/ for later comparison.`,
		Example: `  # Fill the default targets (200/64/64) with Gemini
  curator dataset generate --input data/artworks-deduped.json

  # Use a local Ollama model with a smaller painting target
  curator dataset generate --provider ollama --paintings 100

  # Slow down between batches and show per-batch debug logs
  curator dataset generate --delay 5 --verbose`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := os.Stat(opts.input); os.IsNotExist(err) {
				return fmt.Errorf(`input file not found: %s

Point --input at an existing dataset (.json or .parquet), for example the
output of your deduplication step`, opts.input)
			}

			// Create a context that gets canceled on an interrupt signal (Ctrl+C)
			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return executeGenerate(ctx, opts)
		},
	}

	cmd.Flags().StringVar(&opts.input, "input", "data/artworks-deduped.json", "Path to the existing dataset (.json or .parquet)")
	cmd.Flags().StringVar(&opts.output, "output", "data/artworks-complete.json", "Path for the merged dataset")
	cmd.Flags().StringVar(&opts.provider, "provider", "", "LLM provider: gemini, ollama, or openai (default CURATOR_PROVIDER or gemini)")
	cmd.Flags().StringVar(&opts.model, "model", "", "Model name (default depends on the provider)")
	cmd.Flags().IntVar(&opts.batchSize, "batch-size", generation.DefaultBatchSize, "Nominal artworks requested per batch")
	cmd.Flags().Float64Var(&opts.delay, "delay", generation.DefaultDelay.Seconds(), "Seconds to wait between batches")
	cmd.Flags().IntVar(&opts.paintings, "paintings", 200, "Target painting count")
	cmd.Flags().IntVar(&opts.sculptures, "sculptures", 64, "Target sculpture count")
	cmd.Flags().IntVar(&opts.architecture, "architecture", 64, "Target architecture count")
	cmd.Flags().BoolVar(&opts.verbose, "verbose", false, "Enable verbose logging")

	return cmd
}

func executeGenerate(ctx context.Context, opts generateOptions) error {
	logLevel := slog.LevelInfo
	if opts.verbose {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	providerName := opts.provider
	if providerName == "" {
		providerName = os.Getenv("CURATOR_PROVIDER")
	}
	if providerName == "" {
		providerName = "gemini"
	}

	if err := checkCredentials(providerName); err != nil {
		return err
	}

	provider, err := generation.ResolveProvider(providerName)
	if err != nil {
		return err
	}

	model := opts.model
	if model == "" {
		model = generation.DefaultModel(providerName)
	}

	fmt.Println(strings.Repeat("=", 70))
	fmt.Println("Artwork Dataset Generation")
	fmt.Println(strings.Repeat("=", 70))
	fmt.Printf("Provider: %s\n", providerName)
	fmt.Printf("Model:    %s\n", model)
	fmt.Println()

	loader := dataset.NewLoader(opts.input)
	existing, err := loader.Load()
	if err != nil {
		return fmt.Errorf("failed to load dataset: %w", err)
	}

	fmt.Printf("Loaded %d existing unique artworks\n\n", len(existing))

	targets := generation.Targets{
		artwork.CategoryPainting:     opts.paintings,
		artwork.CategorySculpture:    opts.sculptures,
		artwork.CategoryArchitecture: opts.architecture,
	}

	counts := artwork.CountByCategory(existing)
	gaps := targets.Gaps(existing)

	totalNeeded := 0
	fmt.Println("Current counts:")
	for _, category := range artwork.Categories() {
		fmt.Printf("  %-14s %d/%d\n", string(category)+":", counts[category], targets[category])
		totalNeeded += gaps[category]
	}
	fmt.Printf("\nTotal needed: %d artworks\n\n", totalNeeded)

	if totalNeeded == 0 {
		fmt.Println("✓ No additional artworks needed!")
		return nil
	}

	delay := time.Duration(opts.delay * float64(time.Second))
	var limiter *rate.Limiter
	if delay > 0 {
		limiter = rate.NewLimiter(rate.Every(delay), 1)
	}

	filler := generation.NewFiller(
		generation.NewGenerator(provider, model),
		opts.batchSize,
		generation.FixedBackoff{Base: delay},
		limiter,
	)

	driver := &generation.Driver{
		Filler:   filler,
		Targets:  targets,
		Provider: providerName,
		Model:    model,
	}

	doc, fillResults := driver.Run(ctx, existing)

	if err := dataset.Write(opts.output, doc); err != nil {
		return fmt.Errorf("failed to write dataset: %w", err)
	}

	summary := generation.NewRunSummary(doc, targets, fillResults)
	summary.PrintSummary()

	runConfig := results.RunConfig{
		RunID:      doc.Metadata.RunID,
		Provider:   providerName,
		Model:      model,
		InputPath:  opts.input,
		OutputPath: opts.output,
		BatchSize:  opts.batchSize,
		Delay:      opts.delay,
	}
	if err := results.SaveToYAML(runConfig, fillResults); err != nil {
		fmt.Printf("Warning: Failed to save run report: %v\n", err)
	}
	summaryPath := fmt.Sprintf("runs/summary-%s.json", doc.Metadata.RunID)
	if err := summary.SaveToJSON(summaryPath); err != nil {
		fmt.Printf("Warning: Failed to save summary: %v\n", err)
	}

	fmt.Printf("\nOutput: %s\n", opts.output)
	fmt.Println("\nNext steps:")
	fmt.Printf("  1. Validate the dataset:  curator dataset validate --input %s\n", opts.output)
	fmt.Printf("  2. Fetch image links:     curator dataset enrich --input %s\n", opts.output)

	return nil
}

// checkCredentials fails fast before any batch is requested. Ollama is a
// local daemon and needs no key.
func checkCredentials(provider string) error {
	switch provider {
	case "gemini":
		key := os.Getenv("GEMINI_API_KEY")
		if key == "" || key == placeholderAPIKey {
			return fmt.Errorf(`GEMINI_API_KEY environment variable not set

Get an API key from https://aistudio.google.com/apikey and either export it
or add it to a .env file in the working directory`)
		}
	case "openai":
		if os.Getenv("OPENAI_API_KEY") == "" {
			return fmt.Errorf(`OPENAI_API_KEY environment variable not set

Export your OpenAI API key or add it to a .env file in the working directory`)
		}
	}
	return nil
}
