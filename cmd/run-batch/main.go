package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/veridoc-ai/veridoc/constants"
	"github.com/veridoc-ai/veridoc/internal/common"
	"github.com/veridoc-ai/veridoc/internal/credentials"
	"github.com/veridoc-ai/veridoc/internal/entity"
	"github.com/veridoc-ai/veridoc/internal/export"
	_ "github.com/veridoc-ai/veridoc/internal/llm/openai"
	"github.com/veridoc-ai/veridoc/internal/orchestrator"
	"github.com/veridoc-ai/veridoc/internal/parser"
	"github.com/veridoc-ai/veridoc/internal/repository"
	"github.com/veridoc-ai/veridoc/internal/storage"
	"github.com/veridoc-ai/veridoc/internal/validator"
)

// printError prints an error message to stderr, falling back to stdout if stderr fails
func printError(format string, args ...interface{}) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		fmt.Printf(format, args...)
	}
}

func main() {
	var (
		dir      = flag.String("dir", "", "directory of PDF documents to process (required)")
		tplPath  = flag.String("template", "", "path to a template JSON file (required)")
		out      = flag.String("out", "", "output XLSX file path (defaults next to --dir)")
		method   = flag.String("chunking", string(constants.ChunkFixedTokens), "chunking method: by_pages|fixed_tokens|headings")
		maxCost  = flag.Float64("max-cost", 0, "max cost per run in USD, 0 disables the guardrail")
	)
	flag.Parse()

	if *dir == "" || *tplPath == "" {
		printError("Error: --dir and --template are required\n")
		os.Exit(1)
	}
	if *out == "" {
		*out = filepath.Join(filepath.Dir(*dir), "extractions.xlsx")
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	ctx := context.Background()
	cfg := common.LoadConfig()

	tplData, err := os.ReadFile(*tplPath)
	if err != nil {
		logger.Error("failed to read template file", "error", err)
		os.Exit(1)
	}
	var tpl entity.Template
	if err := json.Unmarshal(tplData, &tpl); err != nil {
		logger.Error("failed to parse template file", "error", err)
		os.Exit(1)
	}
	if tpl.Slug == "" {
		printError("Error: template file has no slug\n")
		os.Exit(1)
	}
	if tpl.Version == 0 {
		tpl.Version = 1
	}

	entc, err := repository.OpenInMemory(ctx, logger)
	if err != nil {
		logger.Error("failed to initialize database", "error", err)
		os.Exit(1)
	}
	defer func() { _ = entc.Close() }()

	// Seed a workspace and project for this one-shot run.
	ws, err := entc.Workspace.Create().SetName("Local Batch").Save(ctx)
	if err != nil {
		logger.Error("failed to create workspace", "error", err)
		os.Exit(1)
	}
	project, err := entc.Project.Create().
		SetWorkspaceID(ws.ID).
		SetName(filepath.Base(*dir)).
		Save(ctx)
	if err != nil {
		logger.Error("failed to create project", "error", err)
		os.Exit(1)
	}

	// Store the template and read it back through the repository, so the run
	// snapshots the same config a persistent deployment would serve.
	if _, err := entc.Template.Create().
		SetSlug(tpl.Slug).
		SetVersion(tpl.Version).
		SetConfig(tplData).
		Save(ctx); err != nil {
		logger.Error("failed to store template", "slug", tpl.Slug, "error", err)
		os.Exit(1)
	}
	stored, err := repository.NewTemplateRepository(entc, logger).GetBySlug(ctx, tpl.Slug)
	if err != nil {
		logger.Error("failed to load template", "slug", tpl.Slug, "error", err)
		os.Exit(1)
	}

	// Register every PDF in the directory as a document.
	entries, err := os.ReadDir(*dir)
	if err != nil {
		logger.Error("failed to read directory", "dir", *dir, "error", err)
		os.Exit(1)
	}
	var count int
	for _, e := range entries {
		if e.IsDir() || !strings.EqualFold(filepath.Ext(e.Name()), ".pdf") {
			continue
		}
		_, err := entc.Document.Create().
			SetProjectID(project.ID).
			SetFileURL(e.Name()).
			SetFileType("PDF").
			Save(ctx)
		if err != nil {
			logger.Error("failed to register document", "file", e.Name(), "error", err)
			os.Exit(1)
		}
		count++
	}
	if count == 0 {
		printError("Error: no PDF files found in %s\n", *dir)
		os.Exit(1)
	}
	logger.Info("documents registered", "count", count, "project_id", project.ID)

	// BYO keys don't apply locally; the resolver falls through to the
	// platform key from the environment.
	var masterKey []byte
	if cfg.Crypto.MasterKeyHex != "" {
		masterKey, err = credentials.ParseMasterKey(cfg.Crypto.MasterKeyHex)
		if err != nil {
			logger.Error("invalid CREDENTIAL_MASTER_KEY", "error", err)
			os.Exit(1)
		}
	}
	resolver := credentials.NewResolver(masterKey, cfg.LLM.APIKey, logger)

	runs := repository.NewRunRepository(entc, logger)
	records := repository.NewRecordRepository(entc, logger)
	documents := repository.NewDocumentRepository(entc, logger)

	orch := orchestrator.New(orchestrator.Deps{
		Runs:      runs,
		Steps:     repository.NewRunStepRepository(entc, logger),
		Documents: documents,
		Records:   records,
		Projects:  repository.NewProjectRepository(entc, logger),
		Store:     storage.NewFSStore(*dir),
		Creds:     resolver,
		Parser:    parser.New(logger),
		Validator: validator.New(logger),
		LLM:       cfg.LLM,
		Log:       logger,
	})

	run, err := runs.Create(ctx, project.ID, entity.RunSettings{
		Provider:       cfg.LLM.Provider,
		Model:          cfg.LLM.Model,
		Temperature:    cfg.LLM.Temperature,
		MaxTokens:      cfg.LLM.MaxTokens,
		ChunkingMethod: constants.ChunkingMethod(*method),
		MaxCostPerRun:  *maxCost,
	}, *stored)
	if err != nil {
		logger.Error("failed to create run", "error", err)
		os.Exit(1)
	}

	if err := orch.Execute(ctx, run.ID); err != nil {
		logger.Error("run failed", "run_id", run.ID, "error", err)
		os.Exit(1)
	}

	final, err := runs.GetByID(ctx, run.ID)
	if err != nil {
		logger.Error("failed to reload run", "error", err)
		os.Exit(1)
	}
	logger.Info("run finished",
		"run_id", final.ID,
		"status", final.Status,
		"processed", final.ProcessedCount,
		"skipped", final.SkippedCount,
		"cost", final.CostEstimate,
	)

	exporter := export.NewService(records, documents, logger)
	xlsx, err := exporter.ExportRunXLSX(ctx, run.ID)
	if err != nil {
		logger.Error("export failed", "error", err)
		os.Exit(1)
	}
	if err := os.WriteFile(*out, xlsx, 0o644); err != nil {
		logger.Error("failed to write output file", "path", *out, "error", err)
		os.Exit(1)
	}
	fmt.Printf("Wrote %s (%d processed, %d skipped, $%.4f)\n",
		*out, final.ProcessedCount, final.SkippedCount, final.CostEstimate)
}
