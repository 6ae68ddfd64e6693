package orchestrator

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/veridoc-ai/veridoc/constants"
	"github.com/veridoc-ai/veridoc/internal/chunker"
	"github.com/veridoc-ai/veridoc/internal/classifier"
	"github.com/veridoc-ai/veridoc/internal/common"
	"github.com/veridoc-ai/veridoc/internal/credentials"
	"github.com/veridoc-ai/veridoc/internal/entity"
	"github.com/veridoc-ai/veridoc/internal/llm"
	"github.com/veridoc-ai/veridoc/internal/parser"
	"github.com/veridoc-ai/veridoc/internal/repository"
	"github.com/veridoc-ai/veridoc/internal/storage"
	"github.com/veridoc-ai/veridoc/internal/validator"
)

// ExtractorFactory builds an extraction backend for a run. Injected so tests
// can substitute a stub without a provider registry entry.
type ExtractorFactory func(provider string, cfg llm.ProviderConfig, log *slog.Logger) (llm.Extractor, error)

// Deps wires the orchestrator's collaborators.
type Deps struct {
	Runs      repository.RunRepository
	Steps     repository.RunStepRepository
	Documents repository.DocumentRepository
	Records   repository.RecordRepository
	Projects  repository.ProjectRepository
	Store     storage.Store
	Creds     *credentials.Resolver
	Parser    *parser.Parser
	Validator *validator.Validator
	// NewExtractor defaults to llm.NewExtractor.
	NewExtractor ExtractorFactory
	LLM          common.LLMConfig
	Log          *slog.Logger
	// DocsProcessed and DocsSkipped count per-document outcomes across all
	// runs. Optional; the daemon wires them from the worker metrics.
	DocsProcessed prometheus.Counter
	DocsSkipped   prometheus.Counter
}

// Orchestrator executes one run: load run/project/template, then for each
// document run the six-stage pipeline with step-level persistence. It holds
// no per-run mutable state, so one instance may serve concurrent runs.
type Orchestrator struct {
	deps Deps
	log  *slog.Logger
}

func New(deps Deps) *Orchestrator {
	if deps.Log == nil {
		deps.Log = slog.Default()
	}
	if deps.NewExtractor == nil {
		deps.NewExtractor = llm.NewExtractor
	}
	return &Orchestrator{deps: deps, log: deps.Log}
}

// Execute drives a run to a terminal status. Per-document failures are
// contained; only setup and credential failures fail the run as a whole.
func (o *Orchestrator) Execute(ctx context.Context, runID uuid.UUID) error {
	log := o.log.With("run_id", runID)
	ctx = common.WithRunID(ctx, runID.String())

	run, err := o.deps.Runs.GetByID(ctx, runID)
	if err != nil {
		return fmt.Errorf("%w: load run %s: %v", common.ErrRunSetup, runID, err)
	}
	if run.Status == constants.RunStatusCompleted || run.Status == constants.RunStatusFailed {
		log.Info("run.execute.noop", "status", run.Status)
		return nil
	}
	if err := o.deps.Runs.MarkProcessing(ctx, runID); err != nil {
		return fmt.Errorf("%w: mark processing: %v", common.ErrRunSetup, err)
	}
	log.Info("run.execute.start", "project_id", run.ProjectID)

	env, err := o.setup(ctx, run)
	if err != nil {
		return o.failRun(ctx, log, runID, err)
	}

	docs, err := o.deps.Documents.ListForProject(ctx, run.ProjectID)
	if err != nil {
		return o.failRun(ctx, log, runID, fmt.Errorf("%w: list documents: %v", common.ErrRunSetup, err))
	}

	// Resume cost accounting from what prior invocations already spent so
	// the guardrail holds across re-enqueues.
	totalCost := run.CostEstimate
	costLimit := run.SettingsSnapshot.MaxCostPerRun
	for i, doc := range docs {
		resolved, rerr := o.alreadyResolved(ctx, runID, doc)
		if rerr != nil {
			log.Error("run.replay_lookup.failed", "document_id", doc.ID, "err", rerr)
		}
		if resolved {
			log.Info("document.pipeline.resolved", "document_id", doc.ID)
			continue
		}
		if costLimit > 0 && totalCost >= costLimit {
			o.skipRemainingForCost(ctx, log, runID, docs[i:], totalCost, costLimit)
			break
		}
		outcome := o.processDocument(ctx, run, env, doc)
		totalCost += outcome.cost
		if outcome.cost > 0 {
			if err := o.deps.Runs.AddCost(ctx, runID, outcome.cost); err != nil {
				log.Error("run.cost.persist_failed", "err", err)
			}
		}
		switch {
		case outcome.err != nil && common.IsFatalForRun(outcome.err):
			return o.failRun(ctx, log, runID, outcome.err)
		case outcome.err != nil:
			log.Error("run.document.failed", "document_id", doc.ID, "err", outcome.err)
			o.skipDocument(ctx, log, runID, doc.ID, constants.SkipReasonStageFailed)
		case outcome.skipped:
			if err := o.deps.Runs.IncrementSkipped(ctx, runID); err != nil {
				log.Error("run.counter.persist_failed", "err", err)
			}
			o.observeDocument(false)
		default:
			if err := o.deps.Runs.IncrementProcessed(ctx, runID); err != nil {
				log.Error("run.counter.persist_failed", "err", err)
			}
			o.observeDocument(true)
		}
	}

	if err := o.deps.Runs.Finalize(ctx, runID, constants.RunStatusCompleted, nil); err != nil {
		return fmt.Errorf("finalize run %s: %w", runID, err)
	}
	log.Info("run.execute.done", "documents", len(docs), "cost", totalCost)
	return nil
}

// runEnv is the per-run immutable context assembled during setup.
type runEnv struct {
	template  *entity.Template
	settings  entity.RunSettings
	schema    *llm.Schema
	extractor llm.Extractor
	keySource string
}

func (o *Orchestrator) setup(ctx context.Context, run *entity.Run) (*runEnv, error) {
	project, err := o.deps.Projects.GetByID(ctx, run.ProjectID)
	if err != nil {
		return nil, fmt.Errorf("%w: load project %s: %v", common.ErrRunSetup, run.ProjectID, err)
	}
	workspace, err := o.deps.Projects.GetWorkspace(ctx, project.WorkspaceID)
	if err != nil {
		return nil, fmt.Errorf("%w: load workspace %s: %v", common.ErrRunSetup, project.WorkspaceID, err)
	}
	tpl := run.TemplateSnapshot
	if tpl.Slug == "" {
		return nil, fmt.Errorf("%w: run %s has no template snapshot", common.ErrRunSetup, run.ID)
	}
	// The schema is fixed by the template snapshot; compile it once instead
	// of per extraction call.
	schema, err := llm.CompileSchema(llm.BuildExtractionJSONSchema(tpl.Fields))
	if err != nil {
		return nil, fmt.Errorf("%w: compile extraction schema: %v", common.ErrRunSetup, err)
	}

	// Credentials resolve once per run, before any extraction call.
	key, source, err := o.deps.Creds.Resolve(project, workspace)
	if err != nil {
		return nil, err
	}
	extractor, err := o.deps.NewExtractor(run.SettingsSnapshot.Provider, llm.ProviderConfig{
		APIKey:      key,
		BaseURL:     o.deps.LLM.BaseURL,
		TimeoutSecs: int(o.deps.LLM.Timeout / time.Second),
	}, o.log)
	if err != nil {
		return nil, fmt.Errorf("%w: provider %q: %v", common.ErrRunSetup, run.SettingsSnapshot.Provider, err)
	}
	o.log.Info("run.credentials.resolved", "run_id", run.ID, "source", source)
	return &runEnv{
		template:  &tpl,
		settings:  run.SettingsSnapshot,
		schema:    schema,
		extractor: extractor,
		keySource: source,
	}, nil
}

func (o *Orchestrator) failRun(ctx context.Context, log *slog.Logger, runID uuid.UUID, cause error) error {
	msg := cause.Error()
	log.Error("run.execute.failed", "err", cause)
	if err := o.deps.Runs.Finalize(ctx, runID, constants.RunStatusFailed, &msg); err != nil {
		log.Error("run.finalize.persist_failed", "err", err)
	}
	return cause
}

func (o *Orchestrator) skipDocument(ctx context.Context, log *slog.Logger, runID, docID uuid.UUID, reason string) {
	if err := o.deps.Documents.SetSkipReason(ctx, docID, reason); err != nil {
		log.Error("document.skip.persist_failed", "document_id", docID, "err", err)
	}
	if err := o.deps.Runs.IncrementSkipped(ctx, runID); err != nil {
		log.Error("run.counter.persist_failed", "err", err)
	}
	o.observeDocument(false)
}

func (o *Orchestrator) observeDocument(processed bool) {
	counter := o.deps.DocsSkipped
	if processed {
		counter = o.deps.DocsProcessed
	}
	if counter != nil {
		counter.Inc()
	}
}

// alreadyResolved reports whether a prior invocation of this run already
// accounted for the document: its persist_results step completed, or it was
// classified and carries a skip reason. Resolved documents contribute no
// counter or cost mutations on re-invocation.
func (o *Orchestrator) alreadyResolved(ctx context.Context, runID uuid.UUID, doc *entity.Document) (bool, error) {
	persisted, err := o.deps.Steps.FindCompleted(ctx, runID, doc.ID, constants.StepPersistResults)
	if err != nil {
		return false, err
	}
	if persisted != nil {
		return true, nil
	}
	if doc.SkipReason == nil {
		return false, nil
	}
	classified, err := o.deps.Steps.FindCompleted(ctx, runID, doc.ID, constants.StepClassifyDocument)
	if err != nil {
		return false, err
	}
	return classified != nil, nil
}

// skipRemainingForCost marks every not-yet-attempted document as skipped once
// the accumulated cost reaches the run's limit. Distinct from a
// classification skip via the persisted reason. Documents already marked in
// a prior invocation are not counted twice.
func (o *Orchestrator) skipRemainingForCost(ctx context.Context, log *slog.Logger, runID uuid.UUID, remaining []*entity.Document, cost, limit float64) {
	log.Warn("run.cost_limit.reached", "cost", cost, "limit", limit, "remaining", len(remaining))
	for _, doc := range remaining {
		if doc.SkipReason != nil && *doc.SkipReason == constants.SkipReasonCostLimit {
			continue
		}
		o.skipDocument(ctx, log, runID, doc.ID, constants.SkipReasonCostLimit)
	}
}

// docOutcome summarizes one document's trip through the pipeline.
type docOutcome struct {
	skipped bool
	cost    float64
	err     error
}

func (o *Orchestrator) processDocument(ctx context.Context, run *entity.Run, env *runEnv, doc *entity.Document) (out docOutcome) {
	ctx = common.WithDocumentID(ctx, doc.ID.String())
	log := o.log.With("run_id", run.ID, "document_id", doc.ID)
	defer func() {
		if r := recover(); r != nil {
			out = docOutcome{cost: out.cost, err: fmt.Errorf("document pipeline panic: %v", r)}
		}
	}()
	log.Info("document.pipeline.start", "file_type", doc.FileType)

	parsed, err := execStage(ctx, o, run.ID, doc.ID, constants.StepParseDocument,
		map[string]any{"file_url": doc.FileURL, "file_type": doc.FileType},
		func(ctx context.Context) (*parser.ParsedDocument, error) {
			data, err := o.deps.Store.Fetch(ctx, doc.FileURL)
			if err != nil {
				return nil, fmt.Errorf("fetch document bytes: %w", err)
			}
			return o.deps.Parser.ParseFormat(data, doc.FileType)
		})
	if err != nil {
		return docOutcome{err: err}
	}

	class, err := execStage(ctx, o, run.ID, doc.ID, constants.StepClassifyDocument,
		map[string]any{"template_slug": env.template.Slug},
		func(ctx context.Context) (classifier.Result, error) {
			res := classifier.Classify(parsed.Text, env.template.Slug, env.template.DetectionKeywords)
			if err := o.deps.Documents.SaveClassification(ctx, doc.ID, res.Score, res.DetectedType, res.Reason); err != nil {
				return classifier.Result{}, fmt.Errorf("persist classification: %w", err)
			}
			return res, nil
		})
	if err != nil {
		return docOutcome{err: err}
	}
	if class.Score < classifier.ConfidentThreshold {
		ambiguous := class.Score >= classifier.AmbiguousThreshold
		log.Info("document.pipeline.skipped",
			"score", class.Score, "detected", class.DetectedType, "ambiguous", ambiguous)
		if err := o.deps.Documents.SetSkipReason(ctx, doc.ID, constants.SkipReasonWrongDocType); err != nil {
			return docOutcome{err: fmt.Errorf("persist skip reason: %w", err)}
		}
		return docOutcome{skipped: true}
	}

	chunks, err := execStage(ctx, o, run.ID, doc.ID, constants.StepChunkDocument,
		map[string]any{"method": env.settings.ChunkingMethod, "chunk_size": env.settings.ChunkSize, "overlap": env.settings.ChunkOverlap},
		func(ctx context.Context) ([]chunker.Chunk, error) {
			return chunker.ChunkDocument(parsed, env.settings.ChunkingMethod, chunker.Config{
				ChunkSize: env.settings.ChunkSize,
				Overlap:   env.settings.ChunkOverlap,
			})
		})
	if err != nil {
		return docOutcome{err: err}
	}

	extraction, err := execStage(ctx, o, run.ID, doc.ID, constants.StepLLMExtraction,
		map[string]any{"model": env.settings.Model, "chunks": len(chunks)},
		func(ctx context.Context) (llm.ExtractResult, error) {
			texts := make([]string, len(chunks))
			for i, c := range chunks {
				texts[i] = c.Text
			}
			return env.extractor.Extract(ctx, llm.ExtractRequest{
				Prompt:      llm.BuildPrompt(env.template.ExtractionPrompt, strings.Join(texts, "\n\n")),
				Schema:      env.schema,
				Model:       env.settings.Model,
				Temperature: env.settings.Temperature,
				MaxTokens:   env.settings.MaxTokens,
			})
		})
	if err != nil {
		return docOutcome{err: err}
	}
	out.cost = extraction.Cost

	validated, err := execStage(ctx, o, run.ID, doc.ID, constants.StepValidation,
		map[string]any{"fields": len(env.template.Fields)},
		func(ctx context.Context) ([]validatedField, error) {
			return o.validateFields(env, extraction), nil
		})
	if err != nil {
		return docOutcome{cost: out.cost, err: err}
	}

	_, err = execStage(ctx, o, run.ID, doc.ID, constants.StepPersistResults,
		nil,
		func(ctx context.Context) (persistOutput, error) {
			return o.persistResults(ctx, run.ID, doc.ID, env, extraction, validated)
		})
	if err != nil {
		return docOutcome{cost: out.cost, err: err}
	}

	log.Info("document.pipeline.done", "cost", extraction.Cost)
	return docOutcome{cost: out.cost}
}
