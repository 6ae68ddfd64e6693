package orchestrator_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/veridoc-ai/veridoc/constants"
	"github.com/veridoc-ai/veridoc/internal/common"
	"github.com/veridoc-ai/veridoc/internal/credentials"
	"github.com/veridoc-ai/veridoc/internal/entity"
	"github.com/veridoc-ai/veridoc/internal/llm"
	"github.com/veridoc-ai/veridoc/internal/orchestrator"
	"github.com/veridoc-ai/veridoc/internal/parser"
	"github.com/veridoc-ai/veridoc/internal/validator"
)

// In-memory fakes for the repository contracts. Single-goroutine use only;
// the orchestrator processes a run's documents sequentially.

type fakeRuns struct {
	runs map[uuid.UUID]*entity.Run
}

func (f *fakeRuns) Create(ctx context.Context, projectID uuid.UUID, settings entity.RunSettings, tpl entity.Template) (*entity.Run, error) {
	run := &entity.Run{
		ID:               uuid.New(),
		ProjectID:        projectID,
		Status:           constants.RunStatusPending,
		SettingsSnapshot: settings,
		TemplateSnapshot: tpl,
	}
	f.runs[run.ID] = run
	return run, nil
}

func (f *fakeRuns) GetByID(ctx context.Context, id uuid.UUID) (*entity.Run, error) {
	run, ok := f.runs[id]
	if !ok {
		return nil, fmt.Errorf("run %s not found", id)
	}
	copied := *run
	return &copied, nil
}

func (f *fakeRuns) MarkProcessing(ctx context.Context, id uuid.UUID) error {
	f.runs[id].Status = constants.RunStatusProcessing
	return nil
}

func (f *fakeRuns) AddCost(ctx context.Context, id uuid.UUID, delta float64) error {
	f.runs[id].CostEstimate += delta
	return nil
}

func (f *fakeRuns) IncrementProcessed(ctx context.Context, id uuid.UUID) error {
	f.runs[id].ProcessedCount++
	return nil
}

func (f *fakeRuns) IncrementSkipped(ctx context.Context, id uuid.UUID) error {
	f.runs[id].SkippedCount++
	return nil
}

func (f *fakeRuns) Finalize(ctx context.Context, id uuid.UUID, status constants.RunStatus, errorMessage *string) error {
	run := f.runs[id]
	run.Status = status
	run.ErrorMessage = errorMessage
	return nil
}

type fakeSteps struct {
	steps []*entity.RunStep
}

func (f *fakeSteps) Create(ctx context.Context, runID, documentID uuid.UUID, stepName constants.StepName, input []byte) (*entity.RunStep, error) {
	step := &entity.RunStep{
		ID:         uuid.New(),
		RunID:      runID,
		DocumentID: documentID,
		StepName:   stepName,
		Status:     constants.StepStatusPending,
		Input:      input,
	}
	f.steps = append(f.steps, step)
	return step, nil
}

func (f *fakeSteps) byID(id uuid.UUID) *entity.RunStep {
	for _, s := range f.steps {
		if s.ID == id {
			return s
		}
	}
	return nil
}

func (f *fakeSteps) MarkRunning(ctx context.Context, id uuid.UUID) error {
	f.byID(id).Status = constants.StepStatusRunning
	return nil
}

func (f *fakeSteps) MarkCompleted(ctx context.Context, id uuid.UUID, output []byte) error {
	step := f.byID(id)
	step.Status = constants.StepStatusCompleted
	step.Output = output
	return nil
}

func (f *fakeSteps) MarkFailed(ctx context.Context, id uuid.UUID, message string) error {
	step := f.byID(id)
	step.Status = constants.StepStatusFailed
	step.Error = &message
	return nil
}

func (f *fakeSteps) FindCompleted(ctx context.Context, runID, documentID uuid.UUID, stepName constants.StepName) (*entity.RunStep, error) {
	for _, s := range f.steps {
		if s.RunID == runID && s.DocumentID == documentID && s.StepName == stepName && s.Status == constants.StepStatusCompleted {
			return s, nil
		}
	}
	return nil, nil
}

func (f *fakeSteps) find(documentID uuid.UUID, stepName constants.StepName) *entity.RunStep {
	for _, s := range f.steps {
		if s.DocumentID == documentID && s.StepName == stepName {
			return s
		}
	}
	return nil
}

type fakeDocs struct {
	docs []*entity.Document
}

func (f *fakeDocs) GetByID(ctx context.Context, id uuid.UUID) (*entity.Document, error) {
	for _, d := range f.docs {
		if d.ID == id {
			return d, nil
		}
	}
	return nil, fmt.Errorf("document %s not found", id)
}

func (f *fakeDocs) ListForProject(ctx context.Context, projectID uuid.UUID) ([]*entity.Document, error) {
	var out []*entity.Document
	for _, d := range f.docs {
		if d.ProjectID == projectID {
			out = append(out, d)
		}
	}
	return out, nil
}

func (f *fakeDocs) SaveClassification(ctx context.Context, id uuid.UUID, score float64, detectedType, reason string) error {
	doc, err := f.GetByID(ctx, id)
	if err != nil {
		return err
	}
	doc.DocTypeScore = &score
	doc.DocTypeDetected = &detectedType
	doc.DocTypeReason = &reason
	return nil
}

func (f *fakeDocs) SetSkipReason(ctx context.Context, id uuid.UUID, reason string) error {
	doc, err := f.GetByID(ctx, id)
	if err != nil {
		return err
	}
	doc.SkipReason = &reason
	return nil
}

type fakeRecords struct {
	records []*entity.ExtractionRecord
	fields  []*entity.ExtractionField
}

func (f *fakeRecords) CreateRecord(ctx context.Context, runID, documentID uuid.UUID) (*entity.ExtractionRecord, error) {
	rec := &entity.ExtractionRecord{ID: uuid.New(), RunID: runID, DocumentID: documentID}
	f.records = append(f.records, rec)
	return rec, nil
}

func (f *fakeRecords) CreateField(ctx context.Context, field *entity.ExtractionField) (*entity.ExtractionField, error) {
	copied := *field
	copied.ID = uuid.New()
	f.fields = append(f.fields, &copied)
	return &copied, nil
}

func (f *fakeRecords) FinalizeRecord(ctx context.Context, recordID uuid.UUID, status constants.RecordStatus, failedRules []string) error {
	for _, r := range f.records {
		if r.ID == recordID {
			r.RecordStatus = status
			r.FailedRules = failedRules
			return nil
		}
	}
	return fmt.Errorf("record %s not found", recordID)
}

func (f *fakeRecords) FindForRunDocument(ctx context.Context, runID, documentID uuid.UUID) (*entity.ExtractionRecord, error) {
	for _, r := range f.records {
		if r.RunID == runID && r.DocumentID == documentID {
			return r, nil
		}
	}
	return nil, nil
}

func (f *fakeRecords) ListForRun(ctx context.Context, runID uuid.UUID) ([]*entity.ExtractionRecord, error) {
	var out []*entity.ExtractionRecord
	for _, r := range f.records {
		if r.RunID == runID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeRecords) ListFields(ctx context.Context, recordID uuid.UUID) ([]*entity.ExtractionField, error) {
	var out []*entity.ExtractionField
	for _, fl := range f.fields {
		if fl.RecordID == recordID {
			out = append(out, fl)
		}
	}
	return out, nil
}

type fakeProjects struct {
	project   *entity.Project
	workspace *entity.Workspace
}

func (f *fakeProjects) GetByID(ctx context.Context, id uuid.UUID) (*entity.Project, error) {
	if f.project == nil || f.project.ID != id {
		return nil, common.ErrNotFound
	}
	return f.project, nil
}

func (f *fakeProjects) GetWorkspace(ctx context.Context, id uuid.UUID) (*entity.Workspace, error) {
	if f.workspace == nil || f.workspace.ID != id {
		return nil, common.ErrNotFound
	}
	return f.workspace, nil
}

type mapStore struct {
	objects map[string][]byte
}

func (s *mapStore) Fetch(ctx context.Context, locator string) ([]byte, error) {
	data, ok := s.objects[locator]
	if !ok {
		return nil, fmt.Errorf("object %s not found", locator)
	}
	return data, nil
}

func (s *mapStore) Put(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	s.objects[key] = data
	return key, nil
}

// stubExtractor returns a canned result; failOnCall makes the n-th call
// (1-based) fail so stage-failure isolation can be exercised.
type stubExtractor struct {
	result     llm.ExtractResult
	failOnCall int
	calls      int
}

func (s *stubExtractor) Extract(ctx context.Context, req llm.ExtractRequest) (llm.ExtractResult, error) {
	s.calls++
	if s.failOnCall != 0 && s.calls == s.failOnCall {
		return llm.ExtractResult{}, fmt.Errorf("%w: upstream timeout", common.ErrExtractionBackend)
	}
	return s.result, nil
}

type harness struct {
	runs          *fakeRuns
	steps         *fakeSteps
	docs          *fakeDocs
	records       *fakeRecords
	ext           *stubExtractor
	orch          *orchestrator.Orchestrator
	project       *entity.Project
	docsProcessed prometheus.Counter
	docsSkipped   prometheus.Counter
}

func testTemplate() entity.Template {
	return entity.Template{
		Slug:             "coi",
		Version:          1,
		ExtractionPrompt: "Extract the listed fields.\n\n{{DOCUMENT_TEXT}}",
		Fields: []entity.TemplateField{
			{Name: "policy_number", Type: "string", Required: true},
			{Name: "coverage_amount", Type: "number", Required: true},
		},
		DetectionKeywords: &entity.DetectionKeywords{
			DocType: "COI",
			High:    []string{"certificate of insurance", "policy number"},
		},
	}
}

func testSettings() entity.RunSettings {
	return entity.RunSettings{
		Provider: "openai",
		Model:    "gpt-4o-mini",
	}
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	log := slog.New(slog.NewTextHandler(io.Discard, nil))

	workspace := &entity.Workspace{ID: uuid.New(), Name: "acme"}
	project := &entity.Project{ID: uuid.New(), WorkspaceID: workspace.ID, Name: "vendors"}

	h := &harness{
		runs:    &fakeRuns{runs: map[uuid.UUID]*entity.Run{}},
		steps:   &fakeSteps{},
		docs:    &fakeDocs{},
		records: &fakeRecords{},
		project: project,
		ext: &stubExtractor{result: llm.ExtractResult{
			Data: map[string]json.RawMessage{
				"policy_number":   json.RawMessage(`"GL-2026-0042"`),
				"coverage_amount": json.RawMessage(`2000000`),
			},
			Confidence: map[string]float32{"policy_number": 0.96, "coverage_amount": 0.93},
			Cost:       0.05,
		}},
		docsProcessed: prometheus.NewCounter(prometheus.CounterOpts{Name: "test_documents_processed_total"}),
		docsSkipped:   prometheus.NewCounter(prometheus.CounterOpts{Name: "test_documents_skipped_total"}),
	}

	h.orch = orchestrator.New(orchestrator.Deps{
		Runs:      h.runs,
		Steps:     h.steps,
		Documents: h.docs,
		Records:   h.records,
		Projects:  &fakeProjects{project: project, workspace: workspace},
		Store:     &mapStore{objects: map[string][]byte{}},
		Creds:     credentials.NewResolver(nil, "sk-platform-test", log),
		Parser:    parser.New(log),
		Validator: validator.New(log),
		NewExtractor: func(provider string, cfg llm.ProviderConfig, l *slog.Logger) (llm.Extractor, error) {
			return h.ext, nil
		},
		Log:           log,
		DocsProcessed: h.docsProcessed,
		DocsSkipped:   h.docsSkipped,
	})
	return h
}

func (h *harness) addRun(t *testing.T) *entity.Run {
	t.Helper()
	run, err := h.runs.Create(context.Background(), h.project.ID, testSettings(), testTemplate())
	require.NoError(t, err)
	return run
}

// addDocument registers a document whose parse stage is already completed
// for the run, so the pipeline replays the given text instead of fetching
// and parsing real bytes.
func (h *harness) addDocument(t *testing.T, runID uuid.UUID, text string) *entity.Document {
	t.Helper()
	doc := &entity.Document{
		ID:        uuid.New(),
		ProjectID: h.project.ID,
		FileURL:   fmt.Sprintf("docs/%s.pdf", uuid.NewString()[:8]),
		FileType:  "PDF",
	}
	h.docs.docs = append(h.docs.docs, doc)

	parsed := parser.ParsedDocument{
		Text:  text,
		Pages: []parser.Page{{PageNumber: 1, Text: text, CharStart: 0, CharEnd: len(text)}},
	}
	output, err := json.Marshal(parsed)
	require.NoError(t, err)
	h.steps.steps = append(h.steps.steps, &entity.RunStep{
		ID:         uuid.New(),
		RunID:      runID,
		DocumentID: doc.ID,
		StepName:   constants.StepParseDocument,
		Status:     constants.StepStatusCompleted,
		Output:     output,
	})
	return doc
}

const matchingText = "CERTIFICATE OF INSURANCE\nPolicy Number: GL-2026-0042\nEach Occurrence: $2,000,000"

func TestExecuteProcessesMatchingAndSkipsMismatched(t *testing.T) {
	h := newHarness(t)
	run := h.addRun(t)
	good := h.addDocument(t, run.ID, matchingText)
	bad := h.addDocument(t, run.ID, "Invoice #991 for catering services, due on receipt.")

	require.NoError(t, h.orch.Execute(context.Background(), run.ID))

	final := h.runs.runs[run.ID]
	assert.Equal(t, constants.RunStatusCompleted, final.Status)
	assert.Equal(t, 1, final.ProcessedCount)
	assert.Equal(t, 1, final.SkippedCount)
	assert.InDelta(t, 0.05, final.CostEstimate, 1e-9)
	assert.Nil(t, final.ErrorMessage)
	assert.Equal(t, 1.0, testutil.ToFloat64(h.docsProcessed))
	assert.Equal(t, 1.0, testutil.ToFloat64(h.docsSkipped))

	// Only the matching document produced a record, and it is compliant.
	require.Len(t, h.records.records, 1)
	rec := h.records.records[0]
	assert.Equal(t, good.ID, rec.DocumentID)
	assert.Equal(t, constants.RecordStatusCompliant, rec.RecordStatus)
	assert.Empty(t, rec.FailedRules)

	fields, err := h.records.ListFields(context.Background(), rec.ID)
	require.NoError(t, err)
	require.Len(t, fields, 2)
	for _, fl := range fields {
		assert.Equal(t, constants.FieldStatusPass, fl.FieldStatus)
	}

	// The mismatch is recorded on the document, not as a record.
	require.NotNil(t, bad.SkipReason)
	assert.Equal(t, constants.SkipReasonWrongDocType, *bad.SkipReason)
	require.NotNil(t, bad.DocTypeScore)
	assert.Less(t, *bad.DocTypeScore, 0.3)

	// The skipped document's pipeline stopped after classification.
	assert.Nil(t, h.steps.find(bad.ID, constants.StepChunkDocument))
	assert.Nil(t, h.steps.find(bad.ID, constants.StepLLMExtraction))
	for _, name := range []constants.StepName{
		constants.StepClassifyDocument,
		constants.StepChunkDocument,
		constants.StepLLMExtraction,
		constants.StepValidation,
		constants.StepPersistResults,
	} {
		step := h.steps.find(good.ID, name)
		require.NotNil(t, step, "missing step %s", name)
		assert.Equal(t, constants.StepStatusCompleted, step.Status, "step %s", name)
	}
}

func TestExecuteStopsAtCostLimit(t *testing.T) {
	h := newHarness(t)
	settings := testSettings()
	settings.MaxCostPerRun = 0.08
	run, err := h.runs.Create(context.Background(), h.project.ID, settings, testTemplate())
	require.NoError(t, err)

	h.addDocument(t, run.ID, matchingText)
	h.addDocument(t, run.ID, matchingText)
	last := h.addDocument(t, run.ID, matchingText)

	require.NoError(t, h.orch.Execute(context.Background(), run.ID))

	final := h.runs.runs[run.ID]
	assert.Equal(t, constants.RunStatusCompleted, final.Status)
	assert.Equal(t, 2, final.ProcessedCount)
	assert.Equal(t, 1, final.SkippedCount)
	assert.InDelta(t, 0.10, final.CostEstimate, 1e-9)
	assert.Equal(t, 2, h.ext.calls)
	assert.Len(t, h.records.records, 2)

	require.NotNil(t, last.SkipReason)
	assert.Equal(t, constants.SkipReasonCostLimit, *last.SkipReason)
	assert.Nil(t, h.steps.find(last.ID, constants.StepClassifyDocument))
}

func TestExecuteReplaysCompletedStepsOnReinvocation(t *testing.T) {
	h := newHarness(t)
	run := h.addRun(t)
	h.addDocument(t, run.ID, matchingText)
	h.addDocument(t, run.ID, "Invoice #991 for catering services, due on receipt.")

	require.NoError(t, h.orch.Execute(context.Background(), run.ID))
	require.Len(t, h.records.records, 1)
	require.Equal(t, 1, h.ext.calls)
	require.Equal(t, 1, h.runs.runs[run.ID].ProcessedCount)
	require.Equal(t, 1, h.runs.runs[run.ID].SkippedCount)

	// Simulate a worker crash after both documents finished but before the
	// run was finalized: the re-enqueued run must not re-run completed
	// stages, and must not count or charge either document again.
	h.runs.runs[run.ID].Status = constants.RunStatusProcessing
	require.NoError(t, h.orch.Execute(context.Background(), run.ID))

	final := h.runs.runs[run.ID]
	assert.Equal(t, constants.RunStatusCompleted, final.Status)
	assert.Len(t, h.records.records, 1, "replay must not duplicate records")
	assert.Equal(t, 1, h.ext.calls, "replay must not call the extraction backend again")
	assert.Equal(t, 1, final.ProcessedCount, "replay must not double-count processed documents")
	assert.Equal(t, 1, final.SkippedCount, "replay must not double-count skipped documents")
	assert.InDelta(t, 0.05, final.CostEstimate, 1e-9, "replay must not re-add extraction cost")
}

func TestExecuteNoopOnTerminalRun(t *testing.T) {
	h := newHarness(t)
	run := h.addRun(t)
	h.runs.runs[run.ID].Status = constants.RunStatusCompleted
	h.addDocument(t, run.ID, matchingText)

	require.NoError(t, h.orch.Execute(context.Background(), run.ID))

	assert.Equal(t, 0, h.ext.calls)
	assert.Equal(t, 0, h.runs.runs[run.ID].ProcessedCount)
	assert.Empty(t, h.records.records)
}

func TestExecuteFailsRunOnCorruptCredential(t *testing.T) {
	h := newHarness(t)
	ciphertext := "%%%-definitely-not-base64"
	h.project.APIKeyCiphertext = &ciphertext
	run := h.addRun(t)
	h.addDocument(t, run.ID, matchingText)

	err := h.orch.Execute(context.Background(), run.ID)
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrCorruptCredential))

	final := h.runs.runs[run.ID]
	assert.Equal(t, constants.RunStatusFailed, final.Status)
	require.NotNil(t, final.ErrorMessage)
	assert.Equal(t, 0, final.ProcessedCount)
	assert.Equal(t, 0, h.ext.calls)
	assert.Empty(t, h.records.records)
}

func TestExecuteFailsRunWhenNoCredentialsAnywhere(t *testing.T) {
	h := newHarness(t)
	// Rebuild the orchestrator with an empty platform key and no overrides.
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	h.orch = orchestrator.New(orchestrator.Deps{
		Runs:      h.runs,
		Steps:     h.steps,
		Documents: h.docs,
		Records:   h.records,
		Projects:  &fakeProjects{project: h.project, workspace: &entity.Workspace{ID: h.project.WorkspaceID}},
		Store:     &mapStore{objects: map[string][]byte{}},
		Creds:     credentials.NewResolver(nil, "", log),
		Parser:    parser.New(log),
		Validator: validator.New(log),
		NewExtractor: func(provider string, cfg llm.ProviderConfig, l *slog.Logger) (llm.Extractor, error) {
			return h.ext, nil
		},
		Log: log,
	})
	run := h.addRun(t)

	err := h.orch.Execute(context.Background(), run.ID)
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrNoCredentials))
	assert.Equal(t, constants.RunStatusFailed, h.runs.runs[run.ID].Status)
}

func TestExecuteIsolatesStageFailure(t *testing.T) {
	h := newHarness(t)
	h.ext.failOnCall = 1
	run := h.addRun(t)
	failed := h.addDocument(t, run.ID, matchingText)
	ok := h.addDocument(t, run.ID, matchingText)

	require.NoError(t, h.orch.Execute(context.Background(), run.ID))

	final := h.runs.runs[run.ID]
	assert.Equal(t, constants.RunStatusCompleted, final.Status)
	assert.Equal(t, 1, final.ProcessedCount)
	assert.Equal(t, 1, final.SkippedCount)

	require.NotNil(t, failed.SkipReason)
	assert.Equal(t, constants.SkipReasonStageFailed, *failed.SkipReason)
	step := h.steps.find(failed.ID, constants.StepLLMExtraction)
	require.NotNil(t, step)
	assert.Equal(t, constants.StepStatusFailed, step.Status)
	require.NotNil(t, step.Error)

	require.Len(t, h.records.records, 1)
	assert.Equal(t, ok.ID, h.records.records[0].DocumentID)
}
