package constants

// RunStatus is the canonical status for rows in extraction_run.
type RunStatus string

// Stable values (store these exact strings in DB).
const (
	RunStatusPending    RunStatus = "PENDING"    // created, not yet picked up
	RunStatusProcessing RunStatus = "PROCESSING" // worker is executing the run
	RunStatusCompleted  RunStatus = "COMPLETED"  // terminal success (possibly with skipped docs)
	RunStatusFailed     RunStatus = "FAILED"     // terminal, run-setup or credential failure
)

// StepStatus tracks one stage attempt for one document.
type StepStatus string

const (
	StepStatusPending   StepStatus = "PENDING"
	StepStatusRunning   StepStatus = "RUNNING"
	StepStatusCompleted StepStatus = "COMPLETED"
	StepStatusFailed    StepStatus = "FAILED"
)

// StepName identifies a pipeline stage in the run_step audit trail.
type StepName string

const (
	StepParseDocument    StepName = "parse_document"
	StepClassifyDocument StepName = "classify_document"
	StepChunkDocument    StepName = "chunk_document"
	StepLLMExtraction    StepName = "llm_extraction"
	StepValidation       StepName = "validation"
	StepPersistResults   StepName = "persist_results"
)

// StepNames lists stages in pipeline order.
var StepNames = []StepName{
	StepParseDocument,
	StepClassifyDocument,
	StepChunkDocument,
	StepLLMExtraction,
	StepValidation,
	StepPersistResults,
}

// FieldStatus is the per-field validation verdict.
type FieldStatus string

const (
	FieldStatusPass           FieldStatus = "PASS"
	FieldStatusFailValidation FieldStatus = "FAIL_VALIDATION"
	FieldStatusNeedsReview    FieldStatus = "NEEDS_REVIEW"
	FieldStatusMissing        FieldStatus = "MISSING"
	FieldStatusSkippedDocType FieldStatus = "SKIPPED_WRONG_DOC_TYPE"
)

// RecordStatus is the aggregate per-document compliance verdict.
type RecordStatus string

const (
	RecordStatusCompliant    RecordStatus = "COMPLIANT"
	RecordStatusNonCompliant RecordStatus = "NON_COMPLIANT"
	RecordStatusNeedsReview  RecordStatus = "NEEDS_REVIEW"
	RecordStatusSkipped      RecordStatus = "SKIPPED"
)

// Skip reasons persisted on a document when the run abandons it.
const (
	SkipReasonWrongDocType = "wrong_document_type"
	SkipReasonCostLimit    = "cost_limit_exceeded"
	SkipReasonStageFailed  = "stage_failed"
)

// ReviewAction is a human review mutation on an extraction field.
type ReviewAction string

const (
	ReviewActionEdit    ReviewAction = "EDIT"
	ReviewActionApprove ReviewAction = "APPROVE"
	ReviewActionReject  ReviewAction = "REJECT"
)
