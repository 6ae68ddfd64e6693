// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// DocumentsColumns holds the columns for the "documents" table.
	DocumentsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "file_url", Type: field.TypeString},
		{Name: "file_type", Type: field.TypeString},
		{Name: "status", Type: field.TypeString, Default: "UPLOADED"},
		{Name: "doc_type_score", Type: field.TypeFloat64, Nullable: true},
		{Name: "doc_type_detected", Type: field.TypeString, Nullable: true},
		{Name: "doc_type_reason", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "skip_reason", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "project_id", Type: field.TypeUUID},
	}
	// DocumentsTable holds the schema information for the "documents" table.
	DocumentsTable = &schema.Table{
		Name:       "documents",
		Columns:    DocumentsColumns,
		PrimaryKey: []*schema.Column{DocumentsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "documents_projects_documents",
				Columns:    []*schema.Column{DocumentsColumns[10]},
				RefColumns: []*schema.Column{ProjectsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "document_project_id_status",
				Unique:  false,
				Columns: []*schema.Column{DocumentsColumns[10], DocumentsColumns[3]},
			},
		},
	}
	// ExtractionFieldsColumns holds the columns for the "extraction_fields" table.
	ExtractionFieldsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "field_name", Type: field.TypeString},
		{Name: "field_type", Type: field.TypeString},
		{Name: "extracted_value", Type: field.TypeJSON, Nullable: true},
		{Name: "confidence", Type: field.TypeFloat32, Default: 0},
		{Name: "evidence", Type: field.TypeJSON, Nullable: true},
		{Name: "field_status", Type: field.TypeString, Default: "MISSING"},
		{Name: "validation_errors", Type: field.TypeJSON, Nullable: true},
		{Name: "record_id", Type: field.TypeUUID},
	}
	// ExtractionFieldsTable holds the schema information for the "extraction_fields" table.
	ExtractionFieldsTable = &schema.Table{
		Name:       "extraction_fields",
		Columns:    ExtractionFieldsColumns,
		PrimaryKey: []*schema.Column{ExtractionFieldsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "extraction_fields_extraction_records_fields",
				Columns:    []*schema.Column{ExtractionFieldsColumns[8]},
				RefColumns: []*schema.Column{ExtractionRecordsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "extractionfield_record_id_field_name",
				Unique:  true,
				Columns: []*schema.Column{ExtractionFieldsColumns[8], ExtractionFieldsColumns[1]},
			},
		},
	}
	// ExtractionRecordsColumns holds the columns for the "extraction_records" table.
	ExtractionRecordsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "record_status", Type: field.TypeString, Default: "NEEDS_REVIEW"},
		{Name: "failed_rules", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "document_id", Type: field.TypeUUID},
		{Name: "run_id", Type: field.TypeUUID},
	}
	// ExtractionRecordsTable holds the schema information for the "extraction_records" table.
	ExtractionRecordsTable = &schema.Table{
		Name:       "extraction_records",
		Columns:    ExtractionRecordsColumns,
		PrimaryKey: []*schema.Column{ExtractionRecordsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "extraction_records_documents_records",
				Columns:    []*schema.Column{ExtractionRecordsColumns[5]},
				RefColumns: []*schema.Column{DocumentsColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "extraction_records_extraction_runs_records",
				Columns:    []*schema.Column{ExtractionRecordsColumns[6]},
				RefColumns: []*schema.Column{ExtractionRunsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "extractionrecord_run_id_document_id",
				Unique:  false,
				Columns: []*schema.Column{ExtractionRecordsColumns[6], ExtractionRecordsColumns[5]},
			},
		},
	}
	// ProjectsColumns holds the columns for the "projects" table.
	ProjectsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "name", Type: field.TypeString},
		{Name: "requirements", Type: field.TypeJSON, Nullable: true},
		{Name: "api_key_ciphertext", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "workspace_id", Type: field.TypeUUID},
	}
	// ProjectsTable holds the schema information for the "projects" table.
	ProjectsTable = &schema.Table{
		Name:       "projects",
		Columns:    ProjectsColumns,
		PrimaryKey: []*schema.Column{ProjectsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "projects_workspaces_projects",
				Columns:    []*schema.Column{ProjectsColumns[6]},
				RefColumns: []*schema.Column{WorkspacesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
	}
	// ReviewEventsColumns holds the columns for the "review_events" table.
	ReviewEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "action", Type: field.TypeString},
		{Name: "old_value", Type: field.TypeJSON, Nullable: true},
		{Name: "new_value", Type: field.TypeJSON, Nullable: true},
		{Name: "actor", Type: field.TypeString},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "field_id", Type: field.TypeUUID},
	}
	// ReviewEventsTable holds the schema information for the "review_events" table.
	ReviewEventsTable = &schema.Table{
		Name:       "review_events",
		Columns:    ReviewEventsColumns,
		PrimaryKey: []*schema.Column{ReviewEventsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "review_events_extraction_fields_review_events",
				Columns:    []*schema.Column{ReviewEventsColumns[6]},
				RefColumns: []*schema.Column{ExtractionFieldsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "reviewevent_field_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{ReviewEventsColumns[6], ReviewEventsColumns[5]},
			},
		},
	}
	// ExtractionRunsColumns holds the columns for the "extraction_runs" table.
	ExtractionRunsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "status", Type: field.TypeString, Default: "PENDING"},
		{Name: "started_at", Type: field.TypeTime, Nullable: true},
		{Name: "finished_at", Type: field.TypeTime, Nullable: true},
		{Name: "settings_snapshot", Type: field.TypeJSON},
		{Name: "template_snapshot", Type: field.TypeJSON},
		{Name: "cost_estimate", Type: field.TypeFloat64, Default: 0, SchemaType: map[string]string{"postgres": "numeric(12,6)"}},
		{Name: "processed_count", Type: field.TypeInt, Default: 0},
		{Name: "skipped_count", Type: field.TypeInt, Default: 0},
		{Name: "error_message", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "project_id", Type: field.TypeUUID},
	}
	// ExtractionRunsTable holds the schema information for the "extraction_runs" table.
	ExtractionRunsTable = &schema.Table{
		Name:       "extraction_runs",
		Columns:    ExtractionRunsColumns,
		PrimaryKey: []*schema.Column{ExtractionRunsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "extraction_runs_projects_runs",
				Columns:    []*schema.Column{ExtractionRunsColumns[11]},
				RefColumns: []*schema.Column{ProjectsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "run_project_id_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{ExtractionRunsColumns[11], ExtractionRunsColumns[1], ExtractionRunsColumns[10]},
			},
		},
	}
	// RunStepsColumns holds the columns for the "run_steps" table.
	RunStepsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "step_name", Type: field.TypeString},
		{Name: "status", Type: field.TypeString, Default: "PENDING"},
		{Name: "input", Type: field.TypeJSON, Nullable: true},
		{Name: "output", Type: field.TypeJSON, Nullable: true},
		{Name: "error", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "started_at", Type: field.TypeTime, Nullable: true},
		{Name: "finished_at", Type: field.TypeTime, Nullable: true},
		{Name: "document_id", Type: field.TypeUUID},
		{Name: "run_id", Type: field.TypeUUID},
	}
	// RunStepsTable holds the schema information for the "run_steps" table.
	RunStepsTable = &schema.Table{
		Name:       "run_steps",
		Columns:    RunStepsColumns,
		PrimaryKey: []*schema.Column{RunStepsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "run_steps_documents_steps",
				Columns:    []*schema.Column{RunStepsColumns[8]},
				RefColumns: []*schema.Column{DocumentsColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "run_steps_extraction_runs_steps",
				Columns:    []*schema.Column{RunStepsColumns[9]},
				RefColumns: []*schema.Column{ExtractionRunsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "runstep_run_id_document_id_step_name",
				Unique:  false,
				Columns: []*schema.Column{RunStepsColumns[9], RunStepsColumns[8], RunStepsColumns[1]},
			},
		},
	}
	// TemplatesColumns holds the columns for the "templates" table.
	TemplatesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "slug", Type: field.TypeString},
		{Name: "version", Type: field.TypeInt, Default: 1},
		{Name: "config", Type: field.TypeJSON},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// TemplatesTable holds the schema information for the "templates" table.
	TemplatesTable = &schema.Table{
		Name:       "templates",
		Columns:    TemplatesColumns,
		PrimaryKey: []*schema.Column{TemplatesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "template_slug_version",
				Unique:  true,
				Columns: []*schema.Column{TemplatesColumns[1], TemplatesColumns[2]},
			},
		},
	}
	// WorkspacesColumns holds the columns for the "workspaces" table.
	WorkspacesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "name", Type: field.TypeString},
		{Name: "api_key_ciphertext", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// WorkspacesTable holds the schema information for the "workspaces" table.
	WorkspacesTable = &schema.Table{
		Name:       "workspaces",
		Columns:    WorkspacesColumns,
		PrimaryKey: []*schema.Column{WorkspacesColumns[0]},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		DocumentsTable,
		ExtractionFieldsTable,
		ExtractionRecordsTable,
		ProjectsTable,
		ReviewEventsTable,
		ExtractionRunsTable,
		RunStepsTable,
		TemplatesTable,
		WorkspacesTable,
	}
)

func init() {
	DocumentsTable.ForeignKeys[0].RefTable = ProjectsTable
	DocumentsTable.Annotation = &entsql.Annotation{
		Table: "documents",
	}
	ExtractionFieldsTable.ForeignKeys[0].RefTable = ExtractionRecordsTable
	ExtractionFieldsTable.Annotation = &entsql.Annotation{
		Table: "extraction_fields",
	}
	ExtractionRecordsTable.ForeignKeys[0].RefTable = DocumentsTable
	ExtractionRecordsTable.ForeignKeys[1].RefTable = ExtractionRunsTable
	ExtractionRecordsTable.Annotation = &entsql.Annotation{
		Table: "extraction_records",
	}
	ProjectsTable.ForeignKeys[0].RefTable = WorkspacesTable
	ProjectsTable.Annotation = &entsql.Annotation{
		Table: "projects",
	}
	ReviewEventsTable.ForeignKeys[0].RefTable = ExtractionFieldsTable
	ReviewEventsTable.Annotation = &entsql.Annotation{
		Table: "review_events",
	}
	ExtractionRunsTable.ForeignKeys[0].RefTable = ProjectsTable
	ExtractionRunsTable.Annotation = &entsql.Annotation{
		Table: "extraction_runs",
	}
	RunStepsTable.ForeignKeys[0].RefTable = DocumentsTable
	RunStepsTable.ForeignKeys[1].RefTable = ExtractionRunsTable
	RunStepsTable.Annotation = &entsql.Annotation{
		Table: "run_steps",
	}
	TemplatesTable.Annotation = &entsql.Annotation{
		Table: "templates",
	}
	WorkspacesTable.Annotation = &entsql.Annotation{
		Table: "workspaces",
	}
}
