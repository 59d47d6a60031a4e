// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ProcessedCallbacksColumns holds the columns for the "processed_callbacks" table.
	ProcessedCallbacksColumns = []*schema.Column{
		{Name: "prediction_id", Type: field.TypeString, Unique: true},
		{Name: "job_id", Type: field.TypeString, Nullable: true},
		{Name: "outcome", Type: field.TypeString},
		{Name: "received_at", Type: field.TypeTime},
	}
	// ProcessedCallbacksTable holds the schema information for the "processed_callbacks" table.
	ProcessedCallbacksTable = &schema.Table{
		Name:       "processed_callbacks",
		Columns:    ProcessedCallbacksColumns,
		PrimaryKey: []*schema.Column{ProcessedCallbacksColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "processedcallback_job_id",
				Unique:  false,
				Columns: []*schema.Column{ProcessedCallbacksColumns[1]},
			},
			{
				Name:    "processedcallback_received_at",
				Unique:  false,
				Columns: []*schema.Column{ProcessedCallbacksColumns[3]},
			},
		},
	}
	// TilesColumns holds the columns for the "tiles" table.
	TilesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "tile_index", Type: field.TypeInt},
		{Name: "x", Type: field.TypeInt},
		{Name: "y", Type: field.TypeInt},
		{Name: "width", Type: field.TypeInt},
		{Name: "height", Type: field.TypeInt},
		{Name: "input_url", Type: field.TypeString},
		{Name: "stages", Type: field.TypeJSON},
		{Name: "current_prediction_id", Type: field.TypeString, Nullable: true},
		{Name: "status", Type: field.TypeString, Default: "pending"},
		{Name: "parent_tile_index", Type: field.TypeInt, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "job_id", Type: field.TypeString},
	}
	// TilesTable holds the schema information for the "tiles" table.
	TilesTable = &schema.Table{
		Name:       "tiles",
		Columns:    TilesColumns,
		PrimaryKey: []*schema.Column{TilesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "tiles_upscale_jobs_tiles",
				Columns:    []*schema.Column{TilesColumns[14]},
				RefColumns: []*schema.Column{UpscaleJobsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "tile_job_id_tile_index",
				Unique:  true,
				Columns: []*schema.Column{TilesColumns[14], TilesColumns[1]},
			},
			{
				Name:    "tile_current_prediction_id",
				Unique:  false,
				Columns: []*schema.Column{TilesColumns[8]},
			},
			{
				Name:    "tile_job_id_status",
				Unique:  false,
				Columns: []*schema.Column{TilesColumns[14], TilesColumns[9]},
			},
		},
	}
	// UpscaleJobsColumns holds the columns for the "upscale_jobs" table.
	UpscaleJobsColumns = []*schema.Column{
		{Name: "job_id", Type: field.TypeString, Unique: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "input_url", Type: field.TypeString},
		{Name: "original_width", Type: field.TypeInt},
		{Name: "original_height", Type: field.TypeInt},
		{Name: "category", Type: field.TypeEnum, Enums: []string{"photo", "art", "text", "anime"}, Default: "photo"},
		{Name: "requested_scale", Type: field.TypeInt},
		{Name: "target_scale", Type: field.TypeInt},
		{Name: "chain", Type: field.TypeJSON},
		{Name: "template", Type: field.TypeJSON, Nullable: true},
		{Name: "grid", Type: field.TypeJSON, Nullable: true},
		{Name: "using_tiling", Type: field.TypeBool, Default: false},
		{Name: "current_stage", Type: field.TypeInt, Default: 1},
		{Name: "total_stages", Type: field.TypeInt},
		{Name: "prediction_id", Type: field.TypeString, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"processing", "tiles_ready", "completed", "failed", "partial_success", "needs_split"}, Default: "processing"},
		{Name: "retry_count", Type: field.TypeInt, Default: 0},
		{Name: "last_callback_at", Type: field.TypeTime, Nullable: true},
		{Name: "current_output_url", Type: field.TypeString, Nullable: true},
		{Name: "final_output_url", Type: field.TypeString, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
	}
	// UpscaleJobsTable holds the schema information for the "upscale_jobs" table.
	UpscaleJobsTable = &schema.Table{
		Name:       "upscale_jobs",
		Columns:    UpscaleJobsColumns,
		PrimaryKey: []*schema.Column{UpscaleJobsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "upscalejob_status",
				Unique:  false,
				Columns: []*schema.Column{UpscaleJobsColumns[15]},
			},
			{
				Name:    "upscalejob_user_id",
				Unique:  false,
				Columns: []*schema.Column{UpscaleJobsColumns[1]},
			},
			{
				Name:    "upscalejob_prediction_id",
				Unique:  false,
				Columns: []*schema.Column{UpscaleJobsColumns[14]},
			},
			{
				Name:    "upscalejob_status_last_callback_at",
				Unique:  false,
				Columns: []*schema.Column{UpscaleJobsColumns[15], UpscaleJobsColumns[17]},
			},
			{
				Name:    "upscalejob_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{UpscaleJobsColumns[15], UpscaleJobsColumns[21]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ProcessedCallbacksTable,
		TilesTable,
		UpscaleJobsTable,
	}
)

func init() {
	TilesTable.ForeignKeys[0].RefTable = UpscaleJobsTable
}
