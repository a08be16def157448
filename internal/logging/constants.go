package logging

// Standardized field names for structured logging.
const (
	FieldOperation   = "operation"
	FieldStatus      = "status"
	FieldReason      = "reason"
	FieldError       = "error"
	FieldCount       = "count"
	FieldCategory    = "category"
	FieldKeyword     = "keyword"
	FieldDescription = "description"
	FieldEntityType  = "entity_type"
	FieldRule        = "rule"
	FieldRole        = "role"
	FieldSection     = "section"
	FieldAction      = "action"
	FieldCapability  = "capability"
	FieldFile        = "file_path"
	FieldInputFile   = "input_file"
	FieldOutputFile  = "output_file"
	FieldRunID       = "run_id"
	FieldYear        = "year"
	FieldRow         = "row"
)
