package tools

// Tool name prefix for all MCP tools
const ToolPrefix = "calc."

// Tool names
const (
	ToolEvaluate            = ToolPrefix + "evaluate"
	ToolListOperations      = ToolPrefix + "list_operations"
	ToolFormOpen            = ToolPrefix + "form_open"
	ToolFormSetInputs       = ToolPrefix + "form_set_inputs"
	ToolFormSelectOperation = ToolPrefix + "form_select_operation"
	ToolFormCompute         = ToolPrefix + "form_compute"
	ToolFormClear           = ToolPrefix + "form_clear"
	ToolFormClose           = ToolPrefix + "form_close"
)
