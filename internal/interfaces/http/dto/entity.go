package dto

// ParamResponse describes one declared input of a create operation
type ParamResponse struct {
	Name     string `json:"name"`
	Type     string `json:"type"`
	Required bool   `json:"required"`
}

// KindResponse describes an entity kind and how to create one
type KindResponse struct {
	Name         string          `json:"name"`
	Table        string          `json:"table"`
	IDColumn     string          `json:"id_column"`
	Columns      []string        `json:"columns"`
	InputColumns []string        `json:"input_columns"`
	Params       []ParamResponse `json:"params"`
}

// FormField is one input of a create form, optionally pre-filled
type FormField struct {
	ParamResponse
	Value string `json:"value"`
}

// FormResponse is the input form of one kind
type FormResponse struct {
	Kind   string      `json:"kind"`
	Fields []FormField `json:"fields"`
}

// TableResponse is the generic table view of one kind.
// An empty table keeps its single all-null placeholder row and sets Empty.
type TableResponse struct {
	Kind    string   `json:"kind"`
	Columns []string `json:"columns"`
	Rows    [][]any  `json:"rows"`
	Empty   bool     `json:"empty"`
}

// CreateRequest is the raw string map submitted by the input surface
type CreateRequest map[string]string

// CreatedResponse holds the identity of a created row
type CreatedResponse struct {
	ID int64 `json:"id"`
}

// HealthResponse is returned by the liveness endpoint
type HealthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
}
