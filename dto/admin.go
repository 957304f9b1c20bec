package dto

// ==================== OPERATOR AUTH ====================

type AdminLoginRequest struct {
	Username string `json:"username" validate:"required" example:"operator"`
	Password string `json:"password" validate:"required"`
}

func (r AdminLoginRequest) Validate() error {
	return GetValidator().Struct(r)
}

type AdminLoginResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int64  `json:"expires_in" example:"86400"`
}

// ==================== TABLE BROWSING ====================

type ColumnInfo struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

type TableInfo struct {
	Name     string       `json:"name"`
	Columns  []ColumnInfo `json:"columns"`
	RowCount int64        `json:"row_count"`
}

type TableData struct {
	Columns []string                 `json:"columns"`
	Rows    []map[string]interface{} `json:"rows"`
}

// ==================== SQL CONSOLE ====================

type SQLRequest struct {
	SQL string `json:"sql" validate:"required"`
}

func (r SQLRequest) Validate() error {
	return GetValidator().Struct(r)
}

type SQLResult struct {
	Type         string                   `json:"type"`
	Columns      []string                 `json:"columns,omitempty"`
	Rows         []map[string]interface{} `json:"rows,omitempty"`
	RowsAffected int64                    `json:"rows_affected,omitempty"`
}

// ==================== ROW MUTATIONS ====================

type InsertRowRequest struct {
	Table string                 `json:"table" validate:"required"`
	Data  map[string]interface{} `json:"data" validate:"required"`
}

func (r InsertRowRequest) Validate() error {
	return GetValidator().Struct(r)
}

type UpdateRowRequest struct {
	Table    string                 `json:"table" validate:"required"`
	IDColumn string                 `json:"id_column" validate:"required"`
	ID       interface{}            `json:"id" validate:"required"`
	Data     map[string]interface{} `json:"data" validate:"required"`
}

func (r UpdateRowRequest) Validate() error {
	return GetValidator().Struct(r)
}

type DeleteRowRequest struct {
	Table    string      `json:"table" validate:"required"`
	IDColumn string      `json:"id_column" validate:"required"`
	ID       interface{} `json:"id" validate:"required"`
}

func (r DeleteRowRequest) Validate() error {
	return GetValidator().Struct(r)
}

type MutationResult struct {
	Success      bool  `json:"success"`
	RowsAffected int64 `json:"rows_affected"`
}
