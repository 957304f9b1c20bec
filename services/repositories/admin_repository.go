package repositories

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/lumina-arg/lumina_api/dto"
	"github.com/lumina-arg/lumina_api/shared"
	"gorm.io/gorm"
)

// AdminRepository backs the operator console. Table and column names are
// user-supplied, so every identifier is checked against the live schema (and
// a conservative lexical rule) before it reaches a statement; values always
// travel as bound parameters.
type AdminRepository struct {
	BaseRepository
}

var identifierPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

func NewAdminRepository(db *gorm.DB) *AdminRepository {
	return &AdminRepository{
		BaseRepository: NewBaseRepository(db),
	}
}

func (ds *AdminRepository) tableNames() (map[string]struct{}, error) {
	tables, err := ds.db.Migrator().GetTables()
	if err != nil {
		return nil, err
	}
	set := make(map[string]struct{}, len(tables))
	for _, t := range tables {
		set[t] = struct{}{}
	}
	return set, nil
}

func (ds *AdminRepository) validateTable(table string) error {
	if !identifierPattern.MatchString(table) {
		return shared.NewBadRequestError(nil, "Invalid table name")
	}
	tables, err := ds.tableNames()
	if err != nil {
		return err
	}
	if _, ok := tables[table]; !ok {
		return shared.NewBadRequestError(nil, "Invalid table name")
	}
	return nil
}

func (ds *AdminRepository) columnNames(table string) (map[string]string, error) {
	columnTypes, err := ds.db.Migrator().ColumnTypes(table)
	if err != nil {
		return nil, err
	}
	cols := make(map[string]string, len(columnTypes))
	for _, ct := range columnTypes {
		cols[ct.Name()] = ct.DatabaseTypeName()
	}
	return cols, nil
}

func (ds *AdminRepository) validateColumns(table string, names ...string) error {
	cols, err := ds.columnNames(table)
	if err != nil {
		return err
	}
	for _, name := range names {
		if !identifierPattern.MatchString(name) {
			return shared.NewBadRequestError(nil, "Invalid column name")
		}
		if _, ok := cols[name]; !ok {
			return shared.NewBadRequestError(nil, fmt.Sprintf("Unknown column %q", name))
		}
	}
	return nil
}

func (ds *AdminRepository) ListTables() ([]dto.TableInfo, error) {
	tables, err := ds.db.Migrator().GetTables()
	if err != nil {
		return nil, err
	}
	sort.Strings(tables)

	infos := make([]dto.TableInfo, 0, len(tables))
	for _, table := range tables {
		cols, err := ds.columnNames(table)
		if err != nil {
			return nil, err
		}
		columnInfos := make([]dto.ColumnInfo, 0, len(cols))
		for name, typ := range cols {
			columnInfos = append(columnInfos, dto.ColumnInfo{Name: name, Type: typ})
		}
		sort.Slice(columnInfos, func(i, j int) bool { return columnInfos[i].Name < columnInfos[j].Name })

		var count int64
		if err := ds.db.Table(table).Count(&count).Error; err != nil {
			return nil, err
		}

		infos = append(infos, dto.TableInfo{Name: table, Columns: columnInfos, RowCount: count})
	}
	return infos, nil
}

// BrowseTable returns the newest rows of a validated table.
func (ds *AdminRepository) BrowseTable(table string, limit int) (*dto.TableData, error) {
	if err := ds.validateTable(table); err != nil {
		return nil, err
	}
	if limit <= 0 || limit > 100 {
		limit = 100
	}

	columns, rows, err := ds.scanRows(fmt.Sprintf("SELECT * FROM %q ORDER BY 1 DESC LIMIT %d", table, limit))
	if err != nil {
		return nil, err
	}
	return &dto.TableData{Columns: columns, Rows: rows}, nil
}

// ExecSQL dispatches by prefix: selects are scanned into rows, everything
// else runs as a statement and reports rows affected.
func (ds *AdminRepository) ExecSQL(sql string) (*dto.SQLResult, error) {
	trimmed := strings.TrimSpace(sql)
	if trimmed == "" {
		return nil, shared.NewBadRequestError(nil, "No SQL query provided")
	}

	if strings.HasPrefix(strings.ToLower(trimmed), "select") {
		columns, rows, err := ds.scanRows(trimmed)
		if err != nil {
			return nil, shared.NewBadRequestError(err, "Query failed")
		}
		return &dto.SQLResult{Type: "select", Columns: columns, Rows: rows}, nil
	}

	res := ds.db.Exec(trimmed)
	if res.Error != nil {
		return nil, shared.NewBadRequestError(res.Error, "Statement failed")
	}
	return &dto.SQLResult{Type: "execute", RowsAffected: res.RowsAffected}, nil
}

func (ds *AdminRepository) InsertRow(table string, data map[string]interface{}) (int64, error) {
	if err := ds.validateTable(table); err != nil {
		return 0, err
	}
	if len(data) == 0 {
		return 0, shared.NewBadRequestError(nil, "No data supplied")
	}

	columns := make([]string, 0, len(data))
	for name := range data {
		columns = append(columns, name)
	}
	sort.Strings(columns)
	if err := ds.validateColumns(table, columns...); err != nil {
		return 0, err
	}

	quoted := make([]string, len(columns))
	placeholders := make([]string, len(columns))
	values := make([]interface{}, len(columns))
	for i, name := range columns {
		quoted[i] = fmt.Sprintf("%q", name)
		placeholders[i] = "?"
		values[i] = data[name]
	}

	stmt := fmt.Sprintf("INSERT INTO %q (%s) VALUES (%s)",
		table, strings.Join(quoted, ", "), strings.Join(placeholders, ", "))
	res := ds.db.Exec(stmt, values...)
	return res.RowsAffected, res.Error
}

func (ds *AdminRepository) UpdateRow(table, idColumn string, id interface{}, data map[string]interface{}) (int64, error) {
	if err := ds.validateTable(table); err != nil {
		return 0, err
	}
	if len(data) == 0 {
		return 0, shared.NewBadRequestError(nil, "No data supplied")
	}

	columns := make([]string, 0, len(data))
	for name := range data {
		columns = append(columns, name)
	}
	sort.Strings(columns)
	if err := ds.validateColumns(table, append(columns, idColumn)...); err != nil {
		return 0, err
	}

	assignments := make([]string, len(columns))
	values := make([]interface{}, 0, len(columns)+1)
	for i, name := range columns {
		assignments[i] = fmt.Sprintf("%q = ?", name)
		values = append(values, data[name])
	}
	values = append(values, id)

	stmt := fmt.Sprintf("UPDATE %q SET %s WHERE %q = ?",
		table, strings.Join(assignments, ", "), idColumn)
	res := ds.db.Exec(stmt, values...)
	return res.RowsAffected, res.Error
}

func (ds *AdminRepository) DeleteRow(table, idColumn string, id interface{}) (int64, error) {
	if err := ds.validateTable(table); err != nil {
		return 0, err
	}
	if err := ds.validateColumns(table, idColumn); err != nil {
		return 0, err
	}

	stmt := fmt.Sprintf("DELETE FROM %q WHERE %q = ?", table, idColumn)
	res := ds.db.Exec(stmt, id)
	return res.RowsAffected, res.Error
}

func (ds *AdminRepository) scanRows(query string, args ...interface{}) ([]string, []map[string]interface{}, error) {
	rows, err := ds.db.Raw(query, args...).Rows()
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, nil, err
	}

	results := []map[string]interface{}{}
	for rows.Next() {
		values := make([]interface{}, len(columns))
		pointers := make([]interface{}, len(columns))
		for i := range values {
			pointers[i] = &values[i]
		}
		if err := rows.Scan(pointers...); err != nil {
			return nil, nil, err
		}

		row := make(map[string]interface{}, len(columns))
		for i, name := range columns {
			if b, ok := values[i].([]byte); ok {
				row[name] = string(b)
			} else {
				row[name] = values[i]
			}
		}
		results = append(results, row)
	}
	return columns, results, rows.Err()
}
