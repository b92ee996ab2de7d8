package persist

import (
	"context"
	"fmt"
	"io"

	"go.uber.org/zap"
)

// AdHocResult is the tabular output of one free-form statement.
type AdHocResult struct {
	Columns []string
	Rows    [][]string
}

// QueryAdHoc runs one arbitrary statement and collects its result set as
// strings. The statement is deliberately unsanitized: this entry point
// exists for the locally authenticated administrator shell and must never be
// linked into a network-reachable call path.
func (db *DB) QueryAdHoc(ctx context.Context, command string) (*AdHocResult, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	rows, err := db.sql.QueryContext(ctx, command)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, err
	}

	result := &AdHocResult{Columns: cols}
	values := make([]any, len(cols))
	ptrs := make([]any, len(cols))
	for i := range values {
		ptrs[i] = &values[i]
	}

	for rows.Next() {
		if err := rows.Scan(ptrs...); err != nil {
			return nil, err
		}
		row := make([]string, len(cols))
		for i, v := range values {
			switch val := v.(type) {
			case nil:
				row[i] = "NULL"
			case []byte:
				row[i] = string(val)
			default:
				row[i] = fmt.Sprint(val)
			}
		}
		result.Rows = append(result.Rows, row)
	}
	return result, rows.Err()
}

// ExecAdHoc runs one arbitrary statement and, unless quiet, renders a column
// header followed by one line per row, numbered from 0, to out. Reports
// success; the statement error is surfaced to the operator on out and to the
// log.
func (db *DB) ExecAdHoc(ctx context.Context, command string, quiet bool, out io.Writer) bool {
	if !quiet {
		fmt.Fprintf(out, "Attempting to execute the following query:\n%s\n", command)
	}

	result, err := db.QueryAdHoc(ctx, command)
	if err != nil {
		if !quiet {
			fmt.Fprintf(out, "could not execute statement: %v\n", err)
		}
		db.log.Warn("ad-hoc statement failed", zap.Error(err))
		return false
	}

	if !quiet {
		result.Render(out)
	}
	return true
}

// Render writes the result as the fixed-width table the admin shell shows.
func (res *AdHocResult) Render(out io.Writer) {
	if len(res.Rows) > 0 {
		fmt.Fprintf(out, "Columns: ")
		for _, c := range res.Columns {
			fmt.Fprintf(out, "%10s | ", c)
		}
		fmt.Fprintln(out)
	}
	for i, row := range res.Rows {
		fmt.Fprintf(out, "Row %3d: ", i)
		for _, v := range row {
			fmt.Fprintf(out, "%10s | ", v)
		}
		fmt.Fprintln(out)
	}
}
