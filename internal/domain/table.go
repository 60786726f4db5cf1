package domain

import "strings"

// Cell is a single spreadsheet value. A missing cell is distinct from an
// empty string or "0": only Valid cells carry data.
type Cell struct {
	Text  string
	Valid bool
}

// Text returns a present cell holding s.
func Text(s string) Cell { return Cell{Text: s, Valid: true} }

// Missing is the absent cell value.
var Missing = Cell{}

// Table is a rectangular grid of cells addressed by zero-based column
// indices. There is no header row. Rows shorter than the widest row are
// padded with missing cells.
type Table struct {
	rows  [][]Cell
	width int
}

// NewTable builds a table from rows of cells. Rows are copied.
func NewTable(rows [][]Cell) Table {
	t := Table{rows: make([][]Cell, len(rows))}
	for _, r := range rows {
		if len(r) > t.width {
			t.width = len(r)
		}
	}
	for i, r := range rows {
		row := make([]Cell, t.width)
		copy(row, r)
		t.rows[i] = row
	}
	return t
}

// TableFromStrings builds a table treating blank strings as missing cells.
func TableFromStrings(rows [][]string) Table {
	cells := make([][]Cell, len(rows))
	for i, r := range rows {
		cells[i] = make([]Cell, len(r))
		for j, v := range r {
			if strings.TrimSpace(v) == "" {
				continue
			}
			cells[i][j] = Text(v)
		}
	}
	return NewTable(cells)
}

// Rows returns the number of rows.
func (t Table) Rows() int { return len(t.rows) }

// Width returns the number of columns.
func (t Table) Width() int { return t.width }

// Empty reports whether the table has no rows or no columns.
func (t Table) Empty() bool { return len(t.rows) == 0 || t.width == 0 }

// Cell returns the cell at row r, column c, or Missing when out of range.
func (t Table) Cell(r, c int) Cell {
	if r < 0 || r >= len(t.rows) || c < 0 || c >= t.width {
		return Missing
	}
	return t.rows[r][c]
}

// Row returns a copy of row r.
func (t Table) Row(r int) []Cell {
	out := make([]Cell, t.width)
	copy(out, t.rows[r])
	return out
}

// Column returns the cells of column c. ok is false when the column does not exist.
func (t Table) Column(c int) (cells []Cell, ok bool) {
	if c < 0 || c >= t.width {
		return nil, false
	}
	cells = make([]Cell, len(t.rows))
	for i, r := range t.rows {
		cells[i] = r[c]
	}
	return cells, true
}

// ColumnTexts returns the texts of column c. Missing cells yield "".
func (t Table) ColumnTexts(c int) []string {
	cells, ok := t.Column(c)
	if !ok {
		return nil
	}
	out := make([]string, len(cells))
	for i, cell := range cells {
		out[i] = cell.Text
	}
	return out
}

// DropIncomplete returns a table without the rows that have any missing cell.
func (t Table) DropIncomplete() Table {
	out := Table{width: t.width, rows: make([][]Cell, 0, len(t.rows))}
	for _, r := range t.rows {
		complete := true
		for _, c := range r {
			if !c.Valid {
				complete = false
				break
			}
		}
		if complete {
			out.rows = append(out.rows, r)
		}
	}
	return out
}

// DropBlankRows returns a table without the rows where every cell is missing.
func (t Table) DropBlankRows() Table {
	out := Table{width: t.width, rows: make([][]Cell, 0, len(t.rows))}
	for _, r := range t.rows {
		for _, c := range r {
			if c.Valid {
				out.rows = append(out.rows, r)
				break
			}
		}
	}
	return out
}

// SelectColumns returns a table made of the given columns in the given order.
// Indices out of range produce missing cells.
func (t Table) SelectColumns(cols []int) Table {
	out := Table{width: len(cols), rows: make([][]Cell, len(t.rows))}
	for i := range t.rows {
		row := make([]Cell, len(cols))
		for j, c := range cols {
			row[j] = t.Cell(i, c)
		}
		out.rows[i] = row
	}
	return out
}

// Concat appends the rows of other below t. The result is as wide as the wider input.
func (t Table) Concat(other Table) Table {
	rows := make([][]Cell, 0, len(t.rows)+len(other.rows))
	rows = append(rows, t.rows...)
	rows = append(rows, other.rows...)
	return NewTable(rows)
}
