package domain

import (
	"fmt"
	"strings"
)

// Role is the semantic slot a spreadsheet column fills.
type Role string

const (
	RoleEng   Role = "Eng"
	RoleEngT  Role = "engT"
	RoleEngEx Role = "EngEx"
	RoleRus   Role = "Rus"
	RoleRusEx Role = "RusEx"
)

func (r Role) String() string { return string(r) }

func (r Role) IsValid() bool {
	switch r {
	case RoleEng, RoleEngT, RoleEngEx, RoleRus, RoleRusEx:
		return true
	}
	return false
}

// AllRoles returns the roles in the order of the assembled table.
func AllRoles() []Role {
	return []Role{RoleEng, RoleEngT, RoleEngEx, RoleRus, RoleRusEx}
}

// ColumnRef is either a column index or absent. The zero value is absent.
type ColumnRef struct {
	index   int
	present bool
}

// ColumnAt returns a reference to column i.
func ColumnAt(i int) ColumnRef { return ColumnRef{index: i, present: true} }

// Absent returns the absent reference.
func Absent() ColumnRef { return ColumnRef{} }

// Index returns the referenced column and whether it is present.
func (c ColumnRef) Index() (int, bool) { return c.index, c.present }

// IsPresent reports whether the reference points at a column.
func (c ColumnRef) IsPresent() bool { return c.present }

func (c ColumnRef) String() string {
	if !c.present {
		return "absent"
	}
	return fmt.Sprint(c.index)
}

// RoleMapping assigns at most one column to each role.
type RoleMapping struct {
	Eng   ColumnRef
	EngT  ColumnRef
	EngEx ColumnRef
	Rus   ColumnRef
	RusEx ColumnRef
}

// Get returns the column assigned to r.
func (m RoleMapping) Get(r Role) ColumnRef {
	switch r {
	case RoleEng:
		return m.Eng
	case RoleEngT:
		return m.EngT
	case RoleEngEx:
		return m.EngEx
	case RoleRus:
		return m.Rus
	case RoleRusEx:
		return m.RusEx
	}
	return Absent()
}

// Set assigns c to r. Unknown roles are ignored.
func (m *RoleMapping) Set(r Role, c ColumnRef) {
	switch r {
	case RoleEng:
		m.Eng = c
	case RoleEngT:
		m.EngT = c
	case RoleEngEx:
		m.EngEx = c
	case RoleRus:
		m.Rus = c
	case RoleRusEx:
		m.RusEx = c
	}
}

// Assemble reindexes t into the five logical columns Eng, engT, EngEx, Rus,
// RusEx. Absent roles become missing columns; unmapped input columns are dropped.
func (m RoleMapping) Assemble(t Table) Table {
	cols := make([]int, 0, 5)
	for _, r := range AllRoles() {
		idx, ok := m.Get(r).Index()
		if !ok {
			idx = -1
		}
		cols = append(cols, idx)
	}
	return t.SelectColumns(cols)
}

func (m RoleMapping) String() string {
	parts := make([]string, 0, 5)
	for _, r := range AllRoles() {
		parts = append(parts, fmt.Sprintf("%s:%s", r, m.Get(r)))
	}
	return "{" + strings.Join(parts, " ") + "}"
}
