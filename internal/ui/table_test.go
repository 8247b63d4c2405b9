package ui

import (
	"testing"

	"github.com/charmbracelet/bubbles/table"
	"github.com/stretchr/testify/assert"
)

func TestNewTable(t *testing.T) {
	columns := []TableColumn{
		{Title: "PID", Width: 8},
		{Title: "NAME", Width: 20},
	}
	rows := []table.Row{
		{"1", "init"},
		{"42", "worker"},
	}

	tbl := NewTable(columns, rows, 5, true)

	view := tbl.View()
	assert.Contains(t, view, "PID")
	assert.Contains(t, view, "NAME")
	assert.Contains(t, view, "worker")
	assert.True(t, tbl.Focused())
	assert.Equal(t, 5, tbl.Height())
	assert.Equal(t, []string{"1", "init"}, []string(tbl.SelectedRow()))
}

func TestNewTable_MinimumHeight(t *testing.T) {
	tbl := NewTable([]TableColumn{{Title: "PID", Width: 5}}, nil, 0, false)
	assert.Equal(t, 1, tbl.Height())
}

func TestRenderSimpleTable(t *testing.T) {
	columns := []TableColumn{{Title: "PID", Width: 6}, {Title: "CPU %", Width: 8}}

	out := RenderSimpleTable(columns, [][]string{{"7", "12.50"}})
	assert.Contains(t, out, "CPU %")
	assert.Contains(t, out, "12.50")

	assert.Empty(t, RenderSimpleTable(columns, nil))
}
