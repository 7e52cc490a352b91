package components

import (
	"fmt"
	"strings"
	"testing"

	"svcmenu/internal/models"
)

func fixtureList(names ...string) (*models.Model, *ServiceList) {
	m := models.NewModel()
	for _, name := range names {
		m.Append(models.ServiceRow{
			Identifier:  strings.ToLower(name),
			DisplayText: name,
			Kind:        models.KindService,
			Checked:     true,
		})
	}
	return m, NewServiceList(models.NewProjection(m))
}

func bigFixtureList(n int) *ServiceList {
	m := models.NewModel()
	for i := 0; i < n; i++ {
		m.Append(models.ServiceRow{
			Identifier:  fmt.Sprintf("entry-%02d", i),
			DisplayText: fmt.Sprintf("Entry %02d", i),
			Kind:        models.KindService,
		})
	}
	return NewServiceList(models.NewProjection(m))
}

func TestNewServiceList(t *testing.T) {
	_, list := fixtureList("Alpha", "Beta")

	if list == nil {
		t.Fatal("NewServiceList should return a ServiceList")
	}
	if len(list.Rows()) != 2 {
		t.Errorf("Expected 2 rows, got %d", len(list.Rows()))
	}
	if list.Cursor != 0 {
		t.Errorf("Expected cursor at 0, got %d", list.Cursor)
	}
	if !list.Focused {
		t.Error("Expected Focused to be true")
	}
	if list.Title == "" {
		t.Error("Expected Title to be set")
	}
}

func TestServiceList_SetFilter(t *testing.T) {
	_, list := fixtureList("Alpha", "Beta", "Gamma")
	list.Cursor = 2

	list.SetFilter("beta")

	if len(list.Rows()) != 1 {
		t.Errorf("Expected 1 row after filter, got %d", len(list.Rows()))
	}
	if list.Cursor >= len(list.Rows()) {
		t.Error("Cursor should be adjusted to valid range")
	}

	list.SetFilter("")
	if len(list.Rows()) != 3 {
		t.Errorf("Expected 3 rows after clearing filter, got %d", len(list.Rows()))
	}
}

func TestServiceList_MoveUp(t *testing.T) {
	_, list := fixtureList("Alpha", "Beta", "Gamma")
	list.Cursor = 2

	list.MoveUp()
	if list.Cursor != 1 {
		t.Errorf("Expected cursor at 1, got %d", list.Cursor)
	}

	list.MoveUp()
	if list.Cursor != 0 {
		t.Errorf("Expected cursor at 0, got %d", list.Cursor)
	}

	// Should not go below 0
	list.MoveUp()
	if list.Cursor != 0 {
		t.Errorf("Expected cursor to stay at 0, got %d", list.Cursor)
	}
}

func TestServiceList_MoveDown(t *testing.T) {
	_, list := fixtureList("Alpha", "Beta", "Gamma")

	list.MoveDown()
	if list.Cursor != 1 {
		t.Errorf("Expected cursor at 1, got %d", list.Cursor)
	}

	list.MoveDown()
	if list.Cursor != 2 {
		t.Errorf("Expected cursor at 2, got %d", list.Cursor)
	}

	// Should not go beyond last item
	list.MoveDown()
	if list.Cursor != 2 {
		t.Errorf("Expected cursor to stay at 2, got %d", list.Cursor)
	}
}

func TestServiceList_Toggle(t *testing.T) {
	model, list := fixtureList("Alpha", "Beta")

	row := list.Toggle()
	if row == nil {
		t.Fatal("Toggle should return the toggled row")
	}
	if row.DisplayText != "Alpha" {
		t.Errorf("Expected Alpha under cursor, got %s", row.DisplayText)
	}
	if model.Find("alpha").Checked {
		t.Error("Alpha should be unchecked after toggle")
	}

	list.Toggle()
	if !model.Find("alpha").Checked {
		t.Error("Alpha should be checked again after second toggle")
	}
}

func TestServiceList_ToggleFiltered(t *testing.T) {
	model, list := fixtureList("Alpha", "Beta", "Gamma")

	list.SetFilter("gamma")
	list.Toggle()

	if model.Find("gamma").Checked {
		t.Error("Gamma should be unchecked after filtered toggle")
	}
	if !model.Find("alpha").Checked {
		t.Error("Alpha should be untouched by filtered toggle")
	}
}

func TestServiceList_Toggle_Empty(t *testing.T) {
	_, list := fixtureList()

	if row := list.Toggle(); row != nil {
		t.Error("Toggle on empty list should return nil")
	}
}

func TestServiceList_Current(t *testing.T) {
	_, list := fixtureList("Alpha", "Beta")

	current := list.Current()
	if current == nil {
		t.Fatal("Current should return a row")
	}
	if current.DisplayText != "Alpha" {
		t.Errorf("Expected Alpha, got %s", current.DisplayText)
	}

	list.Cursor = 1
	current = list.Current()
	if current.DisplayText != "Beta" {
		t.Errorf("Expected Beta, got %s", current.DisplayText)
	}
}

func TestServiceList_Current_Empty(t *testing.T) {
	_, list := fixtureList()

	if current := list.Current(); current != nil {
		t.Error("Current should return nil for empty list")
	}
}

func TestServiceList_View(t *testing.T) {
	_, list := fixtureList("Alpha", "Beta")
	list.Width = 40
	list.Height = 10

	view := list.View()
	if view == "" {
		t.Error("View should return non-empty string")
	}
	if !strings.Contains(view, "Alpha") {
		t.Error("View should contain row names")
	}
}

func TestServiceList_View_WithScrolling(t *testing.T) {
	list := bigFixtureList(20)
	list.Width = 40
	list.Height = 5
	list.Cursor = 15 // Set cursor near end to trigger scrolling

	view := list.View()
	if view == "" {
		t.Error("View should return non-empty string with scrolling")
	}
}

func TestServiceList_View_Empty(t *testing.T) {
	_, list := fixtureList()
	list.Width = 40
	list.Height = 10

	view := list.View()
	if !strings.Contains(view, "No services found") {
		t.Error("Empty list should say no services were found")
	}
}

func TestServiceList_View_FilterWithoutMatch(t *testing.T) {
	_, list := fixtureList("Alpha")
	list.Width = 40
	list.Height = 10

	list.SetFilter("zzz")

	view := list.View()
	if !strings.Contains(view, "No services match") {
		t.Error("Filtered-out list should mention the filter")
	}
}

func TestServiceList_View_Unfocused(t *testing.T) {
	_, list := fixtureList("Alpha")
	list.Width = 40
	list.Height = 10
	list.Focused = false

	view := list.View()
	if view == "" {
		t.Error("View should return non-empty string when unfocused")
	}
}

func TestServiceList_PageUp(t *testing.T) {
	list := bigFixtureList(30)
	list.Height = 13 // pageSize = 10
	list.Cursor = 20

	list.PageUp()
	if list.Cursor != 10 {
		t.Errorf("Expected cursor at 10, got %d", list.Cursor)
	}

	list.PageUp()
	if list.Cursor != 0 {
		t.Errorf("Expected cursor at 0, got %d", list.Cursor)
	}

	// Should not go below 0
	list.PageUp()
	if list.Cursor != 0 {
		t.Errorf("Expected cursor to stay at 0, got %d", list.Cursor)
	}
}

func TestServiceList_PageDown(t *testing.T) {
	list := bigFixtureList(30)
	list.Height = 13 // pageSize = 10
	list.Cursor = 0

	list.PageDown()
	if list.Cursor != 10 {
		t.Errorf("Expected cursor at 10, got %d", list.Cursor)
	}

	list.PageDown()
	if list.Cursor != 20 {
		t.Errorf("Expected cursor at 20, got %d", list.Cursor)
	}

	list.PageDown()
	if list.Cursor != 29 { // Should stop at last item
		t.Errorf("Expected cursor at 29, got %d", list.Cursor)
	}
}

func TestServiceList_GoToFirst(t *testing.T) {
	list := bigFixtureList(10)
	list.Cursor = 7

	list.GoToFirst()
	if list.Cursor != 0 {
		t.Errorf("Expected cursor at 0, got %d", list.Cursor)
	}
}

func TestServiceList_GoToLast(t *testing.T) {
	list := bigFixtureList(10)
	list.Cursor = 2

	list.GoToLast()
	if list.Cursor != 9 {
		t.Errorf("Expected cursor at 9, got %d", list.Cursor)
	}
}

func TestServiceList_GoToLast_EmptyList(t *testing.T) {
	_, list := fixtureList()
	list.GoToLast()
	if list.Cursor != 0 {
		t.Errorf("Expected cursor to stay at 0 for empty list, got %d", list.Cursor)
	}
}

func TestRowGlyph(t *testing.T) {
	tests := []struct {
		kind  models.RowKind
		glyph string
	}{
		{models.KindService, "▸"},
		{models.KindVersionControl, "⎇"},
		{models.KindDelete, "✗"},
		{models.KindCopyMove, "⇄"},
	}

	for _, tt := range tests {
		row := &models.ServiceRow{Kind: tt.kind}
		if got := rowGlyph(row); got != tt.glyph {
			t.Errorf("rowGlyph(%v) = %s, want %s", tt.kind, got, tt.glyph)
		}
	}
}
