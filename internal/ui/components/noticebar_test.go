package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestNoticeBarVisibility(t *testing.T) {
	bar := NewNoticeBar()

	if bar.IsVisible() {
		t.Error("Bar without a notice should not be visible")
	}

	bar.SetNotice(RestartNotice())
	if !bar.IsVisible() {
		t.Error("Bar should be visible after SetNotice")
	}

	bar.Hide()
	if bar.IsVisible() {
		t.Error("Bar should not be visible after Hide")
	}

	bar.Show()
	bar.Clear()
	if bar.IsVisible() {
		t.Error("Bar should not be visible after Clear")
	}
	if bar.View() != "" {
		t.Error("Cleared bar should render nothing")
	}
}

func TestRestartNotice(t *testing.T) {
	notice := RestartNotice()

	if notice.Kind != NoticeRestart {
		t.Errorf("Expected NoticeRestart kind, got %v", notice.Kind)
	}
	if !strings.Contains(notice.Message, "Restart the file manager") {
		t.Errorf("Unexpected message: %q", notice.Message)
	}
	if len(notice.Actions) != 2 || notice.Actions[0].Key != "x" {
		t.Error("Expected the 'don't show again' key as the first action")
	}
}

func TestNoticeBarView(t *testing.T) {
	bar := NewNoticeBar()
	bar.SetNotice(RestartNotice())
	bar.SetWidth(120)

	view := bar.View()
	if !strings.Contains(view, "Restart the file manager") {
		t.Error("View should contain the notice message")
	}
	if !strings.Contains(view, "don't show again") {
		t.Error("View should contain the action label")
	}
}

func TestNoticeBarHeight(t *testing.T) {
	bar := NewNoticeBar()
	if bar.Height() != 0 {
		t.Errorf("Hidden bar should have height 0, got %d", bar.Height())
	}

	bar.SetNotice(RestartNotice())
	bar.SetWidth(120)
	if bar.Height() != 3 {
		t.Errorf("Bordered bar should have height 3, got %d", bar.Height())
	}

	// Narrower bars wrap the message inside the border
	bar.SetWidth(70)
	if bar.Height() <= 3 {
		t.Errorf("Wrapped bar should be taller than 3 rows, got %d", bar.Height())
	}
	if got := lipgloss.Height(bar.View()); got != bar.Height() {
		t.Errorf("Height %d should match the render, got %d rows", bar.Height(), got)
	}

	bar.SetWidth(40)
	if bar.Height() != 1 {
		t.Errorf("Compact bar should have height 1, got %d", bar.Height())
	}
}

func TestNoticeBarCompactTruncates(t *testing.T) {
	bar := NewNoticeBar()
	bar.SetNotice(RestartNotice())
	bar.SetWidth(40)

	view := bar.View()
	if strings.Contains(view, "take effect") {
		t.Error("Compact view should truncate the long message")
	}
	if !strings.Contains(view, "...") {
		t.Error("Compact view should mark the truncation")
	}
}
