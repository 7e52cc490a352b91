package changes

import (
	"strings"
	"testing"

	"svcmenu/internal/catalog"
	"svcmenu/internal/desktop"
	"svcmenu/internal/kconfig"
	"svcmenu/internal/models"
	"svcmenu/internal/registry"
)

func TestComputeIdentical(t *testing.T) {
	d := Compute("servicemenurc", "a\nb\n", "a\nb\n")
	if !d.Identical {
		t.Error("Identical texts should produce an identical diff")
	}
	if d.HasChanges() {
		t.Error("HasChanges should be false for identical texts")
	}
}

func TestComputeAgainstEmpty(t *testing.T) {
	d := Compute("servicemenurc", "", "[Show]\ncompress=true\n")
	if d.Identical {
		t.Error("Adding content should count as a change")
	}
	if d.LinesAdded != 2 {
		t.Errorf("Expected 2 added lines, got %d", d.LinesAdded)
	}
	if d.LinesRemoved != 0 {
		t.Errorf("Expected no removed lines, got %d", d.LinesRemoved)
	}

	d = Compute("servicemenurc", "[Show]\ncompress=true\n", "")
	if d.LinesRemoved != 2 {
		t.Errorf("Expected 2 removed lines, got %d", d.LinesRemoved)
	}
}

func TestComputeChangedValue(t *testing.T) {
	old := "[Show]\ncompress=true\nextract=true\n"
	updated := "[Show]\ncompress=false\nextract=true\n"

	d := Compute("servicemenurc", old, updated)
	if d.Identical {
		t.Fatal("Expected a change")
	}
	if d.LinesAdded != 1 || d.LinesRemoved != 1 {
		t.Errorf("Expected +1 -1, got +%d -%d", d.LinesAdded, d.LinesRemoved)
	}
	if d.Summary() != "+1 -1" {
		t.Errorf("Expected summary '+1 -1', got %q", d.Summary())
	}
}

func TestComputeHunkContext(t *testing.T) {
	var oldLines, newLines []string
	for i := 0; i < 10; i++ {
		line := "line" + string(rune('0'+i))
		oldLines = append(oldLines, line)
		newLines = append(newLines, line)
	}
	newLines[5] = "changed"

	d := Compute("f", strings.Join(oldLines, "\n")+"\n", strings.Join(newLines, "\n")+"\n")

	if len(d.Hunks) != 1 {
		t.Fatalf("Expected 1 hunk, got %d", len(d.Hunks))
	}
	hunk := d.Hunks[0]
	if hunk.StartOld != 3 {
		t.Errorf("Expected the hunk to start at line 3, got %d", hunk.StartOld)
	}

	equals := 0
	for _, l := range hunk.DiffLines {
		if l.Type == DiffEqual {
			equals++
		}
	}
	if equals != 6 {
		t.Errorf("Expected 3 context lines on each side, got %d equal lines", equals)
	}
}

func TestFormatUnified(t *testing.T) {
	d := Compute("globalsrc", "[KDE]\nShowDeleteCommand=false\n", "[KDE]\nShowDeleteCommand=true\n")

	output := FormatUnified(d)
	if !strings.Contains(output, "--- a/globalsrc") {
		t.Error("Output should contain the old file header")
	}
	if !strings.Contains(output, "+++ b/globalsrc") {
		t.Error("Output should contain the new file header")
	}
	if !strings.Contains(output, "-ShowDeleteCommand=false") {
		t.Error("Output should contain the removed line")
	}
	if !strings.Contains(output, "+ShowDeleteCommand=true") {
		t.Error("Output should contain the added line")
	}
	if !strings.Contains(output, " [KDE]") {
		t.Error("Output should contain the context line with a space prefix")
	}
	if !strings.Contains(output, "@@ -1,2 +1,2 @@") {
		t.Errorf("Output should contain the hunk header, got:\n%s", output)
	}
}

func TestHunkSpan(t *testing.T) {
	hunk := DiffHunk{DiffLines: []DiffLine{
		{Type: DiffEqual, Content: "[Show]"},
		{Type: DiffDelete, Content: "compress=true"},
		{Type: DiffInsert, Content: "compress=false"},
		{Type: DiffInsert, Content: "extract=true"},
	}}

	oldN, newN := hunk.Span()
	if oldN != 2 {
		t.Errorf("Expected 2 old-side lines, got %d", oldN)
	}
	if newN != 3 {
		t.Errorf("Expected 3 new-side lines, got %d", newN)
	}
}

func TestSummary(t *testing.T) {
	d := &FileDiff{Identical: true}
	if d.Summary() != "No changes" {
		t.Errorf("Expected 'No changes', got %q", d.Summary())
	}

	d = &FileDiff{LinesAdded: 5}
	if d.Summary() != "+5" {
		t.Errorf("Expected '+5', got %q", d.Summary())
	}

	d = &FileDiff{LinesAdded: 5, LinesRemoved: 3}
	if d.Summary() != "+5 -3" {
		t.Errorf("Expected '+5 -3', got %q", d.Summary())
	}
}

func appliedFixture(t *testing.T) (*kconfig.MemStore, *models.Model) {
	t.Helper()
	reg := registry.NewStatic().
		Add(registry.ServiceMenus, registry.Entry{
			ID: "compress",
			Actions: []desktop.Action{
				{ID: "compressHere", Text: "Compress Here", Exec: "run"},
			},
		}).
		Add(registry.VersionControlPlugins, registry.Entry{ID: "gitplugin", Name: "Git"})

	store := kconfig.NewMemStore()
	model := models.NewModel()
	loaded := catalog.Load(reg, store, model)
	if _, err := catalog.Apply(store, model, &loaded); err != nil {
		t.Fatalf("apply failed: %v", err)
	}
	return store, model
}

func TestPendingEmptyAfterApply(t *testing.T) {
	store, model := appliedFixture(t)

	diffs, err := Pending(store, model)
	if err != nil {
		t.Fatalf("Pending failed: %v", err)
	}
	if len(diffs) != 0 {
		t.Errorf("Expected no pending changes right after apply, got %d", len(diffs))
	}
}

func TestPendingDetectsToggle(t *testing.T) {
	store, model := appliedFixture(t)
	model.SetChecked("compressHere", false)

	diffs, err := Pending(store, model)
	if err != nil {
		t.Fatalf("Pending failed: %v", err)
	}
	if len(diffs) != 1 {
		t.Fatalf("Expected 1 changed file, got %d", len(diffs))
	}
	d := diffs[0]
	if d.Name != kconfig.ServiceMenuRC {
		t.Errorf("Expected the service menu file to change, got %q", d.Name)
	}

	output := FormatUnified(d)
	if !strings.Contains(output, "-compressHere=true") {
		t.Error("Expected the old value in the diff")
	}
	if !strings.Contains(output, "+compressHere=false") {
		t.Error("Expected the new value in the diff")
	}
}

func TestPendingDetectsPluginChange(t *testing.T) {
	store, model := appliedFixture(t)
	model.SetChecked(catalog.VersionControlPrefix+"Git", true)

	diffs, err := Pending(store, model)
	if err != nil {
		t.Fatalf("Pending failed: %v", err)
	}
	if len(diffs) != 1 {
		t.Fatalf("Expected 1 changed file, got %d", len(diffs))
	}
	if diffs[0].Name != kconfig.FileManagerRC {
		t.Errorf("Expected the file manager config to change, got %q", diffs[0].Name)
	}
	if !strings.Contains(FormatUnified(diffs[0]), "+enabledPlugins=Git") {
		t.Error("Expected the enabled list in the diff")
	}
}

func TestPendingLeavesStoreUntouched(t *testing.T) {
	store, model := appliedFixture(t)
	before, err := store.Render(kconfig.ServiceMenuRC)
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}

	model.SetChecked("compressHere", false)
	if _, err := Pending(store, model); err != nil {
		t.Fatalf("Pending failed: %v", err)
	}

	after, err := store.Render(kconfig.ServiceMenuRC)
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	if string(before) != string(after) {
		t.Error("Pending must not mutate the real store")
	}
}
