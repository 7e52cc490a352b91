package registry

import (
	"os"
	"path/filepath"
	"testing"
)

func writeEntry(t *testing.T, root, category, name, content string) string {
	t.Helper()
	dir := filepath.Join(root, category)
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("failed to create %s: %v", dir, err)
	}
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
	return path
}

const compressMenu = `[Desktop Entry]
Type=Service
Icon=archive-extract
X-KDE-Submenu=Compress
Actions=compressHere;compressTo;

[Desktop Action compressHere]
Name=Compress Here
Icon=archive-insert
Exec=compressor --here %U

[Desktop Action compressTo]
Name=Compress To...
Exec=compressor --to %U
`

func TestQueryServiceMenus(t *testing.T) {
	root := t.TempDir()
	path := writeEntry(t, root, "servicemenus", "compress.desktop", compressMenu)

	r := NewDirRegistry([]string{root})
	entries := r.Query(ServiceMenus)

	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	e := entries[0]
	if e.ID != "compress" {
		t.Errorf("expected ID 'compress', got %q", e.ID)
	}
	if e.Submenu != "Compress" {
		t.Errorf("expected submenu 'Compress', got %q", e.Submenu)
	}
	if e.Path != path {
		t.Errorf("expected path %q, got %q", path, e.Path)
	}
	if len(e.Actions) != 2 {
		t.Fatalf("expected 2 actions, got %d", len(e.Actions))
	}
	if e.Actions[0].Text != "Compress Here" {
		t.Errorf("expected first action 'Compress Here', got %q", e.Actions[0].Text)
	}
}

func TestQueryMissingRoot(t *testing.T) {
	r := NewDirRegistry([]string{filepath.Join(t.TempDir(), "does-not-exist")})

	for _, c := range []Category{ServiceMenus, FileItemActions, VersionControlPlugins} {
		if entries := r.Query(c); len(entries) != 0 {
			t.Errorf("expected no entries for %s, got %d", c, len(entries))
		}
	}
}

func TestHiddenServiceMenuSkipped(t *testing.T) {
	root := t.TempDir()
	writeEntry(t, root, "servicemenus", "gone.desktop", `[Desktop Entry]
Type=Service
Hidden=true
Actions=open;

[Desktop Action open]
Name=Open
Exec=opener %U
`)

	r := NewDirRegistry([]string{root})
	if entries := r.Query(ServiceMenus); len(entries) != 0 {
		t.Errorf("expected hidden entry to be skipped, got %d entries", len(entries))
	}
}

func TestHiddenEntryMasksSystemRoot(t *testing.T) {
	user := t.TempDir()
	system := t.TempDir()
	writeEntry(t, user, "servicemenus", "compress.desktop", `[Desktop Entry]
Hidden=true
`)
	writeEntry(t, system, "servicemenus", "compress.desktop", compressMenu)

	r := NewDirRegistry([]string{user, system})
	if entries := r.Query(ServiceMenus); len(entries) != 0 {
		t.Errorf("expected the hidden user entry to mask the system one, got %d entries", len(entries))
	}
}

func TestUserRootShadowsSystemRoot(t *testing.T) {
	user := t.TempDir()
	system := t.TempDir()
	writeEntry(t, user, "servicemenus", "compress.desktop", `[Desktop Entry]
Type=Service
X-KDE-Submenu=Mine
Actions=go;

[Desktop Action go]
Name=Go
Exec=go %U
`)
	writeEntry(t, system, "servicemenus", "compress.desktop", compressMenu)

	r := NewDirRegistry([]string{user, system})
	entries := r.Query(ServiceMenus)

	if len(entries) != 1 {
		t.Fatalf("expected the user entry to shadow the system one, got %d entries", len(entries))
	}
	if entries[0].Submenu != "Mine" {
		t.Errorf("expected the user entry's submenu, got %q", entries[0].Submenu)
	}
}

func TestQueryPluginManifest(t *testing.T) {
	root := t.TempDir()
	path := writeEntry(t, root, "vcsplugins", "git.json", `{
  "KPlugin": {
    "Id": "gitplugin",
    "Name": "Git",
    "Icon": "code-class",
    "Description": "Git integration"
  }
}`)

	r := NewDirRegistry([]string{root})
	entries := r.Query(VersionControlPlugins)

	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	e := entries[0]
	if e.ID != "gitplugin" {
		t.Errorf("expected ID 'gitplugin', got %q", e.ID)
	}
	if e.Name != "Git" {
		t.Errorf("expected name 'Git', got %q", e.Name)
	}
	if e.Icon != "code-class" {
		t.Errorf("expected icon 'code-class', got %q", e.Icon)
	}
	if e.Path != path {
		t.Errorf("expected path %q, got %q", path, e.Path)
	}
}

func TestManifestFallbacks(t *testing.T) {
	root := t.TempDir()
	writeEntry(t, root, "fileitemactions", "dropbox.json", `{"KPlugin": {"Icon": "dropbox"}}`)

	r := NewDirRegistry([]string{root})
	entries := r.Query(FileItemActions)

	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	if entries[0].ID != "dropbox" {
		t.Errorf("expected ID to fall back to the file name, got %q", entries[0].ID)
	}
	if entries[0].Name != "dropbox" {
		t.Errorf("expected name to fall back to the id, got %q", entries[0].Name)
	}
}

func TestMalformedManifestSkipped(t *testing.T) {
	root := t.TempDir()
	writeEntry(t, root, "vcsplugins", "broken.json", `{"KPlugin": `)
	writeEntry(t, root, "vcsplugins", "good.json", `{"KPlugin": {"Id": "svn", "Name": "Subversion"}}`)

	r := NewDirRegistry([]string{root})
	entries := r.Query(VersionControlPlugins)

	if len(entries) != 1 {
		t.Fatalf("expected only the valid manifest, got %d entries", len(entries))
	}
	if entries[0].ID != "svn" {
		t.Errorf("expected 'svn', got %q", entries[0].ID)
	}
}

func TestLegacyPluginNeedsServiceType(t *testing.T) {
	root := t.TempDir()
	writeEntry(t, root, "vcsplugins", "bzr.desktop", `[Desktop Entry]
Type=Service
Name=Bazaar
X-KDE-ServiceTypes=FileViewVersionControlPlugin
`)
	writeEntry(t, root, "vcsplugins", "stray.desktop", `[Desktop Entry]
Type=Service
Name=Stray
X-KDE-ServiceTypes=KonqPopupMenu/Plugin
`)

	r := NewDirRegistry([]string{root})
	entries := r.Query(VersionControlPlugins)

	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	if entries[0].Name != "Bazaar" {
		t.Errorf("expected the plugin with the right service type, got %q", entries[0].Name)
	}
}

func TestManifestShadowsLegacyPlugin(t *testing.T) {
	root := t.TempDir()
	writeEntry(t, root, "vcsplugins", "git.json", `{"KPlugin": {"Id": "git", "Name": "Git"}}`)
	writeEntry(t, root, "vcsplugins", "git.desktop", `[Desktop Entry]
Type=Service
Name=Git (legacy)
X-KDE-ServiceTypes=FileViewVersionControlPlugin
`)

	r := NewDirRegistry([]string{root})
	entries := r.Query(VersionControlPlugins)

	if len(entries) != 1 {
		t.Fatalf("expected the manifest to shadow the legacy file, got %d entries", len(entries))
	}
	if entries[0].Name != "Git" {
		t.Errorf("expected the manifest entry, got %q", entries[0].Name)
	}
}

func TestDeterministicOrder(t *testing.T) {
	root := t.TempDir()
	writeEntry(t, root, "fileitemactions", "beta.json", `{"KPlugin": {"Id": "beta", "Name": "Beta"}}`)
	writeEntry(t, root, "fileitemactions", "alpha.json", `{"KPlugin": {"Id": "alpha", "Name": "Alpha"}}`)

	r := NewDirRegistry([]string{root})
	entries := r.Query(FileItemActions)

	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].ID != "alpha" || entries[1].ID != "beta" {
		t.Errorf("expected sorted order alpha, beta; got %s, %s", entries[0].ID, entries[1].ID)
	}
}

func TestDefaultRootsUsedWhenEmpty(t *testing.T) {
	r := NewDirRegistry(nil)
	if len(r.Roots()) != 2 {
		t.Fatalf("expected 2 default roots, got %d", len(r.Roots()))
	}
	if r.InstallRoot() != r.Roots()[0] {
		t.Errorf("expected the install root to be the first root")
	}
}

func TestStaticRegistry(t *testing.T) {
	s := NewStatic().
		Add(VersionControlPlugins, Entry{ID: "git", Name: "Git"}).
		Add(VersionControlPlugins, Entry{ID: "svn", Name: "Subversion"})

	entries := s.Query(VersionControlPlugins)
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if len(s.Query(ServiceMenus)) != 0 {
		t.Errorf("expected no service menus")
	}
}

func TestCategoryString(t *testing.T) {
	cases := map[Category]string{
		ServiceMenus:          "servicemenus",
		FileItemActions:       "fileitemactions",
		VersionControlPlugins: "vcsplugins",
		Category(99):          "unknown",
	}
	for c, want := range cases {
		if got := c.String(); got != want {
			t.Errorf("Category(%d).String() = %q, want %q", c, got, want)
		}
	}
}
