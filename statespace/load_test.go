package statespace

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// writeMap lays out a map directory with the given nodes/edges file bodies.
func writeMap(t *testing.T, nodes, edges string) string {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "nodes"), []byte(nodes), 0o644); err != nil {
		t.Fatalf("write nodes: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "edges"), []byte(edges), 0o644); err != nil {
		t.Fatalf("write edges: %v", err)
	}
	return dir
}

// TestLoadDir_RoundTrip parses a small map and checks the resulting graph.
func TestLoadDir_RoundTrip(t *testing.T) {
	dir := writeMap(t,
		"0 0.5 1.5\n1 2.0 3.0\n2 4.0 0.0\n",
		"0 1\n1 2\n")

	g, err := LoadDir(dir)
	if err != nil {
		t.Fatalf("LoadDir failed: %v", err)
	}

	if g.NodeCount() != 3 || g.EdgeCount() != 2 {
		t.Fatalf("counts = (%d,%d); want (3,2)", g.NodeCount(), g.EdgeCount())
	}
	if n := g.NodeAt(1); n.X != 2.0 || n.Y != 3.0 {
		t.Errorf("NodeAt(1) = %+v; want X=2 Y=3", n)
	}
	if g.EdgeAt(0) != (Edge{0, 1}) || g.EdgeAt(1) != (Edge{1, 2}) {
		t.Errorf("edges = %v; want [{0 1} {1 2}]", g.Edges())
	}
}

// TestLoadDir_BlankLines verifies blank lines are tolerated.
func TestLoadDir_BlankLines(t *testing.T) {
	dir := writeMap(t, "0 0 0\n\n1 1 1\n", "\n0 1\n")

	g, err := LoadDir(dir)
	if err != nil {
		t.Fatalf("LoadDir failed: %v", err)
	}
	if g.NodeCount() != 2 || g.EdgeCount() != 1 {
		t.Fatalf("counts = (%d,%d); want (2,1)", g.NodeCount(), g.EdgeCount())
	}
}

// TestLoadDir_Malformed covers the ErrBadMapFile cases.
func TestLoadDir_Malformed(t *testing.T) {
	cases := []struct {
		name         string
		nodes, edges string
	}{
		{"short node line", "0 0\n", "0 1\n"},
		{"non-numeric node id", "a 0 0\n", "0 1\n"},
		{"short edge line", "0 0 0\n1 0 0\n", "0\n"},
		{"non-numeric edge", "0 0 0\n1 0 0\n", "0 x\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			dir := writeMap(t, tc.nodes, tc.edges)
			if _, err := LoadDir(dir); !errors.Is(err, ErrBadMapFile) {
				t.Fatalf("LoadDir err = %v; want ErrBadMapFile", err)
			}
		})
	}
}

// TestLoadDir_MissingFile propagates the underlying open error.
func TestLoadDir_MissingFile(t *testing.T) {
	if _, err := LoadDir(filepath.Join(t.TempDir(), "absent")); err == nil {
		t.Fatal("LoadDir on missing dir: want error, got nil")
	}
}

// TestListMaps returns only subdirectories, sorted.
func TestListMaps(t *testing.T) {
	root := t.TempDir()
	for _, name := range []string{"prague", "brno"} {
		if err := os.Mkdir(filepath.Join(root, name), 0o755); err != nil {
			t.Fatalf("mkdir: %v", err)
		}
	}
	if err := os.WriteFile(filepath.Join(root, "stray"), nil, 0o644); err != nil {
		t.Fatalf("write stray: %v", err)
	}

	maps, err := ListMaps(root)
	if err != nil {
		t.Fatalf("ListMaps failed: %v", err)
	}
	if len(maps) != 2 || maps[0] != "brno" || maps[1] != "prague" {
		t.Fatalf("ListMaps = %v; want [brno prague]", maps)
	}
}
