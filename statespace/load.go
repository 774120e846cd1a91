package statespace

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Map-file layout: a map directory holds two plain-text files.
//
//	nodes: one node per line, "id x y" (whitespace-separated)
//	edges: one edge per line, "from to"
//
// Lines beyond the expected fields are ignored; short or non-numeric
// lines are rejected with ErrBadMapFile.
const (
	nodesFileName = "nodes"
	edgesFileName = "edges"
)

// LoadDir parses the nodes and edges files under dir and builds a Graph.
//
// Returns ErrBadMapFile (wrapped with file and line context) for malformed
// lines, the underlying *os.PathError when a file cannot be opened, and the
// usual construction sentinels from New for inconsistent content.
// Complexity: O(V+E) time and memory.
func LoadDir(dir string) (*Graph, error) {
	nodes, err := loadNodes(filepath.Join(dir, nodesFileName))
	if err != nil {
		return nil, err
	}

	edges, err := loadEdges(filepath.Join(dir, edgesFileName))
	if err != nil {
		return nil, err
	}

	return New(nodes, edges)
}

// ListMaps returns the names of all subdirectories of root, sorted
// lexicographically (os.ReadDir order). Non-directories are skipped.
func ListMaps(root string) ([]string, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, err
	}

	maps := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			maps = append(maps, e.Name())
		}
	}

	return maps, nil
}

// loadNodes reads "id x y" lines from path.
func loadNodes(path string) ([]Node, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var (
		nodes []Node
		line  int
	)
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue // tolerate blank lines
		}
		if len(fields) < 3 {
			return nil, fmt.Errorf("%s:%d: want \"id x y\": %w", path, line, ErrBadMapFile)
		}

		id, err := strconv.Atoi(fields[0])
		if err != nil {
			return nil, fmt.Errorf("%s:%d: node id: %w", path, line, ErrBadMapFile)
		}
		x, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return nil, fmt.Errorf("%s:%d: node x: %w", path, line, ErrBadMapFile)
		}
		y, err := strconv.ParseFloat(fields[2], 64)
		if err != nil {
			return nil, fmt.Errorf("%s:%d: node y: %w", path, line, ErrBadMapFile)
		}

		nodes = append(nodes, Node{ID: id, X: x, Y: y})
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	return nodes, nil
}

// loadEdges reads "from to" lines from path.
func loadEdges(path string) ([]Edge, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var (
		edges []Edge
		line  int
	)
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		if len(fields) < 2 {
			return nil, fmt.Errorf("%s:%d: want \"from to\": %w", path, line, ErrBadMapFile)
		}

		from, err := strconv.Atoi(fields[0])
		if err != nil {
			return nil, fmt.Errorf("%s:%d: edge from: %w", path, line, ErrBadMapFile)
		}
		to, err := strconv.Atoi(fields[1])
		if err != nil {
			return nil, fmt.Errorf("%s:%d: edge to: %w", path, line, ErrBadMapFile)
		}

		edges = append(edges, Edge{From: from, To: to})
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	return edges, nil
}
