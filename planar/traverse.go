// SPDX-License-Identifier: MIT
//
// File: traverse.go
// Role: breadth-first connectivity queries and summary statistics.

package planar

// queueItem pairs a vertex with the component it is being collected into.
type queueItem struct {
	v    *Vertex
	comp int
}

// walker encapsulates mutable BFS state over a Map.
type walker struct {
	m       *Map
	queue   []queueItem
	visited map[*Vertex]bool
	comps   [][]*Vertex
}

// Components returns the connected components of m. Components are ordered
// by their first vertex in insertion order; within a component vertices are
// listed in BFS order. Isolated vertices form singleton components.
//
// Complexity: O(V + E).
func (m *Map) Components() [][]*Vertex {
	w := &walker{
		m:       m,
		queue:   make([]queueItem, 0, len(m.vertices)),
		visited: make(map[*Vertex]bool, len(m.vertices)),
	}
	for _, v := range m.vertices {
		if w.visited[v] {
			continue
		}
		w.comps = append(w.comps, nil)
		w.enqueue(v, len(w.comps)-1)
		w.loop()
	}
	return w.comps
}

// Reachable returns the vertices reachable from start in BFS order,
// start first. A vertex outside m yields nil.
func (m *Map) Reachable(start *Vertex) []*Vertex {
	if !m.Contains(start) {
		return nil
	}
	w := &walker{m: m, visited: make(map[*Vertex]bool), comps: [][]*Vertex{nil}}
	w.enqueue(start, 0)
	w.loop()
	return w.comps[0]
}

func (w *walker) enqueue(v *Vertex, comp int) {
	w.visited[v] = true
	w.queue = append(w.queue, queueItem{v: v, comp: comp})
}

func (w *walker) loop() {
	for len(w.queue) > 0 {
		item := w.queue[0]
		w.queue = w.queue[1:]
		w.comps[item.comp] = append(w.comps[item.comp], item.v)
		for _, e := range item.v.adj {
			if nbr := e.Other(item.v); nbr != nil && !w.visited[nbr] {
				w.enqueue(nbr, item.comp)
			}
		}
	}
}

// Stats summarises a Map.
type Stats struct {
	Vertices   int
	Edges      int
	Arcs       int
	Isolated   int
	MaxDegree  int
	Components int
}

// Stats returns a snapshot summary of m.
//
// Complexity: O(V + E).
func (m *Map) Stats() Stats {
	s := Stats{Vertices: len(m.vertices), Edges: len(m.edges)}
	for _, e := range m.edges {
		if e.Kind == Arc {
			s.Arcs++
		}
	}
	for _, v := range m.vertices {
		d := len(v.adj)
		if d == 0 {
			s.Isolated++
		}
		if d > s.MaxDegree {
			s.MaxDegree = d
		}
	}
	s.Components = len(m.Components())
	return s
}
