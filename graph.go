package facade

import "sort"

// A Component is a set of faces connected through shared vertices.
type Component struct {
	Nodes []int   // Vertex IDs, sorted
	Faces []*Face // Member faces, in input order
}

// Contains reports whether vertex id is a node of c.
func (c *Component) Contains(id int) bool {
	i := sort.SearchInts(c.Nodes, id)
	return i < len(c.Nodes) && c.Nodes[i] == id
}

// ConnectedComponents groups faces into connected components of the graph
// whose nodes are vertex IDs and whose edges are the triangle edges. Two
// faces are connected only if they share a vertex ID; faces that merely
// touch in space are not. Components are ordered by their smallest node.
func ConnectedComponents(faces []*Face) []Component {
	uf := make(unionFind)
	for _, f := range faces {
		ids := f.VertIDs()
		uf.union(ids[0], ids[1])
		uf.union(ids[1], ids[2])
		uf.union(ids[2], ids[0])
	}

	byRoot := make(map[int]*Component)
	var roots []int
	for _, f := range faces {
		root := uf.find(f.V[0].ID)
		c := byRoot[root]
		if c == nil {
			c = new(Component)
			byRoot[root] = c
			roots = append(roots, root)
		}
		c.Faces = append(c.Faces, f)
	}
	for id := range uf {
		c := byRoot[uf.find(id)]
		c.Nodes = append(c.Nodes, id)
	}

	comps := make([]Component, len(roots))
	for i, root := range roots {
		c := byRoot[root]
		sort.Ints(c.Nodes)
		comps[i] = *c
	}
	sort.Slice(comps, func(i, j int) bool {
		return comps[i].Nodes[0] < comps[j].Nodes[0]
	})
	return comps
}

// unionFind is a disjoint-set forest over vertex IDs.
type unionFind map[int]int

func (u unionFind) find(x int) int {
	p, ok := u[x]
	if !ok {
		u[x] = x
		return x
	}
	if p == x {
		return x
	}
	root := u.find(p)
	u[x] = root
	return root
}

func (u unionFind) union(a, b int) {
	ra, rb := u.find(a), u.find(b)
	if ra == rb {
		return
	}
	// Keep the smaller ID as the root so results don't depend on map
	// iteration order.
	if rb < ra {
		ra, rb = rb, ra
	}
	u[rb] = ra
}
