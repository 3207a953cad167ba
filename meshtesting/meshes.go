package meshtesting

import (
	"github.com/forestrie/go-meshdofs/tria"
)

// UnitInterval returns [0,1] uniformly refined so that it has the given
// number of levels. Level l has 2^l cells ordered left to right.
func UnitInterval(levels int) (*tria.Triangulation, error) {
	t, err := tria.New(1)
	if err != nil {
		return nil, err
	}
	n := 1 << (levels - 1)
	// vertex ids on the finest grid, created on first use
	vertex := make(map[int]int)
	vertexAt := func(i, stride int) int {
		key := i * stride
		if v, ok := vertex[key]; ok {
			return v
		}
		v := t.AddVertex(tria.Point{float64(key) / float64(n)})
		vertex[key] = v
		return v
	}

	for level := 0; level < levels; level++ {
		t.AddLevel()
		cells := 1 << level
		stride := n / cells
		for i := 0; i < cells; i++ {
			if _, err := t.AddLine(level, vertexAt(i, stride), vertexAt(i+1, stride)); err != nil {
				return nil, err
			}
		}
		for i := 0; i < cells; i++ {
			pos := tria.Position{Level: level, Index: i}
			if i > 0 {
				if err := t.SetNeighbor(pos, 0, tria.Position{Level: level, Index: i - 1}); err != nil {
					return nil, err
				}
			}
			if i < cells-1 {
				if err := t.SetNeighbor(pos, 1, tria.Position{Level: level, Index: i + 1}); err != nil {
					return nil, err
				}
			}
			if level > 0 && i%2 == 0 {
				parent := tria.Position{Level: level - 1, Index: i / 2}
				if err := t.SetChildren(tria.KindLine, parent, i); err != nil {
					return nil, err
				}
			}
		}
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return t, nil
}

type gridKey struct {
	vertical bool
	i, j     int
}

// squareLevel records where the grid objects of one level were put.
type squareLevel struct {
	lines map[gridKey]int
	// lineKeys is the inverse of lines, by slot.
	lineKeys []gridKey
	quads    map[[2]int]int
	quadKeys [][2]int
}

// UnitSquare returns [0,1]^2 uniformly refined so that it has the given
// number of levels; level l is a 2^l by 2^l grid. Children of every object
// occupy consecutive slots in the order of their parents, and each level's
// cells link to their same level neighbors (bottom, right, top, left).
func UnitSquare(levels int) (*tria.Triangulation, error) {
	t, err := tria.New(2)
	if err != nil {
		return nil, err
	}
	fine := 1 << (levels - 1)
	vertex := make(map[[2]int]int)
	vertexAt := func(i, j, stride int) int {
		key := [2]int{i * stride, j * stride}
		if v, ok := vertex[key]; ok {
			return v
		}
		v := t.AddVertex(tria.Point{float64(key[0]) / float64(fine), float64(key[1]) / float64(fine)})
		vertex[key] = v
		return v
	}

	var prev *squareLevel
	for level := 0; level < levels; level++ {
		t.AddLevel()
		n := 1 << level
		stride := fine / n
		cur := &squareLevel{lines: make(map[gridKey]int), quads: make(map[[2]int]int)}

		addLine := func(k gridKey) error {
			if _, ok := cur.lines[k]; ok {
				return nil
			}
			v0 := vertexAt(k.i, k.j, stride)
			var v1 int
			if k.vertical {
				v1 = vertexAt(k.i, k.j+1, stride)
			} else {
				v1 = vertexAt(k.i+1, k.j, stride)
			}
			slot, err := t.AddLine(level, v0, v1)
			if err != nil {
				return err
			}
			cur.lines[k] = slot
			cur.lineKeys = append(cur.lineKeys, k)
			return nil
		}

		// children of the previous level's lines first, in parent order
		if prev != nil {
			for slot, k := range prev.lineKeys {
				first := len(cur.lineKeys)
				for c := 0; c < 2; c++ {
					ck := gridKey{vertical: k.vertical, i: 2 * k.i, j: 2 * k.j}
					if k.vertical {
						ck.j += c
					} else {
						ck.i += c
					}
					if err := addLine(ck); err != nil {
						return nil, err
					}
				}
				if err := t.SetChildren(tria.KindLine, tria.Position{Level: level - 1, Index: slot}, first); err != nil {
					return nil, err
				}
			}
		}
		for j := 0; j <= n; j++ {
			for i := 0; i < n; i++ {
				if err := addLine(gridKey{i: i, j: j}); err != nil {
					return nil, err
				}
				if err := addLine(gridKey{vertical: true, i: j, j: i}); err != nil {
					return nil, err
				}
			}
		}

		addQuad := func(i, j int) error {
			lines := [4]int{
				cur.lines[gridKey{i: i, j: j}],
				cur.lines[gridKey{vertical: true, i: i + 1, j: j}],
				cur.lines[gridKey{i: i, j: j + 1}],
				cur.lines[gridKey{vertical: true, i: i, j: j}],
			}
			vertices := [4]int{
				vertexAt(i, j, stride),
				vertexAt(i+1, j, stride),
				vertexAt(i+1, j+1, stride),
				vertexAt(i, j+1, stride),
			}
			slot, err := t.AddQuad(level, lines, vertices)
			if err != nil {
				return err
			}
			cur.quads[[2]int{i, j}] = slot
			cur.quadKeys = append(cur.quadKeys, [2]int{i, j})
			return nil
		}
		if prev == nil {
			if err := addQuad(0, 0); err != nil {
				return nil, err
			}
		} else {
			for slot, k := range prev.quadKeys {
				first := len(cur.quadKeys)
				i, j := 2*k[0], 2*k[1]
				for _, c := range [4][2]int{{i, j}, {i + 1, j}, {i + 1, j + 1}, {i, j + 1}} {
					if err := addQuad(c[0], c[1]); err != nil {
						return nil, err
					}
				}
				if err := t.SetChildren(tria.KindQuad, tria.Position{Level: level - 1, Index: slot}, first); err != nil {
					return nil, err
				}
			}
		}

		for slot, k := range cur.quadKeys {
			pos := tria.Position{Level: level, Index: slot}
			across := [4][2]int{{k[0], k[1] - 1}, {k[0] + 1, k[1]}, {k[0], k[1] + 1}, {k[0] - 1, k[1]}}
			for face, nk := range across {
				other, ok := cur.quads[nk]
				if !ok {
					continue
				}
				if err := t.SetNeighbor(pos, face, tria.Position{Level: level, Index: other}); err != nil {
					return nil, err
				}
			}
		}
		prev = cur
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return t, nil
}

// LocallyRefinedSquare returns a three level square in which only the first
// level 1 cell (the lower left quarter) is refined again. The level 2 slots
// of the other quarters are kept but marked unused, so the hierarchy has
// holes, and the remaining level 2 cells on the edge of the refined quarter
// have level 1 neighbors.
func LocallyRefinedSquare() (*tria.Triangulation, error) {
	t, err := UnitSquare(3)
	if err != nil {
		return nil, err
	}
	level2 := t.Level(2)
	for parent := 1; parent < 4; parent++ {
		pos := tria.Position{Level: 1, Index: parent}
		first := t.ChildIndex(tria.KindQuad, pos, 0)
		for c := 0; c < 4; c++ {
			if err := t.SetUsed(tria.KindQuad, tria.Position{Level: 2, Index: first + c}, false); err != nil {
				return nil, err
			}
		}
		if err := t.SetChildren(tria.KindQuad, pos, tria.NoChild); err != nil {
			return nil, err
		}
	}

	// lines of level 2 survive only where a used quad refers to them
	referenced := make([]bool, level2.Lines.Len())
	for q := 0; q < level2.Quads.Len(); q++ {
		if !level2.Quads.Used[q] {
			continue
		}
		for _, l := range level2.Quads.Lines[q] {
			referenced[l] = true
		}
	}
	for l, ok := range referenced {
		if !ok {
			if err := t.SetUsed(tria.KindLine, tria.Position{Level: 2, Index: l}, false); err != nil {
				return nil, err
			}
		}
	}
	for l := 0; l < t.Level(1).Lines.Len(); l++ {
		pos := tria.Position{Level: 1, Index: l}
		first := t.ChildIndex(tria.KindLine, pos, 0)
		if first != tria.NoChild && !referenced[first] {
			if err := t.SetChildren(tria.KindLine, pos, tria.NoChild); err != nil {
				return nil, err
			}
		}
	}

	// a fine cell whose neighbor went away now faces that neighbor's parent
	for q := 0; q < level2.Quads.Len(); q++ {
		pos := tria.Position{Level: 2, Index: q}
		if !level2.Quads.Used[q] {
			continue
		}
		for face := 0; face < 4; face++ {
			n := t.Neighbor(pos, face)
			if n.IsPastEnd() || t.Used(tria.KindQuad, n) {
				continue
			}
			if err := t.SetNeighbor(pos, face, tria.Position{Level: 1, Index: n.Index / 4}); err != nil {
				return nil, err
			}
		}
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return t, nil
}
