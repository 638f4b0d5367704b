package adjacency

// New constructs a Relation for a rows×cols grid and the given radius.
// Returns ErrEmptyGrid or ErrBadRadius on invalid input.
// Complexity: O(r²) construction for radius r; queries are O(deg).
func New(rows, cols int, radius float64) (*Relation, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrEmptyGrid
	}
	if radius < 1 {
		return nil, ErrBadRadius
	}

	r0 := int(radius)
	r2 := radius * radius
	rel := &Relation{rows: rows, cols: cols, radius: radius}
	// Row-major sweep over the bounding square, keeping offsets inside the
	// disk and skipping the center.
	for dy := -r0; dy <= r0; dy++ {
		for dx := -r0; dx <= r0; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			if float64(dx*dx+dy*dy) <= r2 {
				rel.offRow = append(rel.offRow, dy)
				rel.offCol = append(rel.offCol, dx)
			}
		}
	}

	return rel, nil
}

// Rows returns the grid height.
func (r *Relation) Rows() int { return r.rows }

// Cols returns the grid width.
func (r *Relation) Cols() int { return r.cols }

// Radius returns the disk radius the relation was built with.
func (r *Relation) Radius() float64 { return r.radius }

// Degree returns the number of offsets (upper bound on neighbors per pixel).
func (r *Relation) Degree() int { return len(r.offRow) }

// ForEachNeighbor invokes visit for every in-bounds neighbor of pixel p,
// in the relation's fixed offset order. Complexity: O(deg).
func (r *Relation) ForEachNeighbor(p int, visit func(q int)) {
	row, col := p/r.cols, p%r.cols
	for i := range r.offRow {
		nr, nc := row+r.offRow[i], col+r.offCol[i]
		if nr < 0 || nr >= r.rows || nc < 0 || nc >= r.cols {
			continue
		}
		visit(nr*r.cols + nc)
	}
}

// ForEachNeighborForward visits only the neighbors that follow p in row-major
// order, so every unordered pixel pair (p,q) is emitted exactly once across a
// full-grid sweep. Complexity: O(deg).
func (r *Relation) ForEachNeighborForward(p int, visit func(q int)) {
	row, col := p/r.cols, p%r.cols
	for i := range r.offRow {
		dy, dx := r.offRow[i], r.offCol[i]
		if dy < 0 || (dy == 0 && dx < 0) {
			continue
		}
		nr, nc := row+dy, col+dx
		if nr < 0 || nr >= r.rows || nc < 0 || nc >= r.cols {
			continue
		}
		visit(nr*r.cols + nc)
	}
}

// IsAdjacent reports whether pixels p and q are neighbors under the relation.
// Complexity: O(1).
func (r *Relation) IsAdjacent(p, q int) bool {
	py, px := p/r.cols, p%r.cols
	qy, qx := q/r.cols, q%r.cols
	dx, dy := px-qx, py-qy

	return p != q && float64(dx*dx+dy*dy) <= r.radius*r.radius
}
