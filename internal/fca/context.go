package fca

// Context is a static binary relation between m objects and n attributes.
// Rows hold each object's attributes; columns hold each attribute's objects.
type Context struct {
	nAttrs int
	rows   []Set
	cols   []Set
}

// NewContext builds a context from per-object attribute rows of width nAttrs.
// Rows of any other width are rejected with ErrInvalidInput.
func NewContext(rows []Set, nAttrs int) (*Context, error) {
	if nAttrs < 0 {
		return nil, invalidf("negative attribute count %d", nAttrs)
	}
	m := len(rows)
	cols := make([]Set, nAttrs)
	colIdx := make([][]int, nAttrs)
	for g, row := range rows {
		if row.Len() != nAttrs {
			return nil, invalidf("object %d has width %d, want %d", g, row.Len(), nAttrs)
		}
		for _, a := range row.Indices() {
			colIdx[a] = append(colIdx[a], g)
		}
	}
	for a := range cols {
		cols[a] = NewSet(m, colIdx[a]...)
	}
	owned := make([]Set, m)
	copy(owned, rows)
	return &Context{nAttrs: nAttrs, rows: owned, cols: cols}, nil
}

// NewContextFromIndices is a convenience constructor taking rows as lists
// of attribute indices.
func NewContextFromIndices(rows [][]int, nAttrs int) (*Context, error) {
	sets := make([]Set, len(rows))
	for g, row := range rows {
		for _, a := range row {
			if a < 0 || a >= nAttrs {
				return nil, invalidf("object %d references attribute %d outside [0,%d)", g, a, nAttrs)
			}
		}
		sets[g] = NewSet(nAttrs, row...)
	}
	return NewContext(sets, nAttrs)
}

// NumAttributes is the width of attribute sets.
func (c *Context) NumAttributes() int { return c.nAttrs }

// NumObjects is the width of object sets.
func (c *Context) NumObjects() int { return len(c.rows) }

// Row returns the attribute set of object g.
func (c *Context) Row(g int) Set { return c.rows[g] }

// Column returns the object set of attribute a.
func (c *Context) Column(a int) Set { return c.cols[a] }

// Extent returns the objects carrying every attribute of attrs.
func (c *Context) Extent(attrs Set) Set {
	ext := FullSet(len(c.rows))
	for _, a := range attrs.Indices() {
		ext = ext.Intersect(c.cols[a])
	}
	return ext
}

// Intent returns the attributes shared by every object of objs. The intent
// of the empty object set is the whole attribute universe.
func (c *Context) Intent(objs Set) Set {
	in := FullSet(c.nAttrs)
	for _, g := range objs.Indices() {
		in = in.Intersect(c.rows[g])
	}
	return in
}

// Closure returns the intent of the smallest concept containing attrs.
func (c *Context) Closure(attrs Set) Set {
	return c.Intent(c.Extent(attrs))
}

// Support is the number of objects carrying every attribute of attrs.
func (c *Context) Support(attrs Set) int {
	return c.Extent(attrs).Count()
}

// IsDegenerate reports whether the relation has no objects or no attributes.
func (c *Context) IsDegenerate() bool {
	return len(c.rows) == 0 || c.nAttrs == 0
}

// checkAttrs validates that s lives in this context's attribute universe.
func (c *Context) checkAttrs(s Set) error {
	if s.Len() != c.nAttrs {
		return invalidf("attribute set has width %d, want %d", s.Len(), c.nAttrs)
	}
	return nil
}
