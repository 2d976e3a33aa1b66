package cart

// Lines is the immutable value form of a cart: every transition returns a new
// slice and never mutates the receiver, so the state logic tests without any
// storage dependency.
type Lines []Line

// Add merges the snapshot into an existing line with the same identity, or
// appends a new one. On merge only the quantity changes; the original
// resolved price wins, which is safe because identical options imply an
// identical price. Quantities are clamped to [MinQuantity, MaxQuantity].
func (ls Lines) Add(snap Snapshot, quantity int, selected map[string]string) Lines {
	lineID := DeriveLineID(snap.ProductID, selected)

	for i, line := range ls {
		if line.LineID != lineID {
			continue
		}
		next := make(Lines, len(ls))
		copy(next, ls)
		next[i].Quantity = clampQuantity(line.Quantity + quantity)
		return next
	}

	next := make(Lines, len(ls), len(ls)+1)
	copy(next, ls)
	return append(next, Line{
		LineID:          lineID,
		ProductID:       snap.ProductID,
		Slug:            snap.Slug,
		Name:            snap.Name,
		Image:           snap.Image,
		UnitPrice:       snap.UnitPrice,
		Quantity:        clampQuantity(quantity),
		SelectedOptions: copyOptions(selected),
		IsCustomCake:    snap.IsCustomCake,
	})
}

// UpdateQuantity sets the quantity for a line, clamped in both directions.
// Unknown line ids are a no-op.
func (ls Lines) UpdateQuantity(lineID string, quantity int) Lines {
	for i, line := range ls {
		if line.LineID != lineID {
			continue
		}
		next := make(Lines, len(ls))
		copy(next, ls)
		next[i].Quantity = clampQuantity(quantity)
		return next
	}
	return ls
}

// Remove drops the line with the given id. Unknown ids are a no-op.
func (ls Lines) Remove(lineID string) Lines {
	for i, line := range ls {
		if line.LineID != lineID {
			continue
		}
		next := make(Lines, 0, len(ls)-1)
		next = append(next, ls[:i]...)
		return append(next, ls[i+1:]...)
	}
	return ls
}

// Clear empties the cart unconditionally.
func (ls Lines) Clear() Lines {
	return Lines{}
}

// TotalPrice sums unit price times quantity over all lines. Recomputed on
// every call, never cached.
func (ls Lines) TotalPrice() float64 {
	var total float64
	for _, line := range ls {
		total += line.UnitPrice * float64(line.Quantity)
	}
	return total
}

// Find returns the line with the given id.
func (ls Lines) Find(lineID string) (Line, bool) {
	for _, line := range ls {
		if line.LineID == lineID {
			return line, true
		}
	}
	return Line{}, false
}

// HasCustomCake reports whether any line is a custom cake, which lengthens
// the pickup lead time.
func (ls Lines) HasCustomCake() bool {
	for _, line := range ls {
		if line.IsCustomCake {
			return true
		}
	}
	return false
}
