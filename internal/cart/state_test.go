package cart

import "testing"

func saffronCake() Snapshot {
	return Snapshot{
		ProductID:    1,
		Slug:         "saffron-cake",
		Name:         "Saffron Cake",
		UnitPrice:    45,
		IsCustomCake: false,
	}
}

func TestAddCreatesLine(t *testing.T) {
	lines := Lines{}.Add(saffronCake(), 1, nil)
	if len(lines) != 1 {
		t.Fatalf("expected one line, got %d", len(lines))
	}
	if lines[0].Name != "Saffron Cake" || lines[0].Quantity != 1 || lines[0].UnitPrice != 45 {
		t.Fatalf("unexpected line %+v", lines[0])
	}
	if lines[0].LineID != "1" {
		t.Fatalf("unexpected line id %q", lines[0].LineID)
	}
}

func TestAddMergesSameIdentity(t *testing.T) {
	lines := Lines{}.Add(saffronCake(), 1, nil).Add(saffronCake(), 2, nil)
	if len(lines) != 1 {
		t.Fatalf("expected merge into one line, got %d", len(lines))
	}
	if lines[0].Quantity != 3 {
		t.Fatalf("expected quantity 3, got %d", lines[0].Quantity)
	}
}

func TestAddMergeDoesNotTouchPrice(t *testing.T) {
	first := saffronCake()
	second := saffronCake()
	second.UnitPrice = 999 // catalog edits never reprice an existing line

	lines := Lines{}.Add(first, 1, nil).Add(second, 1, nil)
	if len(lines) != 1 {
		t.Fatalf("expected one line, got %d", len(lines))
	}
	if lines[0].UnitPrice != 45 {
		t.Fatalf("merge must keep the original resolved price, got %v", lines[0].UnitPrice)
	}
}

func TestAddKeepsDistinctOptionSetsApart(t *testing.T) {
	cake := Snapshot{ProductID: 7, Slug: "custom-cake", Name: "Custom Cake", UnitPrice: 80, IsCustomCake: true}

	lines := Lines{}.
		Add(cake, 1, map[string]string{"flavor": "Vanilla"}).
		Add(cake, 1, map[string]string{"flavor": "Chocolate"})

	if len(lines) != 2 {
		t.Fatalf("expected two lines, got %d", len(lines))
	}
	if lines[0].SelectedOptions["flavor"] != "Vanilla" || lines[1].SelectedOptions["flavor"] != "Chocolate" {
		t.Fatalf("lines must retain their own selections: %+v", lines)
	}
}

func TestAddClampsAtCreationAndSaturation(t *testing.T) {
	lines := Lines{}.Add(saffronCake(), 15, nil)
	if lines[0].Quantity != MaxQuantity {
		t.Fatalf("expected clamp to %d at creation, got %d", MaxQuantity, lines[0].Quantity)
	}

	lines = lines.Add(saffronCake(), 5, nil)
	if len(lines) != 1 || lines[0].Quantity != MaxQuantity {
		t.Fatalf("saturated line must stay at %d, got %+v", MaxQuantity, lines)
	}
}

func TestUpdateQuantityClampsBothDirections(t *testing.T) {
	lines := Lines{}.Add(saffronCake(), 1, nil)
	id := lines[0].LineID

	if got := lines.UpdateQuantity(id, 20); got[0].Quantity != 10 {
		t.Fatalf("expected clamp to 10, got %d", got[0].Quantity)
	}
	if got := lines.UpdateQuantity(id, -5); got[0].Quantity != 1 {
		t.Fatalf("expected clamp to 1, got %d", got[0].Quantity)
	}
	if got := lines.UpdateQuantity(id, 5); got[0].Quantity != 5 {
		t.Fatalf("expected 5, got %d", got[0].Quantity)
	}
}

func TestUpdateQuantityUnknownIDIsNoOp(t *testing.T) {
	lines := Lines{}.Add(saffronCake(), 2, nil)
	got := lines.UpdateQuantity("unknown", 5)
	if len(got) != 1 || got[0].Quantity != 2 {
		t.Fatalf("unknown id should change nothing, got %+v", got)
	}
}

func TestRemove(t *testing.T) {
	lines := Lines{}.Add(saffronCake(), 1, nil)
	id := lines[0].LineID

	if got := lines.Remove("unknown"); len(got) != 1 {
		t.Fatalf("removing unknown id must be a no-op, got %d lines", len(got))
	}
	if got := lines.Remove(id); len(got) != 0 {
		t.Fatalf("expected empty cart after removal, got %d lines", len(got))
	}
}

func TestClear(t *testing.T) {
	lines := Lines{}.
		Add(saffronCake(), 2, nil).
		Add(Snapshot{ProductID: 2, Slug: "baklava", Name: "Baklava", UnitPrice: 20}, 1, nil)

	if got := lines.Clear(); len(got) != 0 {
		t.Fatalf("clear must empty the cart, got %d lines", len(got))
	}
	if got := (Lines{}).Clear(); len(got) != 0 {
		t.Fatalf("clearing an empty cart stays empty, got %d lines", len(got))
	}
}

func TestTotalPrice(t *testing.T) {
	lines := Lines{}.
		Add(Snapshot{ProductID: 1, Slug: "a", Name: "A", UnitPrice: 10}, 2, nil).
		Add(Snapshot{ProductID: 2, Slug: "b", Name: "B", UnitPrice: 20}, 1, nil)

	if got := lines.TotalPrice(); got != 40 {
		t.Fatalf("expected total 40, got %v", got)
	}
	if got := (Lines{}).TotalPrice(); got != 0 {
		t.Fatalf("empty cart total must be 0, got %v", got)
	}
}

func TestTransitionsDoNotMutateReceiver(t *testing.T) {
	original := Lines{}.Add(saffronCake(), 2, nil)
	id := original[0].LineID

	_ = original.Add(saffronCake(), 3, nil)
	_ = original.UpdateQuantity(id, 9)
	_ = original.Remove(id)
	_ = original.Clear()

	if len(original) != 1 || original[0].Quantity != 2 {
		t.Fatalf("transitions must not mutate the receiver, got %+v", original)
	}
}

func TestHasCustomCake(t *testing.T) {
	plain := Lines{}.Add(saffronCake(), 1, nil)
	if plain.HasCustomCake() {
		t.Fatal("plain cart should not report a custom cake")
	}
	withCake := plain.Add(Snapshot{ProductID: 7, Slug: "custom-cake", Name: "Custom Cake", UnitPrice: 80, IsCustomCake: true}, 1, map[string]string{"flavor": "Vanilla"})
	if !withCake.HasCustomCake() {
		t.Fatal("cart with a custom cake must report it")
	}
}
