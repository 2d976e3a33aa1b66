package cart

import "testing"

func TestDeriveLineIDWithoutOptions(t *testing.T) {
	if got := DeriveLineID(1, nil); got != "1" {
		t.Fatalf("expected bare product id, got %q", got)
	}
	// an explicitly empty selection must collide with the bare id, so a plain
	// add and an empty-customization add merge into one line
	if got := DeriveLineID(1, map[string]string{}); got != "1" {
		t.Fatalf("empty selection should reduce to bare id, got %q", got)
	}
	if DeriveLineID(1, nil) != DeriveLineID(1, map[string]string{}) {
		t.Fatal("nil and empty selections must share an identity")
	}
}

func TestDeriveLineIDWithOptions(t *testing.T) {
	selection := map[string]string{"flavor": "Vanilla", "size": "Large"}
	if got := DeriveLineID(1, selection); got != `1-{"flavor":"Vanilla","size":"Large"}` {
		t.Fatalf("unexpected derived id %q", got)
	}
}

func TestDeriveLineIDIsOrderIndependent(t *testing.T) {
	a := DeriveLineID(3, map[string]string{"flavor": "Vanilla", "filling": "Cream", "size": "Small"})
	b := DeriveLineID(3, map[string]string{"size": "Small", "flavor": "Vanilla", "filling": "Cream"})
	if a != b {
		t.Fatalf("structurally identical selections should collide: %q vs %q", a, b)
	}
}

func TestDeriveLineIDDistinguishesSelections(t *testing.T) {
	base := DeriveLineID(1, map[string]string{"flavor": "Vanilla"})

	if other := DeriveLineID(1, map[string]string{"flavor": "Chocolate"}); other == base {
		t.Fatal("different option values must produce distinct identities")
	}
	if other := DeriveLineID(1, map[string]string{"flavor": "Vanilla", "size": "Large"}); other == base {
		t.Fatal("extra option keys must produce distinct identities")
	}
	if other := DeriveLineID(2, map[string]string{"flavor": "Vanilla"}); other == base {
		t.Fatal("different products must produce distinct identities")
	}
	if other := DeriveLineID(1, nil); other == base {
		t.Fatal("no selection must differ from a populated selection")
	}
}

func TestClampQuantityBounds(t *testing.T) {
	tests := []struct {
		in   int
		want int
	}{
		{in: -5, want: 1},
		{in: 0, want: 1},
		{in: 1, want: 1},
		{in: 7, want: 7},
		{in: 10, want: 10},
		{in: 20, want: 10},
	}
	for _, tt := range tests {
		if got := clampQuantity(tt.in); got != tt.want {
			t.Fatalf("clampQuantity(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}
