package usecase

import "testing"

func TestCart(t *testing.T) {
	c := Cart{}

	c.Add("a")
	c.Add("a")
	c.Add("b")
	if c["a"] != 2 || c["b"] != 1 {
		t.Fatalf("cart = %v", c)
	}
	if c.Count() != 3 {
		t.Errorf("Count = %d, want 3", c.Count())
	}

	c.Remove("a")
	if c["a"] != 1 {
		t.Errorf("a = %d, want 1", c["a"])
	}

	// reaching zero removes the entry rather than storing zero
	c.Remove("b")
	if _, ok := c["b"]; ok {
		t.Error("b must be removed at quantity zero")
	}

	// removing an absent item is a no-op
	c.Remove("missing")
	if c.Count() != 1 {
		t.Errorf("Count = %d, want 1", c.Count())
	}
}
