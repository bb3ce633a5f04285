package strings

import "testing"

func TestIfEmpty(t *testing.T) {
	def := []string{"a"}
	if got := IfEmpty(nil, def); len(got) != 1 || got[0] != "a" {
		t.Fatalf("want default, got %v", got)
	}
	in := []string{"x", "y"}
	if got := IfEmpty(in, def); len(got) != 2 {
		t.Fatalf("want input, got %v", got)
	}
}

func TestMustPrefix(t *testing.T) {
	if got := MustPrefix(" blog/ "); got != "/blog" {
		t.Fatalf("got %q", got)
	}
	if got := MustPrefix("/estimate"); got != "/estimate" {
		t.Fatalf("got %q", got)
	}
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for empty prefix")
		}
	}()
	MustPrefix("  /  ")
}

func TestSQLNull(t *testing.T) {
	if SQLNull("  ") != nil {
		t.Fatal("blank should map to nil")
	}
	if SQLNull("x") != "x" {
		t.Fatal("non blank should pass through")
	}
	s := " "
	if SQLNullPtr(&s) != nil {
		t.Fatal("blank ptr should map to nil")
	}
	if SQLNullPtr(nil) != nil {
		t.Fatal("nil ptr should map to nil")
	}
}

func TestDeref(t *testing.T) {
	if Deref(nil) != "" {
		t.Fatal("nil derefs to empty")
	}
	s := "v"
	if Deref(&s) != "v" {
		t.Fatal("ptr derefs to value")
	}
}
