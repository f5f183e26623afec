package modules

import "testing"

func TestSplitName(t *testing.T) {
	module, member, err := SplitName("acme.filters.Grayscale")
	if err != nil {
		t.Fatalf("SplitName: %v", err)
	}
	if module != "acme.filters" {
		t.Errorf("module = %q, want %q", module, "acme.filters")
	}
	if member != "Grayscale" {
		t.Errorf("member = %q, want %q", member, "Grayscale")
	}
}

func TestSplitNameSingleDot(t *testing.T) {
	module, member, err := SplitName("m1.B")
	if err != nil {
		t.Fatalf("SplitName: %v", err)
	}
	if module != "m1" || member != "B" {
		t.Errorf("SplitName = (%q, %q), want (%q, %q)", module, member, "m1", "B")
	}
}

func TestSplitNameInvalid(t *testing.T) {
	for _, name := range []string{"", "NoDot", ".Leading", "trailing."} {
		if _, _, err := SplitName(name); err == nil {
			t.Errorf("SplitName(%q): expected error", name)
		}
	}
}

func TestSplitRef(t *testing.T) {
	module, fn, err := SplitRef("acme.filters:ListClasses")
	if err != nil {
		t.Fatalf("SplitRef: %v", err)
	}
	if module != "acme.filters" {
		t.Errorf("module = %q, want %q", module, "acme.filters")
	}
	if fn != "ListClasses" {
		t.Errorf("function = %q, want %q", fn, "ListClasses")
	}
}

func TestSplitRefInvalid(t *testing.T) {
	for _, ref := range []string{"", "nofunction", ":Leading", "trailing:"} {
		if _, _, err := SplitRef(ref); err == nil {
			t.Errorf("SplitRef(%q): expected error", ref)
		}
	}
}

func TestSplitRefList(t *testing.T) {
	refs := SplitRefList(" a.b:F , c.d:G ,,e.f:H")
	want := []string{"a.b:F", "c.d:G", "e.f:H"}
	if len(refs) != len(want) {
		t.Fatalf("len = %d, want %d (%v)", len(refs), len(want), refs)
	}
	for i := range want {
		if refs[i] != want[i] {
			t.Errorf("refs[%d] = %q, want %q", i, refs[i], want[i])
		}
	}
}

func TestSplitRefListEmpty(t *testing.T) {
	if refs := SplitRefList(""); refs != nil {
		t.Errorf("SplitRefList(\"\") = %v, want nil", refs)
	}
}
