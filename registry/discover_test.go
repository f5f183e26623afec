package registry

import (
	"errors"
	"testing"

	"github.com/plugdex-labs/plugdex/metadata"
	"github.com/plugdex-labs/plugdex/modules"
)

func TestDiscoverFromProvider(t *testing.T) {
	tbl := modules.NewTable()
	defineLister(tbl, "l.a", "List", map[string][]string{"A": {"m1"}})
	provider := metadata.NewStaticProvider().Add("custom_group", "a", "l.a:List")

	listers, err := discoverListers(Config{Group: "custom_group", Provider: provider}, tbl)
	if err != nil {
		t.Fatalf("discoverListers: %v", err)
	}
	if len(listers) != 1 {
		t.Fatalf("len(listers) = %d, want 1", len(listers))
	}
	if got := listers[0]()["A"]; !sameStrings(got, []string{"m1"}) {
		t.Errorf("lister mapping = %v, want [m1]", got)
	}
}

func TestDiscoverMissingFunction(t *testing.T) {
	tbl := modules.NewTable()
	tbl.Module("l.a")

	_, err := discoverListers(Config{Listers: []string{"l.a:Nope"}}, tbl)
	var de *DiscoveryError
	if !errors.As(err, &de) {
		t.Fatalf("err = %v, want DiscoveryError", err)
	}
}

func TestDiscoverWrongSignature(t *testing.T) {
	tbl := modules.NewTable()
	tbl.Module("l.a").DefineFunc("List", func() []string { return nil })

	_, err := discoverListers(Config{Listers: []string{"l.a:List"}}, tbl)
	var de *DiscoveryError
	if !errors.As(err, &de) {
		t.Fatalf("err = %v, want DiscoveryError", err)
	}
}

func TestDiscoverMalformedRef(t *testing.T) {
	tbl := modules.NewTable()
	_, err := discoverListers(Config{Listers: []string{"no-colon"}}, tbl)
	var de *DiscoveryError
	if !errors.As(err, &de) {
		t.Fatalf("err = %v, want DiscoveryError", err)
	}
}

func TestDiscoverDedupesRepeatedRefs(t *testing.T) {
	tbl := modules.NewTable()
	ref := defineLister(tbl, "l.a", "List", map[string][]string{"A": {"m1"}})

	listers, err := discoverListers(Config{Listers: []string{ref, ref}}, tbl)
	if err != nil {
		t.Fatalf("discoverListers: %v", err)
	}
	if len(listers) != 1 {
		t.Errorf("len(listers) = %d, want 1 (duplicate refs collapse)", len(listers))
	}
}
