package registry

import (
	"errors"
	"reflect"
	"testing"

	"github.com/plugdex-labs/plugdex/modules"
)

func TestScanModuleSkipsInterfacesAndFuncs(t *testing.T) {
	tbl := modules.NewTable()
	tbl.Module("m").
		DefineClass("Animal", animalType).
		DefineClass("Dog", dog{}).
		DefineFunc("List", func() map[string][]string { return nil })

	classes, err := scanModule(tbl, "m")
	if err != nil {
		t.Fatalf("scanModule: %v", err)
	}
	if len(classes) != 1 || classes[0].Name != "Dog" {
		t.Errorf("classes = %v, want only Dog", classes)
	}
}

func TestScanModuleSkipsUnderscorePrefixed(t *testing.T) {
	tbl := modules.NewTable()
	tbl.Module("m").
		DefineClass("_Hidden", dog{}).
		DefineClass("Visible", dog{})

	classes, err := scanModule(tbl, "m")
	if err != nil {
		t.Fatalf("scanModule: %v", err)
	}
	if len(classes) != 1 || classes[0].Name != "Visible" {
		t.Errorf("classes = %v, want only Visible", classes)
	}
}

func TestScanModuleImportFailure(t *testing.T) {
	tbl := modules.NewTable()
	_, err := scanModule(tbl, "gone")
	if !errors.Is(err, modules.ErrUnknownModule) {
		t.Errorf("err = %v, want ErrUnknownModule", err)
	}
}

func TestScanModuleOrderIsDeterministic(t *testing.T) {
	tbl := modules.NewTable()
	tbl.Module("m").
		DefineClass("Zed", dog{}).
		DefineClass("Abel", cat{})

	classes, err := scanModule(tbl, "m")
	if err != nil {
		t.Fatalf("scanModule: %v", err)
	}
	var names []string
	for _, c := range classes {
		names = append(names, c.Name)
	}
	if !sameStrings(names, []string{"Abel", "Zed"}) {
		t.Errorf("names = %v, want [Abel Zed] (sorted)", names)
	}
	if classes[0].Type != reflect.TypeOf(cat{}) {
		t.Errorf("Abel type = %v, want cat", classes[0].Type)
	}
}
