package registry

import (
	"reflect"
	"strings"

	"github.com/plugdex-labs/plugdex/modules"
)

// scanModule imports a module and returns the classes defined directly in
// it, in namespace enumeration order. Re-exported classes (defining module
// differs from the scanned one), underscore-prefixed members, and
// interface-kind classes (abstract, by definition not implementations) are
// excluded.
func scanModule(imp modules.Importer, moduleName string) ([]modules.Class, error) {
	ns, err := imp.Import(moduleName)
	if err != nil {
		return nil, err
	}

	var classes []modules.Class
	for _, sym := range ns.Members() {
		if strings.HasPrefix(sym.SymbolName(), "_") {
			continue
		}
		c, ok := sym.(modules.Class)
		if !ok {
			continue
		}
		if c.Module != moduleName {
			continue // imported into this namespace, not defined here
		}
		if c.Type.Kind() == reflect.Interface {
			continue
		}
		classes = append(classes, c)
	}
	return classes, nil
}
