package keymap

import (
	"fmt"

	"github.com/tidwall/pretty"
	"github.com/tidwall/sjson"
)

// Export renders the bindings of the given tables as a keymap JSON document
// that LoadBytes reads back.
func Export(tables ...*Table) ([]byte, error) {
	doc, err := sjson.SetRawBytes([]byte(`{}`), "bindings", []byte(`[]`))
	if err != nil {
		return nil, fmt.Errorf("exporting keymap: %w", err)
	}

	for _, t := range tables {
		for _, b := range t.bindings {
			obj, err := exportBinding(t.Name, b)
			if err != nil {
				return nil, fmt.Errorf("exporting %s: %w", b, err)
			}
			if doc, err = sjson.SetRawBytes(doc, "bindings.-1", obj); err != nil {
				return nil, fmt.Errorf("exporting %s: %w", b, err)
			}
		}
	}

	return pretty.Pretty(doc), nil
}

type exportField struct {
	path  string
	value any
}

func exportBinding(mode string, b Binding) ([]byte, error) {
	fields := []exportField{
		{"mode", mode},
		{"keys", b.Keys.String()},
		{"command", b.Command},
	}
	if len(b.Args) > 0 {
		fields = append(fields, exportField{"args", b.Args})
	}

	obj := []byte(`{}`)
	var err error
	for _, f := range fields {
		if obj, err = sjson.SetBytes(obj, f.path, f.value); err != nil {
			return nil, err
		}
	}
	return obj, nil
}
