package json

import (
	jsoniter "github.com/json-iterator/go"
	"github.com/stoewer/go-strcase"
)

type fieldNaming struct {
	jsoniter.DummyExtension

	rename func(string) string
}

// FieldNaming returns an extension that names untagged struct fields with rename.
// Fields carrying a json tag keep the tagged name.
func FieldNaming(rename func(string) string) jsoniter.Extension {
	return &fieldNaming{rename: rename}
}

func (e *fieldNaming) UpdateStructDescriptor(desc *jsoniter.StructDescriptor) {
	for _, binding := range desc.Fields {
		// unexported fields carry no names
		if len(binding.FromNames) == 0 && len(binding.ToNames) == 0 {
			continue
		}

		if _, tagged := binding.Field.Tag().Lookup("json"); tagged {
			continue
		}

		name := e.rename(binding.Field.Name())
		binding.FromNames = []string{name}
		binding.ToNames = []string{name}
	}
}

// SnakeCase converts a Go identifier such as "BaseURL" into "base_url".
func SnakeCase(name string) string {
	return strcase.SnakeCase(name)
}
