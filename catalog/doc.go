// Package catalog exports the registered function table for
// documentation and tooling.
//
// Build collects the metadata of every enabled function; YAML renders
// it as a document engines can publish alongside their template docs:
//
//	doc := catalog.Build(funcs.New())
//	data, err := doc.YAML()
//
// Schema returns a JSON Schema for the document shape, so exported
// catalogs can be validated in CI:
//
//	schema, err := catalog.Schema()
package catalog
