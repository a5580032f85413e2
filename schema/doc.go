// Package schema models a practical subset of JSON-Schema draft 2020-12:
// the top level $schema, $id, title, description, type, properties and
// required keywords, and per property the numeric, string, array and
// object facets.
//
// A [Schema] is built from a parsed document with [FromValue], which
// checks the document's own consistency: facets must match the declared
// types and every required name must be a declared property. Documents
// are not validated against a schema.
package schema
