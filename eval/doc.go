// Package eval evaluates expr-lang expressions against documents.
//
// The environment of an expression holds the fields of an object root
// and doc, the whole document, converted to plain Go values. Besides the
// expr builtins such as len and keys, expressions can call
//
//	getpath("/json/pointer")  the value at a JSON pointer
//	typeof(x)                 the document type name of x
//	getenv("NAME")            an environment variable
//
// [Expand] rewrites $[expr] references inside the strings of a
// document.
package eval
