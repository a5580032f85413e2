// Package patch applies RFC 6902 JSON patches and RFC 7386 merge patches
// to documents.
//
// Documents pass through a JSON encoding on the way to the patch engine,
// so object keys of the result are in the engine's order and strings are
// read back with the default parser, which keeps \u escapes verbatim.
package patch
