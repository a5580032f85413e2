// Package libdiff computes structural differences between documents.
//
// A diff is itself a document. Changed object keys map to the diff of
// their values, changed array positions map to the diff of the elements
// found there, and a value that changed as a whole becomes
//
//	{"-": <from>, "+": <to>}
//
// with a missing side omitted for inserts and deletes. Replaced strings
// also carry a "~" entry holding the character level patch text.
package libdiff
