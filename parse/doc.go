// Package parse reads relaxed JSON into an [ir.Value].
//
// Input is strict JSON plus '#', '//' and '/* */' comments wherever
// whitespace may appear. The root must be an object or an array. A
// [Control] may further allow
//
//   - unquoted object keys, ended by whitespace or ':'
//   - unquoted string values, ended by whitespace, ',' or the enclosing
//     container's closing delimiter
//   - the spellings Null, NULL, True, TRUE, False and FALSE
//
// and chooses how repeated object keys are resolved, see [DupKey].
//
// Numbers keep the subtype of their literal: a fraction or exponent
// gives a double, a leading '-' a signed integer and anything else an
// unsigned integer. A "\uXXXX" escape is kept as its six literal bytes
// rather than decoded.
//
// Errors wrap [ErrParse] and are *[token.PosErr] values carrying the
// line and column of the failure. Failed parses return no value, but
// statistics requested with [ParseStats] are still filled in.
package parse
