// Package encode writes [ir.Value] documents as JSON text, compact or
// pretty printed according to a [format.Format], optionally colourised,
// and as YAML.
//
// Strings in no-quotes mode are only left bare when the relaxed parser
// reads them back as strings, so
//
//	parse.ParseString(s, parse.FlexibleStrings(true), parse.FlexibleKeys(true))
//
// accepts any output of this package.
package encode
