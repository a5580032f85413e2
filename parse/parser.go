package parse

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/signadot/rjson/debug"
	"github.com/signadot/rjson/ir"
	"github.com/signadot/rjson/token"
)

// parser is a recursive descent parser over a token.Cursor. One parser
// is used for exactly one document.
type parser struct {
	cur      token.Cursor
	ctl      Control
	st       *Stats
	lines    token.Lines
	stack    []ir.Type
	maxDepth int
	scratch  []byte
}

func newParser(c token.Cursor, o *parseOpts, st *Stats) *parser {
	return &parser{
		cur:      c,
		ctl:      o.ctl,
		st:       st,
		lines:    token.NewLines(),
		maxDepth: o.maxDepth,
	}
}

func (p *parser) peek() (byte, bool) {
	return p.cur.Peek()
}

// next consumes the current byte, recording it if it is a newline.
func (p *parser) next() (byte, bool) {
	if c, ok := p.cur.Peek(); ok && c == '\n' {
		p.lines.Newline(p.cur.Offset())
	}
	return p.cur.Next()
}

func (p *parser) pos() token.Pos {
	return p.lines.Pos(p.cur.Offset())
}

func (p *parser) errorf(cause error, format string, args ...any) error {
	msg := fmt.Sprintf(format, args...)
	return token.NewPosErr(fmt.Errorf("%w: %w: %s", ErrParse, cause, msg), p.pos())
}

func (p *parser) eofErr() error {
	if err := p.cur.Err(); err != nil {
		return token.NewPosErr(fmt.Errorf("%w: read error: %w", ErrParse, err), p.pos())
	}
	return p.errorf(token.ErrUnterminated, "End of data reached")
}

func (p *parser) push(t ir.Type) error {
	if p.maxDepth > 0 && len(p.stack) >= p.maxDepth {
		return p.errorf(ErrMaxDepth, "nesting deeper than %d", p.maxDepth)
	}
	p.stack = append(p.stack, t)
	return nil
}

func (p *parser) pop() {
	p.stack = p.stack[:len(p.stack)-1]
}

// closer returns the closing delimiter of the innermost container.
func (p *parser) closer() byte {
	if len(p.stack) == 0 {
		return 0
	}
	if p.stack[len(p.stack)-1] == ir.ObjectType {
		return '}'
	}
	return ']'
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	}
	return false
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

func isHex(c byte) bool {
	return isDigit(c) || ('a' <= c && c <= 'f') || ('A' <= c && c <= 'F')
}

// skipSpace skips any mix of whitespace, '#' and '//' line comments and
// '/* */' block comments.
func (p *parser) skipSpace() error {
	for {
		c, ok := p.peek()
		for ok && isSpace(c) {
			c, ok = p.next()
		}
		if !ok {
			return nil
		}
		switch c {
		case '#':
			p.skipLine()
		case '/':
			c, ok = p.next()
			if !ok {
				return p.errorf(token.ErrUnexpected, "End of data reached after /")
			}
			switch c {
			case '/':
				p.skipLine()
			case '*':
				if err := p.skipBlock(); err != nil {
					return err
				}
			default:
				return p.errorf(token.ErrUnexpected, "Invalid comment start /%c", c)
			}
		default:
			return nil
		}
	}
}

// skipLine leaves the cursor on the terminating newline, if any.
func (p *parser) skipLine() {
	c, ok := p.next()
	for ok && c != '\n' {
		c, ok = p.next()
	}
}

// skipBlock is called with the cursor on the '*' of "/*".
func (p *parser) skipBlock() error {
	pos := p.pos()
	c, ok := p.next()
	for ok {
		if c != '*' {
			c, ok = p.next()
			continue
		}
		c, ok = p.next()
		if ok && c == '/' {
			p.next()
			return nil
		}
	}
	if err := p.cur.Err(); err != nil {
		return p.eofErr()
	}
	return token.NewPosErr(fmt.Errorf("%w: %w: comment not closed with */", ErrParse, token.ErrUnterminated), pos)
}

func (p *parser) parseDoc() (*ir.Value, error) {
	if err := p.skipSpace(); err != nil {
		return nil, err
	}
	c, ok := p.peek()
	if !ok {
		if err := p.cur.Err(); err != nil {
			return nil, p.eofErr()
		}
		return nil, p.errorf(token.ErrEmptyDoc, "End of data reached")
	}
	root := ir.Null()
	var err error
	switch c {
	case '{':
		err = p.parseObject(root)
	case '[':
		err = p.parseArray(root)
	default:
		return nil, p.errorf(token.ErrUnexpected, "Expecting { or [ but found [%c]", c)
	}
	if err != nil {
		return nil, err
	}
	if err := p.skipSpace(); err != nil {
		return nil, err
	}
	if c, ok := p.peek(); ok {
		return nil, p.errorf(token.ErrUnexpected, "Unexpected data [%c] after the root %s", c, root.Type())
	}
	if err := p.cur.Err(); err != nil {
		return nil, p.eofErr()
	}
	return root, nil
}

// parseObject is called with the cursor on '{' and returns with the
// cursor past the matching '}'.
func (p *parser) parseObject(v *ir.Value) error {
	if err := p.push(ir.ObjectType); err != nil {
		return err
	}
	if debug.Parse() {
		debug.Logf("parse: object at %s\n", p.pos())
	}
	p.st.Objects++
	v.SetObject()
	for first := true; ; first = false {
		p.next()
		if err := p.skipSpace(); err != nil {
			return err
		}
		c, ok := p.peek()
		if !ok {
			return p.eofErr()
		}
		if c == '}' && first {
			p.next()
			p.pop()
			return nil
		}
		if err := p.parseEntry(v); err != nil {
			return err
		}
		c, ok = p.peek()
		switch {
		case !ok:
			return p.eofErr()
		case c == ',':
		case c == '}':
			p.next()
			p.pop()
			return nil
		default:
			return p.errorf(token.ErrUnexpected, "Expecting , or } but found [%c]", c)
		}
	}
}

// parseEntry parses one "key : value" pair into obj, applying the
// duplicate key policy.
func (p *parser) parseEntry(obj *ir.Value) error {
	keyPos := p.pos()
	key, err := p.parseString(true)
	if err != nil {
		return err
	}
	p.st.Keys++
	if err := p.skipSpace(); err != nil {
		return err
	}
	c, ok := p.peek()
	if !ok {
		return p.eofErr()
	}
	if c != ':' {
		return p.errorf(token.ErrUnexpected, "Expecting : after key [%s] but found [%c]", key, c)
	}
	p.next()
	if err := p.skipSpace(); err != nil {
		return err
	}
	if !obj.HasKey(key) {
		e, _ := obj.Entry(key)
		return p.parseValue(e)
	}
	switch p.ctl.DupKey {
	case Reject:
		return token.NewPosErr(fmt.Errorf("%w: %w: Duplicate key [%s]", ErrParse, token.ErrDupKey, key), keyPos)
	case Ignore:
		return p.parseValue(ir.Null())
	case Append:
		e, _ := obj.Entry(key)
		if !e.IsArray() {
			old := e.Take()
			e.Push(old)
		}
		elt, _ := e.Append()
		return p.parseValue(elt)
	default:
		e, _ := obj.Entry(key)
		return p.parseValue(e)
	}
}

// parseArray is called with the cursor on '[' and returns with the
// cursor past the matching ']'.
func (p *parser) parseArray(v *ir.Value) error {
	if err := p.push(ir.ArrayType); err != nil {
		return err
	}
	if debug.Parse() {
		debug.Logf("parse: array at %s\n", p.pos())
	}
	p.st.Arrays++
	v.SetArray()
	for first := true; ; first = false {
		p.next()
		if err := p.skipSpace(); err != nil {
			return err
		}
		c, ok := p.peek()
		if !ok {
			return p.eofErr()
		}
		if c == ']' && first {
			p.next()
			p.pop()
			return nil
		}
		elt, _ := v.Append()
		if err := p.parseValue(elt); err != nil {
			return err
		}
		c, ok = p.peek()
		switch {
		case !ok:
			return p.eofErr()
		case c == ',':
		case c == ']':
			p.next()
			p.pop()
			return nil
		default:
			return p.errorf(token.ErrUnexpected, "Expecting , or ] but found [%c]", c)
		}
	}
}

// parseValue parses any value into v and skips the whitespace and
// comments that follow it.
func (p *parser) parseValue(v *ir.Value) error {
	c, ok := p.peek()
	if !ok {
		return p.eofErr()
	}
	var err error
	switch {
	case c == '{':
		err = p.parseObject(v)
	case c == '[':
		err = p.parseArray(v)
	case c == '"':
		var s string
		s, err = p.parseString(false)
		if err == nil {
			v.SetString(s)
			p.st.Strings++
		}
	case c == '-' || isDigit(c):
		err = p.parseNumber(v)
		if err == nil {
			p.st.Numbers++
		}
	case c == ',' || c == p.closer():
		return p.errorf(token.ErrUnexpected, "Expecting a value but found [%c]", c)
	default:
		err = p.parseLiteral(v)
	}
	if err != nil {
		return err
	}
	return p.skipSpace()
}

func (p *parser) isDelim(c byte) bool {
	return c == ',' || isSpace(c) || c == p.closer()
}

var literals = map[string]*ir.Value{
	"null":  ir.Null(),
	"true":  ir.FromBool(true),
	"false": ir.FromBool(false),
}

var nocaseLiterals = map[string]*ir.Value{
	"Null":  ir.Null(),
	"NULL":  ir.Null(),
	"True":  ir.FromBool(true),
	"TRUE":  ir.FromBool(true),
	"False": ir.FromBool(false),
	"FALSE": ir.FromBool(false),
}

const maxLiteral = 6

// parseLiteral matches null, true or false, falling back to an unquoted
// string when flexible strings are allowed.
func (p *parser) parseLiteral(v *ir.Value) error {
	p.cur.Mark()
	saved := p.lines
	var buf [maxLiteral]byte
	n := 0
	c, ok := p.peek()
	for ok && n < maxLiteral && !p.isDelim(c) {
		buf[n] = c
		n++
		c, ok = p.next()
	}
	word := string(buf[:n])
	complete := !ok || p.isDelim(c)
	if complete {
		lit, found := literals[word]
		if !found && p.ctl.AllowNocaseValues {
			lit, found = nocaseLiterals[word]
		}
		if found {
			p.cur.Unmark()
			if lit.IsNull() {
				v.SetNull()
				p.st.Nulls++
				return nil
			}
			b, _ := lit.Bool()
			v.SetBool(b)
			p.st.Booleans++
			return nil
		}
	}
	if p.ctl.AllowFlexibleStrings {
		if err := p.cur.Rewind(); err != nil {
			return token.NewPosErr(fmt.Errorf("%w: %w", ErrParse, err), p.pos())
		}
		p.lines = saved
		s, err := p.parseString(false)
		if err != nil {
			return err
		}
		v.SetString(s)
		p.st.Strings++
		return nil
	}
	p.cur.Unmark()
	if !complete {
		word += "..."
	}
	return p.errorf(token.ErrUnexpected, "Invalid value [%s]. Did you miss enclosing in \"\"?", word)
}

// parseString reads a key or a string value. The cursor is left after
// the closing quote, or on the terminator of an unquoted string.
func (p *parser) parseString(isKey bool) (string, error) {
	role := "string"
	flexible := p.ctl.AllowFlexibleStrings
	if isKey {
		role = "key"
		flexible = p.ctl.AllowFlexibleKeys
	}
	c, ok := p.peek()
	if !ok {
		return "", p.eofErr()
	}
	quoted := c == '"'
	if !quoted && !flexible {
		return "", p.errorf(token.ErrUnexpected, "Missing \" at the start of %s, found [%c]", role, c)
	}
	start := p.pos()
	sb := &strings.Builder{}
	if quoted {
		c, ok = p.next()
	}
	for {
		if !ok {
			if p.cur.Err() != nil {
				return "", p.eofErr()
			}
			if quoted {
				return "", token.NewPosErr(fmt.Errorf("%w: %w: Missing \" to end %s", ErrParse, token.ErrUnterminated, role), start)
			}
			return "", p.errorf(token.ErrUnterminated, "End of data reached in unquoted %s", role)
		}
		if quoted {
			if c == '"' {
				p.next()
				return sb.String(), nil
			}
		} else {
			if isSpace(c) || (isKey && c == ':') || (!isKey && (c == ',' || c == p.closer())) {
				if sb.Len() == 0 {
					return "", p.errorf(token.ErrUnexpected, "Empty unquoted %s", role)
				}
				return sb.String(), nil
			}
			if c == '"' {
				return "", p.errorf(token.ErrUnexpected, "Unescaped \" in unquoted %s", role)
			}
		}
		if c == '\\' {
			if err := p.parseEscape(sb); err != nil {
				return "", err
			}
		} else {
			sb.WriteByte(c)
		}
		c, ok = p.next()
	}
}

// parseEscape is called with the cursor on a backslash and leaves it on
// the last byte of the escape sequence.
func (p *parser) parseEscape(sb *strings.Builder) error {
	c, ok := p.next()
	if !ok {
		return p.eofErr()
	}
	switch c {
	case '/', '\\', '"':
		sb.WriteByte(c)
	case 'b':
		sb.WriteByte('\b')
	case 'f':
		sb.WriteByte('\f')
	case 'n':
		sb.WriteByte('\n')
	case 'r':
		sb.WriteByte('\r')
	case 't':
		sb.WriteByte('\t')
	case 'u':
		// kept verbatim, not decoded
		sb.WriteString(`\u`)
		for range 4 {
			c, ok = p.next()
			if !ok {
				return p.eofErr()
			}
			if !isHex(c) {
				return p.errorf(token.ErrBadEscape, "Invalid hex digit [%c] in \\u escape", c)
			}
			sb.WriteByte(c)
		}
	default:
		return p.errorf(token.ErrBadEscape, "Invalid escape sequence \\%c", c)
	}
	return nil
}

// parseNumber is called with the cursor on '-' or a digit.
func (p *parser) parseNumber(v *ir.Value) error {
	lit := p.scratch[:0]
	defer func() { p.scratch = lit[:0] }()
	var frac, exp bool
	c, ok := p.peek()
	neg := c == '-'
	if neg {
		lit = append(lit, c)
		c, ok = p.next()
	}
	if !ok || !isDigit(c) {
		return p.numberErr(c, ok, "Expecting a digit after -")
	}
	if c == '0' {
		lit = append(lit, c)
		c, ok = p.next()
		if ok && isDigit(c) {
			return p.errorf(token.ErrNumberLeadingZero, "Invalid number: 0 followed by digit [%c]", c)
		}
	} else {
		for ok && isDigit(c) {
			lit = append(lit, c)
			c, ok = p.next()
		}
	}
	if ok && c == '.' {
		frac = true
		lit = append(lit, c)
		c, ok = p.next()
		if !ok || !isDigit(c) {
			return p.numberErr(c, ok, "Expecting a digit after .")
		}
		for ok && isDigit(c) {
			lit = append(lit, c)
			c, ok = p.next()
		}
	}
	if ok && (c == 'e' || c == 'E') {
		exp = true
		lit = append(lit, c)
		c, ok = p.next()
		if ok && (c == '+' || c == '-') {
			lit = append(lit, c)
			c, ok = p.next()
		}
		if !ok || !isDigit(c) {
			return p.numberErr(c, ok, "Expecting a digit in exponent")
		}
		for ok && isDigit(c) {
			lit = append(lit, c)
			c, ok = p.next()
		}
	}
	if ok && !isSpace(c) && c != ',' && c != p.closer() && c != '/' && c != '#' {
		return p.errorf(token.ErrUnexpected, "Unexpected character [%c] after number %s", c, lit)
	}
	s := string(lit)
	switch {
	case frac || exp:
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return p.convErr(s, err)
		}
		v.SetFloat(f)
	case neg:
		i, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return p.convErr(s, err)
		}
		v.SetInt(i)
	default:
		u, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			return p.convErr(s, err)
		}
		v.SetUint(u)
	}
	return nil
}

func (p *parser) numberErr(c byte, ok bool, msg string) error {
	if !ok {
		return p.eofErr()
	}
	return p.errorf(token.ErrNumber, "%s, found [%c]", msg, c)
}

func (p *parser) convErr(lit string, err error) error {
	var ne *strconv.NumError
	if errors.As(err, &ne) {
		err = ne.Err
	}
	return p.errorf(token.ErrNumber, "Invalid number [%s]: %v", lit, err)
}
