package parse

type parseOpts struct {
	ctl      Control
	stats    *Stats
	maxDepth int
}

type ParseOption func(*parseOpts)

// ParseControl replaces the whole Control.
func ParseControl(c Control) ParseOption {
	return func(o *parseOpts) { o.ctl = c }
}
func FlexibleKeys(v bool) ParseOption {
	return func(o *parseOpts) { o.ctl.AllowFlexibleKeys = v }
}
func FlexibleStrings(v bool) ParseOption {
	return func(o *parseOpts) { o.ctl.AllowFlexibleStrings = v }
}
func NocaseValues(v bool) ParseOption {
	return func(o *parseOpts) { o.ctl.AllowNocaseValues = v }
}
func DuplicateKeys(d DupKey) ParseOption {
	return func(o *parseOpts) { o.ctl.DupKey = d }
}

// ParseStats makes the parse fill in s, including when it fails.
func ParseStats(s *Stats) ParseOption {
	return func(o *parseOpts) { o.stats = s }
}

// MaxDepth bounds container nesting. Zero, the default, is unlimited.
func MaxDepth(n int) ParseOption {
	return func(o *parseOpts) { o.maxDepth = n }
}

// GetControl returns the Control the given options produce.
func GetControl(opts ...ParseOption) Control {
	pOpts := &parseOpts{}
	for _, f := range opts {
		f(pOpts)
	}
	return pOpts.ctl
}
