package elementary

// Table maps a 3-bit neighbourhood code to the next state of a cell.
type Table [8]bool

// DecodeRule expands a Wolfram rule number into its lookup table. Bit k of
// rule (least significant first) decides neighbourhood code k.
func DecodeRule(rule uint8) Table {
	var t Table
	for k := range t {
		t[k] = (rule>>k)&1 != 0
	}
	return t
}

// Rule is a Wolfram rule number. Arithmetic on it wraps modulo 256.
type Rule uint8

// Next returns the following rule, wrapping 255 to 0.
func (r Rule) Next() Rule { return r + 1 }

// Prev returns the preceding rule, wrapping 0 to 255.
func (r Rule) Prev() Rule { return r - 1 }

// Add offsets the rule by delta, wrapping in either direction.
func (r Rule) Add(delta int) Rule {
	return Rule(uint8(int(r) + delta%256 + 256))
}

// Table decodes the rule.
func (r Rule) Table() Table { return DecodeRule(uint8(r)) }
