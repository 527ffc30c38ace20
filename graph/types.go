package graph

// MaxPrice is the largest representable ticket price on the wire (2^16-1),
// per the input contract's PRICE field.
const MaxPrice = 65535

// Edge is a single directed, day-labelled route: a flight from Src to Dst,
// usable only on day Day, costing Price.
type Edge struct {
	Src   int
	Dst   int
	Day   int
	Price int
}
