package shape

// Category tells which ordering guarantee a container gives to its elements.
type Category int

const (
	CategoryUnknown   Category = iota
	CategoryOrdered            // iteration follows insertion order
	CategoryUnordered          // iteration order is unspecified
	CategorySorted             // iteration follows the element ordering
)

// String returns a human-readable category name.
func (c Category) String() string {
	switch c {
	case CategoryOrdered:
		return "ordered"
	case CategoryUnordered:
		return "unordered"
	case CategorySorted:
		return "sorted"
	default:
		return "unknown"
	}
}
