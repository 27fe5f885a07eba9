package src

// ----------------------------- base interface -------------------------

type empty interface {
	IsEmpty() bool
}

type length interface {
	Len() int
}

// ----------------------------- collection interface -------------------------

// Collection is what Stack and Queue have in common besides their
// insert and remove disciplines.
type Collection interface {
	empty
	length
	Values() []Node
	Clear()
}

var (
	_ Collection = (*Stack)(nil)
	_ Collection = (*Queue)(nil)
	_ Collection = (*List)(nil)
)
