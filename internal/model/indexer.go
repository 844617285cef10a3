package model

// Indexer interface is designed to give a unique LP variable name to an ordered pair of guests and vice versa
type Indexer interface {
	// Returns the variable name encoding "guest i sits next to guest j"
	Variable(i, j int) string
	// Returns the ordered guest pair encoded by a variable name
	Pair(name string) (i int, j int, err error)
}

func NewIndexer() Indexer {
	return &pairIndexer{}
}
