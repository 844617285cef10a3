package model

import (
	"fmt"
	"strconv"
	"strings"
)

type pairIndexer struct{}

func (indexer *pairIndexer) Variable(i, j int) string {
	return fmt.Sprintf("x_%d_%d", i, j)
}

func (indexer *pairIndexer) Pair(name string) (int, int, error) {
	splits := strings.Split(name, "_")
	if len(splits) != 3 || splits[0] != "x" {
		return 0, 0, fmt.Errorf("%q is not a pair variable", name)
	}

	i, err := strconv.Atoi(splits[1])
	if err != nil {
		return 0, 0, fmt.Errorf("%q is not a pair variable: %v", name, err)
	}
	j, err := strconv.Atoi(splits[2])
	if err != nil {
		return 0, 0, fmt.Errorf("%q is not a pair variable: %v", name, err)
	}

	return i, j, nil
}
