package api

import (
	"github.com/itchyny/gojq"

	"github.com/routerops/mikrotik-mcp/pkg/logs"
)

func FilterByJQ(entries []logs.Entry, q *gojq.Query) ([]logs.Entry, error) {
	out, err := filterByJQ(entries, q)
	if err != nil {
		return nil, err
	}
	return out, nil
}
