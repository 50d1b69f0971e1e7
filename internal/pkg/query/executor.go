package query

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// ParsePageFromGin reads ?page= and ?limit= (or ?size=) from the request.
func ParsePageFromGin(c *gin.Context) Page {
	number, _ := strconv.Atoi(c.DefaultQuery("page", "1"))

	sizeStr := c.Query("limit")
	if sizeStr == "" {
		sizeStr = c.DefaultQuery("size", strconv.Itoa(defaultPageSize))
	}
	size, _ := strconv.Atoi(sizeStr)

	return NewPage(number, size)
}

// ExecuteAll loads every matching row, converting each one.
func ExecuteAll[Row any, Domain any](
	q *Query[Row],
	converter func(*Row) (*Domain, error),
) ([]*Domain, error) {
	rows, err := q.Find()
	if err != nil {
		return nil, err
	}
	return convertAll(rows, converter)
}

func convertAll[Row any, Domain any](rows []Row, converter func(*Row) (*Domain, error)) ([]*Domain, error) {
	items := make([]*Domain, 0, len(rows))
	for i := range rows {
		item, err := converter(&rows[i])
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}
