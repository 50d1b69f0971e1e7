package query

const (
	defaultPageSize = 10
	maxPageSize     = 100
)

type Page struct {
	Number int
	Size   int
}

func DefaultPage() Page {
	return Page{Number: 1, Size: defaultPageSize}
}

func NewPage(number, size int) Page {
	p := Page{Number: number, Size: size}
	p.normalize()
	return p
}

func (p *Page) normalize() {
	if p.Number < 1 {
		p.Number = 1
	}
	if p.Size < 1 {
		p.Size = defaultPageSize
	}
	if p.Size > maxPageSize {
		p.Size = maxPageSize
	}
}

func (p Page) offset() int {
	return (p.Number - 1) * p.Size
}

type Result[T any] struct {
	Data       []T   `json:"data"`
	Page       int   `json:"page"`
	Size       int   `json:"size"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"totalPages"`
}

func (r *Result[T]) HasNext() bool {
	return r.Page < r.TotalPages
}

// Map converts the items of a page, keeping its counters.
func Map[T any, U any](r *Result[T], fn func(T) U) *Result[U] {
	out := &Result[U]{
		Data:       make([]U, 0, len(r.Data)),
		Page:       r.Page,
		Size:       r.Size,
		Total:      r.Total,
		TotalPages: r.TotalPages,
	}
	for _, item := range r.Data {
		out.Data = append(out.Data, fn(item))
	}
	return out
}

// Paginate counts the matching rows and loads one page of them, converting
// each row with converter.
func Paginate[Row any, Domain any](
	q *Query[Row],
	page Page,
	converter func(*Row) (*Domain, error),
) (*Result[*Domain], error) {
	page.normalize()

	total, err := q.Count()
	if err != nil {
		return nil, err
	}

	var rows []Row
	if err := q.ordered().Offset(page.offset()).Limit(page.Size).Find(&rows).Error; err != nil {
		return nil, err
	}

	items, err := convertAll(rows, converter)
	if err != nil {
		return nil, err
	}

	totalPages := int((total + int64(page.Size) - 1) / int64(page.Size))
	if totalPages == 0 {
		totalPages = 1
	}

	return &Result[*Domain]{
		Data:       items,
		Page:       page.Number,
		Size:       page.Size,
		Total:      total,
		TotalPages: totalPages,
	}, nil
}
