package domain

const (
	DefaultPage     = 1
	DefaultPageSize = 10
)

// Pagination параметры пагинации
type Pagination struct {
	Page     int `json:"page"`
	PageSize int `json:"pageSize"`
}

// NewPagination создаёт параметры пагинации с валидацией.
// page < 1 становится 1, pageSize < 1 становится DefaultPageSize.
// Верхней границы у pageSize нет.
func NewPagination(page, pageSize int) Pagination {
	return NewPaginationWithDefault(page, pageSize, DefaultPageSize)
}

// NewPaginationWithDefault как NewPagination, но pageSize < 1 становится
// defaultPageSize (настраиваемый размер страницы сервера)
func NewPaginationWithDefault(page, pageSize, defaultPageSize int) Pagination {
	if defaultPageSize < 1 {
		defaultPageSize = DefaultPageSize
	}
	if page < 1 {
		page = DefaultPage
	}
	if pageSize < 1 {
		pageSize = defaultPageSize
	}
	return Pagination{
		Page:     page,
		PageSize: pageSize,
	}
}

// Offset возвращает индекс первой записи страницы
func (p Pagination) Offset() int {
	return (p.Page - 1) * p.PageSize
}

// Limit возвращает максимальное число записей на странице
func (p Pagination) Limit() int {
	return p.PageSize
}

// Window возвращает границы [start, end) страницы в последовательности длины n.
// Значения, собранные не через NewPagination, сначала нормализуются.
func (p Pagination) Window(n int) (start, end int) {
	if p.Page < 1 || p.PageSize < 1 {
		p = NewPagination(p.Page, p.PageSize)
	}
	// Проверка до умножения: page*pageSize может переполнить int
	if p.Page-1 > n/p.PageSize {
		return n, n
	}
	start = min(p.Offset(), n)
	end = start + min(p.Limit(), n-start)
	return start, end
}

// PageCount возвращает количество страниц для total записей
func PageCount(total, pageSize int) int {
	if pageSize < 1 || total <= 0 {
		return 0
	}
	pages := total / pageSize
	if total%pageSize > 0 {
		pages++
	}
	return pages
}

// QueryRequest запрос страницы таблицы.
// Filters: колонка -> значения через запятую.
type QueryRequest struct {
	Page     int               `json:"page"`
	PageSize int               `json:"pageSize"`
	Filters  map[string]string `json:"filters"`
}

// Pagination возвращает нормализованные параметры пагинации запроса
func (r QueryRequest) Pagination() Pagination {
	return NewPagination(r.Page, r.PageSize)
}

// Normalize возвращает запрос с зажатыми page/pageSize и непустой map фильтров
func (r QueryRequest) Normalize(defaultPageSize int) QueryRequest {
	p := NewPaginationWithDefault(r.Page, r.PageSize, defaultPageSize)
	filters := r.Filters
	if filters == nil {
		filters = map[string]string{}
	}
	return QueryRequest{
		Page:     p.Page,
		PageSize: p.PageSize,
		Filters:  filters,
	}
}

// QueryResponse страница данных и общее число совпавших записей
type QueryResponse struct {
	Data  []Project `json:"data"`
	Total int       `json:"total"`
}
