package domain

// ApplyQuery фильтрует набор записей, считает общее количество совпадений
// и вырезает запрошенную страницу. Порядок записей сохраняется.
// pageSize < 1 заменяется на DefaultPageSize; чтобы подставить настроенный
// размер страницы, вызывающий сначала делает req.Normalize.
func ApplyQuery(dataset []Project, req QueryRequest) QueryResponse {
	filter := CompileFilters(req.Filters)

	matches := make([]int, 0, len(dataset))
	for i := range dataset {
		if filter.Matches(&dataset[i]) {
			matches = append(matches, i)
		}
	}

	start, end := req.Pagination().Window(len(matches))
	data := make([]Project, 0, end-start)
	for _, i := range matches[start:end] {
		data = append(data, dataset[i])
	}

	return QueryResponse{
		Data:  data,
		Total: len(matches),
	}
}
