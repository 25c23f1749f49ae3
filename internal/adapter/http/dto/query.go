package dto

import (
	"encoding/json"
	"net/url"
	"strconv"

	"github.com/plastinin/projectgrid/internal/domain"
)

// Имена параметров строки запроса
const (
	ParamPage     = "page"
	ParamPageSize = "pageSize"
	ParamFilters  = "filters"
)

// EncodeQuery кодирует запрос страницы в параметры URL.
// filters передаётся как JSON объект колонка -> значение.
func EncodeQuery(req domain.QueryRequest) (url.Values, error) {
	filters := req.Filters
	if filters == nil {
		filters = map[string]string{}
	}
	encoded, err := json.Marshal(filters)
	if err != nil {
		return nil, err
	}

	q := url.Values{}
	q.Set(ParamPage, strconv.Itoa(req.Page))
	q.Set(ParamPageSize, strconv.Itoa(req.PageSize))
	q.Set(ParamFilters, string(encoded))
	return q, nil
}

// DecodeQuery разбирает параметры URL в запрос страницы.
// Отсутствующие параметры получают значения по умолчанию: page=1,
// pageSize=defaultPageSize, filters={}. page < 1 приводится к 1,
// pageSize < 1 к defaultPageSize. Нечисловые page/pageSize и
// некорректный JSON в filters возвращают *domain.InvalidQueryError.
func DecodeQuery(q url.Values, defaultPageSize int) (domain.QueryRequest, error) {
	page, err := intParam(q, ParamPage, domain.DefaultPage)
	if err != nil {
		return domain.QueryRequest{}, err
	}
	pageSize, err := intParam(q, ParamPageSize, defaultPageSize)
	if err != nil {
		return domain.QueryRequest{}, err
	}

	var filters map[string]string
	if raw := q.Get(ParamFilters); raw != "" {
		if err := json.Unmarshal([]byte(raw), &filters); err != nil {
			return domain.QueryRequest{}, &domain.InvalidQueryError{
				Param:  ParamFilters,
				Reason: "must be a JSON object of string values",
				Err:    err,
			}
		}
	}

	// page < 1 и pageSize < 1 зажимаются, JSON null даёт пустые фильтры
	return domain.QueryRequest{
		Page:     page,
		PageSize: pageSize,
		Filters:  filters,
	}.Normalize(defaultPageSize), nil
}

func intParam(q url.Values, name string, def int) (int, error) {
	raw := q.Get(name)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, &domain.InvalidQueryError{
			Param:  name,
			Reason: "must be an integer",
			Err:    err,
		}
	}
	return v, nil
}
