package table

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/plastinin/projectgrid/internal/client"
	"github.com/plastinin/projectgrid/internal/domain"
	"go.uber.org/zap"
)

var (
	ErrFilterIndexOutOfRange = errors.New("filter index out of range")
	ErrUnknownFilterPart     = errors.New("unknown filter part")
)

// Fetcher загружает страницу проектов
type Fetcher interface {
	FetchPage(ctx context.Context, req domain.QueryRequest) (*domain.QueryResponse, error)
}

// FilterPart редактируемая часть строки фильтра
type FilterPart string

const (
	FilterColumn FilterPart = "column"
	FilterValue  FilterPart = "value"
)

// State снимок состояния таблицы
type State struct {
	Page      int
	PageSize  int
	Filters   []domain.FilterClause
	Rows      []domain.Project
	Total     int
	PageCount int
	HasPrev   bool
	HasNext   bool
}

// Controller владеет состоянием пагинации и фильтров таблицы.
// Каждое изменение состояния сразу же запускает загрузку страницы, без debounce:
// ввод значения фильтра по символу даёт запрос на каждый символ.
// Ответы применяются по принципу latest-wins: каждый запрос получает
// возрастающий номер, ответ с номером не больше последнего применённого
// отбрасывается.
type Controller struct {
	fetcher Fetcher
	columns []Column
	logger  *zap.Logger

	mu       sync.Mutex
	page     int
	pageSize int
	filters  []domain.FilterClause
	rows     []domain.Project
	total    int
	issued   uint64
	applied  uint64
}

// NewController создаёт контроллер на первой странице без фильтров.
// pageSize < 1 заменяется на domain.DefaultPageSize.
func NewController(fetcher Fetcher, columns []Column, pageSize int, logger *zap.Logger) *Controller {
	if pageSize < 1 {
		pageSize = domain.DefaultPageSize
	}
	return &Controller{
		fetcher:  fetcher,
		columns:  columns,
		logger:   logger,
		page:     domain.DefaultPage,
		pageSize: pageSize,
	}
}

// Refresh загружает текущую страницу
func (c *Controller) Refresh(ctx context.Context) error {
	return c.mutate(ctx, func() bool { return true })
}

// AddFilter добавляет пустую строку фильтра
func (c *Controller) AddFilter(ctx context.Context) error {
	return c.mutate(ctx, func() bool {
		c.filters = append(c.filters, domain.FilterClause{})
		return true
	})
}

// UpdateFilter меняет колонку или значение строки фильтра
func (c *Controller) UpdateFilter(ctx context.Context, index int, part FilterPart, value string) error {
	var err error
	fetchErr := c.mutate(ctx, func() bool {
		if index < 0 || index >= len(c.filters) {
			err = fmt.Errorf("%w: %d", ErrFilterIndexOutOfRange, index)
			return false
		}
		updated := slices.Clone(c.filters)
		switch part {
		case FilterColumn:
			updated[index].Column = value
		case FilterValue:
			updated[index].Value = value
		default:
			err = fmt.Errorf("%w: %q", ErrUnknownFilterPart, part)
			return false
		}
		c.filters = updated
		return true
	})
	if err != nil {
		return err
	}
	return fetchErr
}

// RemoveFilter удаляет строку фильтра
func (c *Controller) RemoveFilter(ctx context.Context, index int) error {
	var err error
	fetchErr := c.mutate(ctx, func() bool {
		if index < 0 || index >= len(c.filters) {
			err = fmt.Errorf("%w: %d", ErrFilterIndexOutOfRange, index)
			return false
		}
		c.filters = slices.Delete(slices.Clone(c.filters), index, index+1)
		return true
	})
	if err != nil {
		return err
	}
	return fetchErr
}

// ClearFilters удаляет все фильтры
func (c *Controller) ClearFilters(ctx context.Context) error {
	return c.mutate(ctx, func() bool {
		if len(c.filters) == 0 {
			return false
		}
		c.filters = nil
		return true
	})
}

// SetPage переходит на страницу; page < 1 становится 1
func (c *Controller) SetPage(ctx context.Context, page int) error {
	return c.mutate(ctx, func() bool {
		return c.setPage(max(page, 1))
	})
}

// NextPage переходит на следующую страницу.
// Верхней границы нет: кнопка только выглядит неактивной, см. HasNext.
func (c *Controller) NextPage(ctx context.Context) error {
	return c.mutate(ctx, func() bool {
		return c.setPage(c.page + 1)
	})
}

// PrevPage переходит на предыдущую страницу, не ниже первой
func (c *Controller) PrevPage(ctx context.Context) error {
	return c.mutate(ctx, func() bool {
		return c.setPage(max(c.page-1, 1))
	})
}

// SetPageSize меняет размер страницы; номер страницы сохраняется
func (c *Controller) SetPageSize(ctx context.Context, pageSize int) error {
	return c.mutate(ctx, func() bool {
		if pageSize < 1 || pageSize == c.pageSize {
			return false
		}
		c.pageSize = pageSize
		return true
	})
}

// setPage вызывается под c.mu; false если страница не изменилась
func (c *Controller) setPage(page int) bool {
	if page == c.page {
		return false
	}
	c.page = page
	return true
}

// AvailableColumns колонки, доступные строке фильтра index:
// все, кроме уже выбранных в других строках
func (c *Controller) AvailableColumns(index int) []Column {
	c.mu.Lock()
	defer c.mu.Unlock()

	taken := make(map[string]bool, len(c.filters))
	for i, f := range c.filters {
		if i != index && f.Column != "" {
			taken[f.Column] = true
		}
	}

	available := make([]Column, 0, len(c.columns))
	for _, col := range c.columns {
		if !taken[string(col.Key)] {
			available = append(available, col)
		}
	}
	return available
}

// Columns возвращает колонки таблицы
func (c *Controller) Columns() []Column {
	return c.columns
}

// Snapshot возвращает копию текущего состояния
func (c *Controller) Snapshot() State {
	c.mu.Lock()
	defer c.mu.Unlock()

	pageCount := domain.PageCount(c.total, c.pageSize)
	return State{
		Page:      c.page,
		PageSize:  c.pageSize,
		Filters:   slices.Clone(c.filters),
		Rows:      slices.Clone(c.rows),
		Total:     c.total,
		PageCount: pageCount,
		HasPrev:   c.page > 1,
		HasNext:   c.page < pageCount,
	}
}

// mutate применяет change под блокировкой и, если состояние изменилось,
// загружает страницу для нового состояния
func (c *Controller) mutate(ctx context.Context, change func() bool) error {
	c.mu.Lock()
	if !change() {
		c.mu.Unlock()
		return nil
	}
	c.issued++
	seq := c.issued
	req := client.BuildRequest(c.page, c.pageSize, c.filters)
	c.mu.Unlock()

	resp, err := c.fetcher.FetchPage(ctx, req)

	c.mu.Lock()
	defer c.mu.Unlock()

	if seq <= c.applied {
		c.logger.Debug("Discarding stale page response",
			zap.Uint64("seq", seq),
			zap.Uint64("applied", c.applied),
		)
		return nil
	}
	// Ошибка тоже закрывает номер: более старый ответ после неё уже устарел,
	// строки и total остаются от последнего удачного ответа
	c.applied = seq
	if err != nil {
		return fmt.Errorf("failed to fetch page %d: %w", req.Page, err)
	}

	c.rows = resp.Data
	c.total = resp.Total
	return nil
}
