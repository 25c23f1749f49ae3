package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/plastinin/projectgrid/internal/adapter/http/dto"
	"github.com/plastinin/projectgrid/internal/domain"
)

const projectsPath = "/api/projects"

// ErrTransport совпадает с любой *TransportError через errors.Is
var ErrTransport = errors.New("transport error")

// TransportError запрос не выполнен или сервер ответил не 2xx.
// StatusCode равен 0 при сетевой ошибке.
type TransportError struct {
	StatusCode int
	Code       string
	Message    string
	Err        error
}

func (e *TransportError) Error() string {
	switch {
	case e.StatusCode == 0:
		return fmt.Sprintf("fetching projects: %v", e.Err)
	case e.Code != "":
		return fmt.Sprintf("fetching projects: HTTP %d %s: %s", e.StatusCode, e.Code, e.Message)
	default:
		return fmt.Sprintf("fetching projects: HTTP %d: %s", e.StatusCode, e.Message)
	}
}

func (e *TransportError) Unwrap() error { return e.Err }

func (e *TransportError) Is(target error) bool { return target == ErrTransport }

// HTTPClient клиент API таблицы проектов
type HTTPClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewHTTPClient создаёт клиент для baseURL (например "http://localhost:8080").
// Нулевой timeout означает отсутствие таймаута.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// FetchPage выполняет один GET /api/projects без повторов
func (c *HTTPClient) FetchPage(ctx context.Context, req domain.QueryRequest) (*domain.QueryResponse, error) {
	q, err := dto.EncodeQuery(req)
	if err != nil {
		return nil, fmt.Errorf("encoding query: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+projectsPath+"?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("X-Request-Id", uuid.NewString())

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{StatusCode: resp.StatusCode, Message: "reading response", Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var errResp dto.ErrorResponse
		if json.Unmarshal(body, &errResp) == nil && !errResp.IsEmpty() {
			return nil, &TransportError{StatusCode: resp.StatusCode, Code: errResp.Error, Message: errResp.Message}
		}
		return nil, &TransportError{StatusCode: resp.StatusCode, Message: strings.TrimSpace(string(body))}
	}

	var page dto.ProjectListResponse
	if err := json.Unmarshal(body, &page); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}
	return page.ToDomain(), nil
}
