package magento

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// maxResponseSize ограничение размера тела ответа
const maxResponseSize = 4 << 20

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент GraphQL API магазина: каталог и гостевая корзина
type Client struct {
	endpoint   string
	storeCode  string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента; storeCode передается в заголовке Store, если задан
func NewClient(endpoint, storeCode string, timeout time.Duration, log Logger) *Client {
	return &Client{
		endpoint:  endpoint,
		storeCode: storeCode,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// do выполняет один GraphQL запрос и декодирует data в out
func (c *Client) do(ctx context.Context, operation, query string, variables map[string]interface{}, out interface{}) error {
	body, err := json.Marshal(graphqlRequest{Query: query, Variables: variables})
	if err != nil {
		return fmt.Errorf("%w: %s: failed to encode request: %v", ErrInvalidResponse, operation, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%w: %s: failed to create request: %v", ErrTransport, operation, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if c.storeCode != "" {
		req.Header.Set("Store", c.storeCode)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %s: failed to execute request: %v", ErrTransport, operation, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return fmt.Errorf("%w: %s: failed to read response: %v", ErrTransport, operation, err)
	}

	var envelope graphqlResponse
	if err := json.Unmarshal(raw, &envelope); err != nil {
		if resp.StatusCode != http.StatusOK {
			return fmt.Errorf("%w: %s: unexpected status code %d: %s", ErrInvalidResponse, operation, resp.StatusCode, truncate(raw))
		}
		return fmt.Errorf("%w: %s: failed to decode response: %v", ErrInvalidResponse, operation, err)
	}

	// GraphQL ошибки приходят и с кодом 200
	if len(envelope.Errors) > 0 {
		return &BackendError{Operation: operation, Message: envelope.Errors[0].Message}
	}

	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s: endpoint returned 404", ErrNotFound, operation)
	default:
		return fmt.Errorf("%w: %s: unexpected status code %d", ErrInvalidResponse, operation, resp.StatusCode)
	}

	if len(envelope.Data) == 0 || string(envelope.Data) == "null" {
		return fmt.Errorf("%w: %s: empty data", ErrInvalidResponse, operation)
	}
	if err := json.Unmarshal(envelope.Data, out); err != nil {
		return fmt.Errorf("%w: %s: failed to decode data: %v", ErrInvalidResponse, operation, err)
	}
	return nil
}

func truncate(raw []byte) string {
	const limit = 256
	if len(raw) > limit {
		return string(raw[:limit]) + "..."
	}
	return string(raw)
}
