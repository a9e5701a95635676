package discountservice

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент для работы с сервисом предсказания скидок (ML-модель)
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента сервиса скидок
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// Predict запрашивает ставку скидки у модели для указанных признаков бронирования
func (c *Client) Predict(ctx context.Context, req *PredictRequest) (float64, error) {
	url := fmt.Sprintf("%s/predict", c.baseURL)

	body, err := json.Marshal(req)
	if err != nil {
		return 0, fmt.Errorf("%w: failed to marshal request: %v", ErrInternal, err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return 0, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return 0, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		return 0, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(respBody))
	}

	var prediction PredictResponse
	if err := json.NewDecoder(resp.Body).Decode(&prediction); err != nil {
		return 0, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return prediction.DiscountRate, nil
}

// PredictWithGracefulDegradation запрашивает ставку скидки с graceful degradation.
// При недоступности модели возвращает нулевую скидку и ErrServiceDegraded:
// бронирование создается по базовой цене, а не падает.
func (c *Client) PredictWithGracefulDegradation(ctx context.Context, req *PredictRequest) (float64, error) {
	rate, err := c.Predict(ctx, req)
	if err != nil {
		// Повышаем уровень логирования до ERROR, чтобы быстрее заметить проблему
		c.log.Error("DiscountService unavailable, applying graceful degradation: %v", err)
		return 0, fmt.Errorf("%w: %v", ErrServiceDegraded, err)
	}

	c.log.Info("DiscountService predicted rate=%.2f for duration=%dh occupancy=%.2f",
		rate, req.Duration, req.OccupancyRate)
	return rate, nil
}
