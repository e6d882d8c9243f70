package paymentservice

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// Client клиент для работы с PaymentService
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента PaymentService
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// GetPayment получает платеж по reference
func (c *Client) GetPayment(ctx context.Context, reference string) (*Payment, error) {
	u := fmt.Sprintf("%s/internal/payments/%s", c.baseURL, url.PathEscape(reference))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusNotFound:
		return nil, ErrPaymentNotFound
	default:
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	var payment Payment
	if err := json.NewDecoder(resp.Body).Decode(&payment); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return &payment, nil
}

// VerifyPayment проверяет, что платеж существует и завершен
func (c *Client) VerifyPayment(ctx context.Context, reference string) error {
	payment, err := c.GetPayment(ctx, reference)
	if err != nil {
		return err
	}

	if !payment.IsCompleted() {
		return fmt.Errorf("%w: status=%s", ErrPaymentNotCompleted, payment.Status)
	}

	return nil
}

// VerifyPaymentWithGracefulDegradation проверяет платеж с graceful degradation
// При недоступности PaymentService возвращает ErrServiceDegraded: подтверждение
// бронирования принимается оптимистично, расхождения сверяются внешним flow
func (c *Client) VerifyPaymentWithGracefulDegradation(ctx context.Context, reference string) error {
	c.log.Info("Verifying payment reference=%s", reference)

	err := c.VerifyPayment(ctx, reference)
	if err == nil {
		c.log.Info("Payment verified: reference=%s", reference)
		return nil
	}

	// Бизнес-ошибки (платеж не найден / не завершен) пробрасываем дальше
	if errors.Is(err, ErrPaymentNotFound) || errors.Is(err, ErrPaymentNotCompleted) {
		c.log.Warn("Payment verification rejected: reference=%s: %v", reference, err)
		return err
	}

	// Для остальных ошибок (недоступность сервиса, timeout, ошибки парсинга)
	// применяем graceful degradation
	// Повышаем уровень логирования до ERROR, чтобы быстрее заметить проблему
	c.log.Error("PaymentService unavailable, applying graceful degradation for reference=%s: %v", reference, err)
	return fmt.Errorf("%w: reference=%s, error=%v", ErrServiceDegraded, reference, err)
}
