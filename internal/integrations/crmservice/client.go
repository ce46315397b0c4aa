package crmservice

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

// Client клиент для работы с CRM барбершопа
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента CRM
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// GetServices получает каталог услуг барбершопа
func (c *Client) GetServices(ctx context.Context) ([]domain.CatalogService, error) {
	url := fmt.Sprintf("%s/internal/barbershop/services/", c.baseURL)

	var services []Service
	if err := c.getJSON(ctx, url, &services); err != nil {
		return nil, err
	}

	result := make([]domain.CatalogService, 0, len(services))
	for _, s := range services {
		// Неактивные услуги не участвуют в подборе
		if !s.Active {
			continue
		}
		result = append(result, domain.CatalogService{
			ID:              s.ID,
			Name:            s.Name,
			DurationMinutes: s.DurationMinutes,
			Price:           s.Price,
			Active:          s.Active,
			CategoryName:    s.CategoryName,
		})
	}

	return result, nil
}

// GetBarbers получает список мастеров барбершопа
func (c *Client) GetBarbers(ctx context.Context) ([]domain.Barber, error) {
	url := fmt.Sprintf("%s/internal/barbershop/masters/", c.baseURL)

	var barbers []Barber
	if err := c.getJSON(ctx, url, &barbers); err != nil {
		return nil, err
	}

	result := make([]domain.Barber, 0, len(barbers))
	for _, b := range barbers {
		if !b.Active {
			continue
		}
		result = append(result, domain.Barber{
			ID:   b.ID,
			Name: b.Name,
		})
	}

	return result, nil
}

// GetClient получает данные клиента по ID
func (c *Client) GetClient(ctx context.Context, clientID int64) (*domain.Client, error) {
	url := fmt.Sprintf("%s/internal/barbershop/clients/%d/", c.baseURL, clientID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
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
		return nil, ErrClientNotFound
	default:
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	var crmClient CRMClient
	if err := json.NewDecoder(resp.Body).Decode(&crmClient); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return &domain.Client{
		ID:    crmClient.ID,
		Name:  crmClient.Name,
		Phone: crmClient.Phone,
	}, nil
}

// GetServicesWithGracefulDegradation получает каталог услуг с graceful degradation
// При недоступности CRM возвращает ErrServiceDegraded: запись можно создать
// без справочника, но без авторасчёта длительности и цены
func (c *Client) GetServicesWithGracefulDegradation(ctx context.Context) ([]domain.CatalogService, error) {
	services, err := c.GetServices(ctx)
	if err != nil {
		// Для любых ошибок (недоступность сервиса, timeout, ошибки парсинга)
		// применяем graceful degradation - возвращаем ErrServiceDegraded с контекстом
		// Повышаем уровень логирования до ERROR, чтобы быстрее заметить проблему
		c.log.Error("CRM unavailable, applying graceful degradation for services catalog: %v", err)
		return nil, fmt.Errorf("%w: error=%v", ErrServiceDegraded, err)
	}

	return services, nil
}

// getJSON выполняет GET-запрос и декодирует JSON-ответ
func (c *Client) getJSON(ctx context.Context, url string, dest interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return nil
}
