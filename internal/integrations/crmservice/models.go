package crmservice

// Service модель услуги из CRM
type Service struct {
	ID              int64    `json:"id"`
	Name            string   `json:"name"`
	DurationMinutes int      `json:"duration_minutes"`
	Price           *float64 `json:"price"`
	Active          bool     `json:"active"`
	CategoryName    string   `json:"category_name"`
}

// Barber модель мастера из CRM
type Barber struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Active bool   `json:"active"`
}

// Client модель клиента из CRM
type CRMClient struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

// ErrorResponse модель ошибки от CRM
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
