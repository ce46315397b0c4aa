package domain

// CatalogService запись каталога услуг из CRM
// Read-only для этого сервиса
type CatalogService struct {
	ID              int64
	Name            string
	DurationMinutes int
	Price           *float64
	Active          bool
	CategoryName    string
}

// Barber мастер барбершопа из CRM
// Read-only, кроме производной пометки занят/свободен
type Barber struct {
	ID   int64
	Name string
}

// Client клиент барбершопа из CRM
type Client struct {
	ID    int64
	Name  string
	Phone string
}
