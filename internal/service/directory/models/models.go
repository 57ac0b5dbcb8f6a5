package models

// EmployeeResponse сотрудник для выбора при бронировании
type EmployeeResponse struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	FullName  string `json:"fullName"`
	IsStudent bool   `json:"isStudent"`
	IsActive  bool   `json:"isActive"`
}

// FloorResponse этаж с планом
type FloorResponse struct {
	ID           int64   `json:"id"`
	Name         string  `json:"name"`
	LocationID   int64   `json:"locationId"`
	LocationName string  `json:"locationName"`
	IsOffice     bool    `json:"isOffice"`
	FloorMap     *string `json:"floorMap,omitempty"` // Ссылка на изображение плана
}

// InfoEntryResponse блок справочной страницы
type InfoEntryResponse struct {
	ID      int64  `json:"id"`
	Title   string `json:"title"`
	Content string `json:"content"`
	Order   int    `json:"order"`
}
