package entities

// Book is a single physical book in the inventory.
type Book struct {
	ID             int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	Title          string `json:"title"`
	Author         string `json:"author"`
	Genre          string `json:"genre"`
	Shelf          int64  `validate:"gte=0" json:"shelf"`
	ProductionYear int64  `validate:"gte=0" json:"production_year"`
	Language       string `json:"language"`
}

func (Book) TableName() string {
	return "books"
}
