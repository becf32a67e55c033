package models

// Seq - автоинкрементный первичный ключ, задает порядок вставки.
// Публичный идентификатор записи хранится в RecordID.

type User struct {
	Seq      uint   `gorm:"primary_key"`
	RecordID string `gorm:"unique_index;not null"`
	Name     string `gorm:"not null"`
	Email    string `gorm:"unique_index;not null"`
	Age      *int
}

type Post struct {
	Seq       uint   `gorm:"primary_key"`
	RecordID  string `gorm:"unique_index;not null"`
	Title     string `gorm:"not null"`
	Body      string `gorm:"not null"`
	Published bool   `gorm:"not null"`
	AuthorID  string `gorm:"index"`
}

type Comment struct {
	Seq      uint   `gorm:"primary_key"`
	RecordID string `gorm:"unique_index;not null"`
	Text     string `gorm:"not null"`
	AuthorID string `gorm:"index"`
	PostID   string `gorm:"index"`
}
