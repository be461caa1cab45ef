package gormstore

import "time"

// UserModel é o model GORM para usuários
type UserModel struct {
	ID           uint   `gorm:"primaryKey"`
	Name         string `gorm:"type:varchar(80);uniqueIndex;not null"`
	Email        string `gorm:"type:varchar(120);uniqueIndex;not null"`
	PasswordHash string `gorm:"type:varchar(200);not null"`
}

func (UserModel) TableName() string {
	return "users"
}

// PostModel é o model GORM para posts.
// Timestamps são controlados pelo serviço, não pelo GORM.
type PostModel struct {
	ID        uint      `gorm:"primaryKey"`
	Title     string    `gorm:"type:varchar(200);not null"`
	Content   string    `gorm:"type:text;not null"`
	ImageURL  *string   `gorm:"type:varchar(2048)"`
	CreatedAt time.Time `gorm:"autoCreateTime:false;not null;index"`
	UpdatedAt time.Time `gorm:"autoUpdateTime:false;not null"`
	AuthorID  uint      `gorm:"not null;index"`

	// Só existe para o AutoMigrate criar a FK; nunca é carregado nem gravado
	Author UserModel `gorm:"foreignKey:AuthorID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
}

func (PostModel) TableName() string {
	return "posts"
}
