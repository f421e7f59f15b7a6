package model

import (
	"time"

	"github.com/google/uuid"
)

// QuestionModel mirrors the 'questions' table. Incorrect answers are kept as a
// JSONB document since they are only ever read back as a whole.
type QuestionModel struct {
	ID               uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Category         string    `gorm:"type:varchar(100);not null;index"`
	Type             string    `gorm:"type:varchar(20);not null"`
	Difficulty       string    `gorm:"type:varchar(20);not null;index"`
	Question         string    `gorm:"type:text;not null"`
	CorrectAnswer    string    `gorm:"type:text;not null"`
	IncorrectAnswers []string  `gorm:"type:jsonb;serializer:json;not null"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// TableName explicitly sets the table name for GORM.
func (QuestionModel) TableName() string {
	return "questions"
}
