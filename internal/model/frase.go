package model

import "time"

// Frase is a submitted quote awaiting or having received moderation.
// JSON and column names are the Spanish ones the public frontend consumes.
type Frase struct {
	ID       uint      `json:"id" gorm:"primaryKey"`
	Texto    string    `json:"texto" gorm:"type:text;not null"`
	Autor    *string   `json:"autor" gorm:"size:255"`
	Aprobada bool      `json:"aprobada" gorm:"default:false;index"`
	Fijada   bool      `json:"fijada" gorm:"default:false"`
	Fecha    time.Time `json:"fecha" gorm:"autoCreateTime"`
}
