package models

import (
	"time"

	"github.com/google/uuid"
)

// справочники для админки, лежат в MongoDB

type Idol struct {
	ID        uuid.UUID `bson:"id" json:"id"`
	Name      string    `bson:"name" json:"name"`
	GroupName string    `bson:"groupname" json:"groupName"`
	ImageURL  string    `bson:"imageurl" json:"imageUrl,omitempty"`
	CreatedAt time.Time `bson:"createdat" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedat" json:"updatedAt"`
}

type Group struct {
	ID        uuid.UUID `bson:"id" json:"id"`
	Name      string    `bson:"name" json:"name"`
	ImageURL  string    `bson:"imageurl" json:"imageUrl,omitempty"`
	CreatedAt time.Time `bson:"createdat" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedat" json:"updatedAt"`
}

type ExternalApp struct {
	ID        uuid.UUID `bson:"id" json:"id"`
	AppName   string    `bson:"appname" json:"appName"`
	AppURL    string    `bson:"appurl" json:"appUrl"`
	IconURL   string    `bson:"iconurl" json:"iconUrl,omitempty"`
	CreatedAt time.Time `bson:"createdat" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedat" json:"updatedAt"`
}

// ошибка строки CSV импорта
type CSVError struct {
	Line  int    `json:"line"` // 0 - ошибка заголовка
	Error string `json:"error"`
}
