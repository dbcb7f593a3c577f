package domain

import "time"

type Motorcycle struct {
	ID        string    `json:"id"`
	Plate     string    `json:"plate"`
	Year      int32     `json:"year"`
	Model     string    `json:"model"`
	CreatedOn time.Time `json:"created_on"`
	UpdatedOn time.Time `json:"updated_on"`
}
