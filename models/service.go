package models

// Service represents a single offered salon service with its fixed price.
type Service struct {
	Name  string `json:"name"`
	Price int    `json:"price"` // in ₪, whole shekels
}
