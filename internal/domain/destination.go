package domain

type Destination struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}
