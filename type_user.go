package marketfolio

import "time"

// User is the backend's user record. Cash, Wallet and Profit are USD figures
// computed server-side.
type User struct {
	ID           int           `json:"id"`
	Name         string        `json:"name"`
	Birthdate    time.Time     `json:"birthdate"`
	Email        string        `json:"email"`
	Phone        string        `json:"phone"`
	DNI          string        `json:"dni"`
	Nationality  string        `json:"nationality"`
	Cash         float64       `json:"cash"`
	Wallet       float64       `json:"wallet"`
	Profit       float64       `json:"profit"`
	LastBalance  float64       `json:"lastBalance"`
	CreationDate time.Time     `json:"creationDate"`
	Transactions []Transaction `json:"transactions"`
	Role         Role          `json:"role"`
}

// Profile is the registration payload for a new user.
type Profile struct {
	Name        string    `json:"name"`
	Birthdate   time.Time `json:"birthdate"`
	Email       string    `json:"email"`
	Password    string    `json:"password"`
	Phone       string    `json:"phone"`
	DNI         string    `json:"dni"`
	Nationality string    `json:"nationality"`
}
