// Package identity covers user accounts and the session-cookie login flow.
package identity

type User struct {
	ID         int64  `json:"id"`
	Username   string `json:"username"`
	Password   string `json:"-"`
	Nama       string `json:"nama"`
	Role       string `json:"role"`
	RumahSakit string `json:"rumahSakit"`
	Active     bool   `json:"active"`
}

type RegisterRequest struct {
	Username   string `json:"username" validate:"required"`
	Password   string `json:"password" validate:"required,min=6"`
	Nama       string `json:"nama" validate:"required"`
	Role       string `json:"role"`
	RumahSakit string `json:"rumahSakit" validate:"required"`
}

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}
