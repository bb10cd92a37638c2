package user

// User is an account created by registration. PasswordHash never leaves the
// repository/auth layers and is excluded from serialization.
type User struct {
	ID           int64  `json:"id"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"`
}
