package domain

type User struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// UserPatch carries a partial user update; nil fields are left unchanged.
type UserPatch struct {
	Name  *string `json:"name"`
	Email *string `json:"email"`
}
