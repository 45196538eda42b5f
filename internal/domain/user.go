package domain

// User пользователь
type User struct {
	ID    int64
	Name  string
	Email string
}

// UserUpdate частичное обновление пользователя, nil поля не меняются
type UserUpdate struct {
	Name  *string
	Email *string
}
