package models

// UserRequest - модель для регистрации и аутентификации пользователя, приходит извне
type UserRequest struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

// UserData - модель пользователя из хранилища
type UserData struct {
	UserID       string
	Login        string
	PasswordHash string
	Balance      int64
}

// UserBalance - модель баланса пользователя для выдачи
type UserBalance struct {
	Current   int64 `json:"current"`
	Withdrawn int64 `json:"withdrawn"`
}

// IntakeSettings - настройки приёма входящих переводов из хранилища
type IntakeSettings struct {
	Enabled    bool
	DepositCap int64
}
