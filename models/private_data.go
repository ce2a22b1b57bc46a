package models

type LoginPasswordData struct {
	Login    string
	Password string
}
