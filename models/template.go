package models

type WelcomeMailData struct {
	FullName    string
	Username    string
	OfficeMail  string
	Password    string
	CompanyName string
}
