package smtp

import (
	"bytes"
	"embed"
	"text/template"

	"github.com/emersion/go-sasl"
	"github.com/emersion/go-smtp"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gopkg.in/gomail.v2"
	"quickpay-backend/models"
)

//go:embed templates/*.txt
var templatesFS embed.FS

var welcomeTpl = template.Must(template.ParseFS(templatesFS, "templates/welcome.txt"))

var Instance Provider

type Provider interface {
	IsConfigured() bool
	SendEMail(to, subject, body string) error
	SendWelcome(to string, data models.WelcomeMailData) error
}

func Connect(user, password, host, port, from string, tlsEnabled bool) error {
	if from == "" {
		from = user
	}
	Instance = &impl{
		user:       user,
		password:   password,
		host:       host,
		port:       port,
		from:       from,
		tlsEnabled: tlsEnabled,
		send:       sendMail,
	}
	return nil
}

type sendFunc func(addr string, auth sasl.Client, from string, to []string, msg *bytes.Buffer, tlsEnabled bool) error

type impl struct {
	user       string
	password   string
	host       string
	port       string
	from       string
	tlsEnabled bool
	send       sendFunc
}

func (i impl) IsConfigured() bool {
	return i.user != "" && i.host != "" && i.port != ""
}

func (i impl) SendEMail(to, subject, body string) (err error) {
	logger := log.WithField("recipient", to)
	if !i.IsConfigured() {
		logger.Warn("email not sent, smtp client is not configured")
		return nil
	}
	msg, err := i.compose(to, subject, body)
	if err != nil {
		return err
	}
	auth := sasl.NewPlainClient("", i.user, i.password)
	err = i.send(i.host+":"+i.port, auth, i.from, []string{to}, msg, i.tlsEnabled)
	if err != nil {
		logger.WithError(err).Error("email sending failed")
		return err
	}
	logger.Info("email sent")
	return nil
}

func (i impl) SendWelcome(to string, data models.WelcomeMailData) error {
	body := new(bytes.Buffer)
	if err := welcomeTpl.Execute(body, data); err != nil {
		return errors.Wrap(err, "welcome email rendering failed")
	}
	return i.SendEMail(to, "Welcome to "+data.CompanyName, body.String())
}

func (i impl) compose(to, subject, body string) (*bytes.Buffer, error) {
	m := gomail.NewMessage()
	m.SetHeader("From", i.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)
	buf := new(bytes.Buffer)
	if _, err := m.WriteTo(buf); err != nil {
		return nil, errors.Wrap(err, "email composing failed")
	}
	return buf, nil
}

func sendMail(addr string, auth sasl.Client, from string, to []string, msg *bytes.Buffer, tlsEnabled bool) error {
	if tlsEnabled {
		return smtp.SendMailTLS(addr, auth, from, to, msg)
	}
	return smtp.SendMail(addr, auth, from, to, msg)
}
