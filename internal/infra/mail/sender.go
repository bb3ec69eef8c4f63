package mail

import (
	"fmt"
	"net/smtp"

	"github.com/jordan-wright/email"
)

// EmailSender 寄信介面
type EmailSender interface {
	SendEmail(
		subject string,
		content string,
		to []string,
		cc []string,
		bcc []string,
		attachFiles []string,
	) error
}

type SMTPSender struct {
	name              string
	fromEmailAddress  string
	fromEmailPassword string
	smtpHost          string
	smtpPort          string
}

// NewSMTPSender 初始化 SMTP 寄件者
// 參數:
//
//	name: 寄件者屬名
//	fromEmailAddress: 寄件者郵件地址
//	fromEmailPassword: 寄件者郵件密碼
func NewSMTPSender(name, fromEmailAddress, fromEmailPassword, smtpHost, smtpPort string) EmailSender {
	return &SMTPSender{
		name:              name,
		fromEmailAddress:  fromEmailAddress,
		fromEmailPassword: fromEmailPassword,
		smtpHost:          smtpHost,
		smtpPort:          smtpPort,
	}
}

func (s *SMTPSender) SendEmail(
	subject string,
	content string,
	to []string,
	cc []string,
	bcc []string,
	attachFiles []string,
) error {
	e := email.NewEmail()
	e.From = fmt.Sprintf("%s <%s>", s.name, s.fromEmailAddress)
	e.Subject = subject
	e.HTML = []byte(content)
	e.To = to
	e.Cc = cc
	e.Bcc = bcc

	for _, f := range attachFiles {
		if _, err := e.AttachFile(f); err != nil {
			return fmt.Errorf("附加檔案失敗 %s: %w", f, err)
		}
	}

	auth := smtp.PlainAuth("", s.fromEmailAddress, s.fromEmailPassword, s.smtpHost)
	addr := fmt.Sprintf("%s:%s", s.smtpHost, s.smtpPort)
	return e.Send(addr, auth)
}
