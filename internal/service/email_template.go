package service

import (
	"bytes"
	"fmt"
	"text/template"

	"github.com/RoyceAzure/lab/shopcenter/internal/domain/model"
)

// OrderEmailData 訂單信件的數據結構
type OrderEmailData struct {
	UserName       string
	OrderNumber    string
	TotalPrice     string
	Status         string
	TrackingNumber string
}

// RegistrationEmailData 註冊歡迎信的數據結構
type RegistrationEmailData struct {
	UserName string
	Email    string
}

var orderEmailSubjects = map[model.EmailType]string{
	model.EmailTypeOrderCreated:   "訂單 #%s 已建立",
	model.EmailTypeOrderPaid:      "訂單 #%s 已完成付款",
	model.EmailTypeOrderShipped:   "訂單 #%s 已出貨",
	model.EmailTypeOrderDelivered: "訂單 #%s 已送達",
}

var orderEmailBodies = map[model.EmailType]string{
	model.EmailTypeOrderCreated: `
<p>{{.UserName}} 您好，</p>
<p>您的訂單 <b>#{{.OrderNumber}}</b> 已成功建立。</p>
<p>訂單金額：${{.TotalPrice}}</p>
<p>目前狀態：{{.Status}}</p>
<p>我們將盡快與您聯繫。</p>
`,
	model.EmailTypeOrderPaid: `
<p>{{.UserName}} 您好，</p>
<p>您的訂單 <b>#{{.OrderNumber}}</b> 已完成付款。</p>
<p>付款金額：${{.TotalPrice}}</p>
<p>我們已開始處理您的訂單。</p>
`,
	model.EmailTypeOrderShipped: `
<p>{{.UserName}} 您好，</p>
<p>您的訂單 <b>#{{.OrderNumber}}</b> 已出貨。</p>
<p>物流追蹤號碼：<b>{{.TrackingNumber}}</b></p>
`,
	model.EmailTypeOrderDelivered: `
<p>{{.UserName}} 您好，</p>
<p>您的訂單 <b>#{{.OrderNumber}}</b> 已送達。</p>
<p>感謝您的購買，歡迎再次光臨。</p>
`,
}

const registrationEmailSubject = "歡迎加入 Shopcenter"

const registrationEmailBody = `
<p>{{.UserName}} 您好，</p>
<p>感謝您註冊 Shopcenter 帳號！</p>
<p>您的登入信箱為 {{.Email}}。</p>
<p>此郵件由系統自動發送，請勿直接回覆。</p>
`

// RenderOrderEmail 依信件類型產生訂單信件的主旨與內文
func RenderOrderEmail(emailType model.EmailType, order *model.Order) (string, string, error) {
	subjectFmt, ok := orderEmailSubjects[emailType]
	if !ok {
		return "", "", fmt.Errorf("unknown order email type: %s", emailType)
	}

	userName := ""
	if order.User != nil {
		userName = order.User.UserName
	}

	data := OrderEmailData{
		UserName:       userName,
		OrderNumber:    order.OrderNumber,
		TotalPrice:     order.TotalPrice.StringFixed(2),
		Status:         string(order.Status),
		TrackingNumber: order.TrackingNumber,
	}

	body, err := renderTemplate(string(emailType), orderEmailBodies[emailType], data)
	if err != nil {
		return "", "", err
	}

	return fmt.Sprintf(subjectFmt, order.OrderNumber), body, nil
}

// RenderRegistrationEmail 產生註冊歡迎信的主旨與內文
func RenderRegistrationEmail(data RegistrationEmailData) (string, string, error) {
	body, err := renderTemplate("registration", registrationEmailBody, data)
	if err != nil {
		return "", "", err
	}
	return registrationEmailSubject, body, nil
}

func renderTemplate(name, text string, data any) (string, error) {
	tmpl, err := template.New(name).Parse(text)
	if err != nil {
		return "", fmt.Errorf("解析信件模板失敗: %w", err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("執行信件模板失敗: %w", err)
	}
	return buf.String(), nil
}
