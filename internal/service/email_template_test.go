package service

import (
	"testing"

	"github.com/RoyceAzure/lab/shopcenter/internal/domain/model"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func newTestOrder() *model.Order {
	return &model.Order{
		OrderNumber: "a1b2c3d4",
		Status:      model.OrderStatusPending,
		TotalPrice:  decimal.NewFromFloat(199.50),
		User:        &model.User{UserName: "royce"},
	}
}

func TestRenderOrderEmailCreated(t *testing.T) {
	subject, body, err := RenderOrderEmail(model.EmailTypeOrderCreated, newTestOrder())
	require.NoError(t, err)
	require.Equal(t, "訂單 #a1b2c3d4 已建立", subject)
	require.Contains(t, body, "royce 您好")
	require.Contains(t, body, "#a1b2c3d4")
	require.Contains(t, body, "$199.50")
}

func TestRenderOrderEmailShippedHasTrackingNumber(t *testing.T) {
	order := newTestOrder()
	order.Status = model.OrderStatusShipped
	order.TrackingNumber = "SF123456789TW"

	subject, body, err := RenderOrderEmail(model.EmailTypeOrderShipped, order)
	require.NoError(t, err)
	require.Equal(t, "訂單 #a1b2c3d4 已出貨", subject)
	require.Contains(t, body, "SF123456789TW")
}

func TestRenderOrderEmailWithoutUser(t *testing.T) {
	// User未預載時不panic，名稱留空
	order := newTestOrder()
	order.User = nil

	_, body, err := RenderOrderEmail(model.EmailTypeOrderPaid, order)
	require.NoError(t, err)
	require.Contains(t, body, "您好")
}

func TestRenderOrderEmailUnknownType(t *testing.T) {
	_, _, err := RenderOrderEmail(model.EmailType("unknown"), newTestOrder())
	require.Error(t, err)
}

func TestRenderRegistrationEmail(t *testing.T) {
	subject, body, err := RenderRegistrationEmail(RegistrationEmailData{
		UserName: "royce",
		Email:    "royce@example.com",
	})
	require.NoError(t, err)
	require.Equal(t, "歡迎加入 Shopcenter", subject)
	require.Contains(t, body, "royce@example.com")
}
