package service

import (
	"fmt"

	"kursusku_backend/internals/features/payments/model"

	midtrans "github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/coreapi"
	"github.com/midtrans/midtrans-go/snap"
)

var SnapClient snap.Client
var CoreClient coreapi.Client

// InitMidtrans menginisialisasi Snap & Core API client dengan server key.
func InitMidtrans(serverKey string, useProd bool) {
	env := midtrans.Sandbox
	if useProd {
		env = midtrans.Production
	}
	SnapClient.New(serverKey, env)
	CoreClient.New(serverKey, env)
}

// GenerateSnapToken membuat token Snap Midtrans untuk pembayaran kursus.
func GenerateSnapToken(p model.PaymentModel, courseTitle string, name string, email string) (string, string, error) {
	req := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  p.PaymentOrderID,
			GrossAmt: int64(p.PaymentAmountIDR),
		},
		CustomerDetail: &midtrans.CustomerDetails{
			FName: name,
			Email: email,
		},
		Items: &[]midtrans.ItemDetails{
			{
				ID:    p.PaymentCourseID.String(),
				Name:  courseTitle,
				Price: int64(p.PaymentAmountIDR),
				Qty:   1,
			},
		},
	}

	resp, err := SnapClient.CreateTransaction(req)
	if err != nil {
		return "", "", err
	}

	return resp.Token, resp.RedirectURL, nil
}

// CheckTransactionStatus menanyakan status transaksi langsung ke Midtrans
// (server-to-server), bukan mempercayai status dari frontend.
func CheckTransactionStatus(orderID string) (string, string, error) {
	resp, err := CoreClient.CheckTransaction(orderID)
	if err != nil {
		return "", "", fmt.Errorf("cek transaksi midtrans gagal: %s", err.Message)
	}
	if resp == nil {
		return "", "", fmt.Errorf("respon kosong dari midtrans untuk order %s", orderID)
	}
	return resp.TransactionStatus, resp.PaymentType, nil
}

// IsSettled memetakan status Midtrans ke status internal "success".
func IsSettled(transactionStatus string) bool {
	return transactionStatus == "capture" || transactionStatus == "settlement"
}

// IsFinalFailure: status final yang tidak akan pernah menjadi success.
func IsFinalFailure(transactionStatus string) bool {
	switch transactionStatus {
	case "expire", "cancel", "deny", "failure":
		return true
	}
	return false
}
