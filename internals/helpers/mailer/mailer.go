package mailer

import (
	"fmt"
	"log"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"kursusku_backend/internals/configs"
)

var client *sendgrid.Client

// Init menyiapkan SendGrid client. Kalau apiKey kosong, email hanya dicatat ke log.
func Init(apiKey string) {
	if apiKey == "" {
		client = nil
		log.Println("⚠️ Mailer berjalan dalam mode log-only (SENDGRID_API_KEY kosong)")
		return
	}
	client = sendgrid.NewSendClient(apiKey)
	log.Println("✅ SendGrid mailer siap.")
}

// Send mengirim satu email HTML. Error dikembalikan untuk dicatat pemanggil;
// kegagalan email tidak boleh membatalkan operasi yang memanggilnya.
func Send(toName, toAddr, subject, htmlBody string) error {
	if client == nil {
		log.Printf("[MAIL:LOG-ONLY] to=%s subject=%q", toAddr, subject)
		return nil
	}

	from := mail.NewEmail(configs.EmailSenderName, configs.EmailSenderAddr)
	to := mail.NewEmail(toName, toAddr)
	message := mail.NewSingleEmail(from, subject, to, "", htmlBody)

	resp, err := client.Send(message)
	if err != nil {
		return err
	}
	if resp.StatusCode >= 400 {
		return fmt.Errorf("sendgrid status %d: %s", resp.StatusCode, resp.Body)
	}
	return nil
}

// SendEnrollmentConfirmation: email konfirmasi setelah pembayaran kursus sukses.
func SendEnrollmentConfirmation(toName, toAddr, courseTitle, orderID string) error {
	subject := "Pembayaran berhasil, selamat belajar di Kursusku!"
	body := fmt.Sprintf(`
	<div style="font-family:Arial,sans-serif;max-width:600px;margin:0 auto">
		<h2>Halo %s 👋</h2>
		<p>Pembayaran kamu untuk kursus <b>%s</b> sudah kami terima.</p>
		<p>Nomor transaksi: <code>%s</code></p>
		<p>Kursus sudah aktif di akunmu. Selamat belajar!</p>
		<hr>
		<small>Email ini dikirim otomatis oleh Kursusku.</small>
	</div>`, toName, courseTitle, orderID)
	return Send(toName, toAddr, subject, body)
}
