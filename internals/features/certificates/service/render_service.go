package service

import (
	"fmt"
	"html"

	"kursusku_backend/internals/features/certificates/model"
)

// Render menghasilkan dokumen sertifikat HTML dengan layout tetap.
// Fungsi murni tanpa side effect: record yang sama selalu menghasilkan
// byte yang identik (tanggal terbit memang bagian dari dokumen).
func Render(cert *model.CertificateModel) []byte {
	doc := fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Sertifikat %s</title>
<style>
	body { font-family: Georgia, 'Times New Roman', serif; background: #f4f1ea; margin: 0; }
	.cert { max-width: 800px; margin: 60px auto; background: #fff; border: 12px double #b8860b; padding: 60px; text-align: center; }
	.cert h1 { font-size: 34px; letter-spacing: 4px; color: #b8860b; margin: 0 0 8px; }
	.cert .subtitle { font-size: 14px; color: #888; letter-spacing: 2px; text-transform: uppercase; }
	.cert .student { font-size: 30px; margin: 36px 0 8px; }
	.cert .course { font-size: 20px; color: #333; margin: 8px 0 24px; }
	.cert .score { font-size: 16px; color: #555; }
	.cert .meta { margin-top: 48px; font-size: 12px; color: #999; }
</style>
</head>
<body>
<div class="cert">
	<h1>SERTIFIKAT KELULUSAN</h1>
	<div class="subtitle">Kursusku — Platform Belajar Online</div>
	<div class="student">%s</div>
	<div>dinyatakan telah menyelesaikan kursus</div>
	<div class="course">%s</div>
	<div class="score">dengan nilai akhir %d</div>
	<div class="meta">
		Nomor sertifikat: %s<br>
		Diterbitkan: %s<br>
		Verifikasi keaslian di /api/public/certificates/verify/%s
	</div>
</div>
</body>
</html>
`,
		html.EscapeString(cert.CertificateSerial),
		html.EscapeString(cert.CertificateStudentName),
		html.EscapeString(cert.CertificateCourseTitle),
		cert.CertificateScore,
		html.EscapeString(cert.CertificateSerial),
		cert.CertificateIssuedAt.UTC().Format("02 January 2006"),
		html.EscapeString(cert.CertificateSerial),
	)
	return []byte(doc)
}
