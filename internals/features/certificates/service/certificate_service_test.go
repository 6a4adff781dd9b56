package service

import (
	"regexp"
	"strconv"
	"strings"
	"testing"
	"time"

	"kursusku_backend/internals/features/certificates/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCertificateSerial_Format(t *testing.T) {
	now := time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)

	serial, err := NewCertificateSerial(now)
	require.NoError(t, err)

	re := regexp.MustCompile(`^KURSUS-(\d+)-([0-9A-F]{6})$`)
	m := re.FindStringSubmatch(serial)
	require.NotNil(t, m, "serial tidak sesuai format: %s", serial)

	ms, err := strconv.ParseInt(m[1], 10, 64)
	require.NoError(t, err)
	assert.Equal(t, now.UnixMilli(), ms)
}

func TestNewCertificateSerial_Unik(t *testing.T) {
	now := time.Now()
	seen := make(map[string]struct{})
	for i := 0; i < 100; i++ {
		serial, err := NewCertificateSerial(now)
		require.NoError(t, err)
		if _, dup := seen[serial]; dup {
			t.Fatalf("serial duplikat: %s", serial)
		}
		seen[serial] = struct{}{}
	}
}

func sampleCertificate() *model.CertificateModel {
	return &model.CertificateModel{
		CertificateSerial:      "KURSUS-1780000000000-A1B2C3",
		CertificateStudentName: "Budi Santoso",
		CertificateCourseTitle: "Belajar Go dari Nol",
		CertificateScore:       85,
		CertificateStatus:      model.CertStatusIssued,
		CertificateIssuedAt:    time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC),
	}
}

func TestRender_Deterministik(t *testing.T) {
	cert := sampleCertificate()

	first := Render(cert)
	second := Render(cert)

	assert.Equal(t, first, second, "record sama harus menghasilkan byte identik")
}

func TestRender_IsiDokumen(t *testing.T) {
	cert := sampleCertificate()

	doc := string(Render(cert))

	assert.Contains(t, doc, "Budi Santoso")
	assert.Contains(t, doc, "Belajar Go dari Nol")
	assert.Contains(t, doc, "nilai akhir 85")
	assert.Contains(t, doc, "KURSUS-1780000000000-A1B2C3")
	assert.Contains(t, doc, "01 May 2026")
	assert.True(t, strings.HasPrefix(doc, "<!DOCTYPE html>"))
}

func TestRender_EscapeHTML(t *testing.T) {
	cert := sampleCertificate()
	cert.CertificateStudentName = `Budi <script>alert("x")</script>`

	doc := string(Render(cert))

	assert.NotContains(t, doc, "<script>")
	assert.Contains(t, doc, "&lt;script&gt;")
}
