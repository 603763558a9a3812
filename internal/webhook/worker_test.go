package webhook

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateHMACSHA256(t *testing.T) {
	// Подготовка
	payload := `{"kind":"check_in"}`
	secret := "test-secret"

	// Действие
	signature := generateHMACSHA256(payload, secret)

	// Проверки
	h := hmac.New(sha256.New, []byte(secret))
	h.Write([]byte(payload))
	expected := hex.EncodeToString(h.Sum(nil))
	assert.Equal(t, expected, signature)
}

func TestGenerateHMACSHA256_DifferentSecrets(t *testing.T) {
	// Подготовка
	payload := `{"kind":"incident_report"}`

	// Действие
	first := generateHMACSHA256(payload, "secret-a")
	second := generateHMACSHA256(payload, "secret-b")

	// Проверки
	assert.NotEqual(t, first, second)
}
