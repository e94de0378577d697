package validators

import (
	"strings"

	"github.com/denmor86/points-bridge/internal/models"
)

// CheckAmount проверяет сумму перевода в минимальных единицах
func CheckAmount(amount int64) bool {
	return amount > 0
}

// CheckUsername проверяет имя получателя на платформе баллов
func CheckUsername(username string) bool {
	username = strings.TrimSpace(username)
	if len(username) < 3 || len(username) > 20 {
		return false
	}
	for _, r := range username {
		switch {
		case r >= 'a' && r <= 'z':
		case r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9':
		case r == '_' || r == '-':
		default:
			return false
		}
	}
	return true
}

// CheckRail проверяет название рельсы вывода средств
func CheckRail(rail string) bool {
	return rail == models.RailPoints || rail == models.RailChain
}

// CheckHex проверяет, что строка состоит из hex-символов заданной длины
func CheckHex(value string, length int) bool {
	if len(value) != length {
		return false
	}
	for _, r := range value {
		switch {
		case r >= '0' && r <= '9':
		case r >= 'a' && r <= 'f':
		case r >= 'A' && r <= 'F':
		default:
			return false
		}
	}
	return true
}

// CheckDestination проверяет назначение с учётом рельсы:
// имя пользователя для баллов, адреса не требуется для подписанного вывода
func CheckDestination(rail string, destination string) bool {
	if rail == models.RailPoints {
		return CheckUsername(destination)
	}
	return destination == ""
}
