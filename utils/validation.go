package utils

import (
	"errors"
	"fmt"
	"strings"
)

// ReminderInput carries the raw reminder fields from the widget form.
type ReminderInput struct {
	Name      string
	ICNumber  string
	Phone     string
	ZakatType string
}

// ValidateReminder checks and normalizes a reminder submission. The error
// text is in Malay and shown to the user as-is.
func ValidateReminder(in ReminderInput) (ReminderInput, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.ICNumber = strings.TrimSpace(in.ICNumber)
	in.Phone = strings.TrimSpace(in.Phone)
	in.ZakatType = strings.ToLower(strings.TrimSpace(in.ZakatType))

	if in.Name == "" || in.ICNumber == "" || in.Phone == "" {
		return in, errors.New("Sila lengkapkan nama, nombor IC dan nombor telefon.")
	}
	if len([]rune(in.Name)) < 3 {
		return in, errors.New("Nama terlalu pendek.")
	}

	ic := stripSeparators(in.ICNumber)
	if !digitsOnly(ic) {
		return in, errors.New("Nombor IC mesti mengandungi digit sahaja.")
	}
	if len(ic) != 12 {
		return in, errors.New("Nombor IC mesti 12 digit.")
	}
	in.ICNumber = ic

	phone := NormalizePhone(in.Phone)
	if !containsDigit(phone) {
		return in, errors.New("Nombor telefon tidak sah.")
	}
	in.Phone = phone

	switch in.ZakatType {
	case "":
		in.ZakatType = "pendapatan"
	case "pendapatan", "simpanan":
	default:
		return in, fmt.Errorf("Jenis zakat tidak sah: %q. Mesti \"pendapatan\" atau \"simpanan\".", in.ZakatType)
	}

	return in, nil
}

// NormalizePhone strips separators and rewrites the +60/60 country prefix
// to the local 0 form.
func NormalizePhone(phone string) string {
	phone = stripSeparators(phone)
	if strings.HasPrefix(phone, "+60") {
		return "0" + phone[3:]
	}
	if strings.HasPrefix(phone, "60") && len(phone) >= 11 {
		return "0" + phone[2:]
	}
	return phone
}

// TruncateString shortens s to max runes for log previews, appending an
// ellipsis when cut.
func TruncateString(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + "..."
}

func stripSeparators(s string) string {
	s = strings.ReplaceAll(s, "-", "")
	return strings.ReplaceAll(s, " ", "")
}

func digitsOnly(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func containsDigit(s string) bool {
	for _, r := range s {
		if r >= '0' && r <= '9' {
			return true
		}
	}
	return false
}
