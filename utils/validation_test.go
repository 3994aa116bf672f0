package utils

import "testing"

func TestValidateReminder(t *testing.T) {
	tests := []struct {
		name    string
		in      ReminderInput
		wantErr string
		want    ReminderInput
	}{
		{
			name: "valid_with_separators",
			in:   ReminderInput{Name: "Ahmad bin Ali", ICNumber: "900101-01-1234", Phone: "012-345 6789", ZakatType: "pendapatan"},
			want: ReminderInput{Name: "Ahmad bin Ali", ICNumber: "900101011234", Phone: "0123456789", ZakatType: "pendapatan"},
		},
		{
			name: "defaults_empty_type_to_pendapatan",
			in:   ReminderInput{Name: "Siti Aminah", ICNumber: "880202025678", Phone: "0198765432"},
			want: ReminderInput{Name: "Siti Aminah", ICNumber: "880202025678", Phone: "0198765432", ZakatType: "pendapatan"},
		},
		{
			name: "normalizes_country_code",
			in:   ReminderInput{Name: "Raju a/l Kumar", ICNumber: "770303031122", Phone: "+60 12-345 6789", ZakatType: "simpanan"},
			want: ReminderInput{Name: "Raju a/l Kumar", ICNumber: "770303031122", Phone: "0123456789", ZakatType: "simpanan"},
		},
		{
			name:    "missing_fields",
			in:      ReminderInput{Name: "Ahmad", Phone: "0123456789"},
			wantErr: "Sila lengkapkan nama, nombor IC dan nombor telefon.",
		},
		{
			name:    "name_too_short",
			in:      ReminderInput{Name: "Al", ICNumber: "900101011234", Phone: "0123456789"},
			wantErr: "Nama terlalu pendek.",
		},
		{
			name:    "ic_with_letters",
			in:      ReminderInput{Name: "Ahmad bin Ali", ICNumber: "90A101011234", Phone: "0123456789"},
			wantErr: "Nombor IC mesti mengandungi digit sahaja.",
		},
		{
			name:    "ic_wrong_length",
			in:      ReminderInput{Name: "Ahmad bin Ali", ICNumber: "9001010112", Phone: "0123456789"},
			wantErr: "Nombor IC mesti 12 digit.",
		},
		{
			name:    "phone_without_digits",
			in:      ReminderInput{Name: "Ahmad bin Ali", ICNumber: "900101011234", Phone: "tiada"},
			wantErr: "Nombor telefon tidak sah.",
		},
		{
			name:    "unknown_zakat_type",
			in:      ReminderInput{Name: "Ahmad bin Ali", ICNumber: "900101011234", Phone: "0123456789", ZakatType: "emas"},
			wantErr: `Jenis zakat tidak sah: "emas". Mesti "pendapatan" atau "simpanan".`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ValidateReminder(tt.in)
			if tt.wantErr != "" {
				if err == nil {
					t.Fatalf("ValidateReminder(%+v) error = nil, want %q", tt.in, tt.wantErr)
				}
				if err.Error() != tt.wantErr {
					t.Errorf("ValidateReminder(%+v) error = %q, want %q", tt.in, err.Error(), tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ValidateReminder(%+v) unexpected error: %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ValidateReminder(%+v) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}
}

func TestNormalizePhone(t *testing.T) {
	tests := []struct {
		name  string
		phone string
		want  string
	}{
		{"plain_local", "0123456789", "0123456789"},
		{"dashes_and_spaces", "012-345 6789", "0123456789"},
		{"plus_country_code", "+60123456789", "0123456789"},
		{"bare_country_code", "60123456789", "0123456789"},
		{"short_number_starting_60", "603456", "603456"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizePhone(tt.phone); got != tt.want {
				t.Errorf("NormalizePhone(%q) = %q, want %q", tt.phone, got, tt.want)
			}
		})
	}
}

func TestTruncateString(t *testing.T) {
	tests := []struct {
		name string
		s    string
		max  int
		want string
	}{
		{"shorter_than_max", "zakat", 10, "zakat"},
		{"exactly_max", "zakat", 5, "zakat"},
		{"truncated", "berapa kadar zakat", 6, "berapa..."},
		{"multibyte_runes", "könnte ich", 7, "könnte ..."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TruncateString(tt.s, tt.max); got != tt.want {
				t.Errorf("TruncateString(%q, %d) = %q, want %q", tt.s, tt.max, got, tt.want)
			}
		})
	}
}
