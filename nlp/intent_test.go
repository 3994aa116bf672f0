package nlp

import "testing"

func newTestClassifier() *Classifier {
	tables := DefaultTables()
	n := NewNormalizer(tables)
	return NewClassifier(n, NewKeywordExtractor(n, tables), tables)
}

func TestClassifyFlags(t *testing.T) {
	c := newTestClassifier()

	tests := []struct {
		name          string
		input         string
		isQuestion    bool
		isGreeting    bool
		isThanks      bool
		isGoodbye     bool
		isHelpRequest bool
		isComplaint   bool
		isPraise      bool
		isConfused    bool
	}{
		{
			name:       "greeting_assalamualaikum",
			input:      "assalamualaikum",
			isGreeting: true,
		},
		{
			name:     "thanks_malay",
			input:    "Terima kasih banyak!",
			isThanks: true,
		},
		{
			name:     "thanks_english_survives_substitution",
			input:    "thank you",
			isThanks: true,
		},
		{
			name:      "goodbye_bye",
			input:     "bye",
			isGoodbye: true,
		},
		{
			name:      "goodbye_not_greeting",
			input:     "selamat tinggal",
			isGoodbye: true,
		},
		{
			name:          "help_request",
			input:         "saya perlukan bantuan",
			isHelpRequest: true,
		},
		{
			name:          "help_request_via_typo_table",
			input:         "tolong saya",
			isHelpRequest: true,
		},
		{
			name:        "complaint",
			input:       "perkhidmatan sangat lambat",
			isComplaint: true,
		},
		{
			name:     "praise",
			input:    "bagus sekali servis ini",
			isPraise: true,
		},
		{
			name:       "confusion",
			input:      "saya keliru",
			isConfused: true,
		},
		{
			name:       "question_by_word",
			input:      "apa itu nisab",
			isQuestion: true,
		},
		{
			name:       "question_by_mark",
			input:      "nak tahu pasal zakat?",
			isQuestion: true,
		},
		{
			name:  "plain_statement",
			input: "ok",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := c.Classify(tt.input)
			if got.IsQuestion != tt.isQuestion {
				t.Errorf("IsQuestion = %v, want %v", got.IsQuestion, tt.isQuestion)
			}
			if got.IsGreeting != tt.isGreeting {
				t.Errorf("IsGreeting = %v, want %v", got.IsGreeting, tt.isGreeting)
			}
			if got.IsThanks != tt.isThanks {
				t.Errorf("IsThanks = %v, want %v", got.IsThanks, tt.isThanks)
			}
			if got.IsGoodbye != tt.isGoodbye {
				t.Errorf("IsGoodbye = %v, want %v", got.IsGoodbye, tt.isGoodbye)
			}
			if got.IsHelpRequest != tt.isHelpRequest {
				t.Errorf("IsHelpRequest = %v, want %v", got.IsHelpRequest, tt.isHelpRequest)
			}
			if got.IsComplaint != tt.isComplaint {
				t.Errorf("IsComplaint = %v, want %v", got.IsComplaint, tt.isComplaint)
			}
			if got.IsPraise != tt.isPraise {
				t.Errorf("IsPraise = %v, want %v", got.IsPraise, tt.isPraise)
			}
			if got.IsConfused != tt.isConfused {
				t.Errorf("IsConfused = %v, want %v", got.IsConfused, tt.isConfused)
			}
		})
	}
}

func TestClassifyCategory(t *testing.T) {
	c := newTestClassifier()

	tests := []struct {
		name  string
		input string
		want  Category
	}{
		{"organization", "di mana pejabat lznk?", CategoryOrganization},
		{"payment", "macam mana nak bayar zakat?", CategoryPayment},
		{"threshold", "berapa nisab emas?", CategoryThreshold},
		{"business", "zakat perniagaan dikira bagaimana?", CategoryBusiness},
		{"time_period", "haul bermula dari tarikh mana?", CategoryTimePeriod},
		{"zakat_type", "zakat fitrah tu apa?", CategoryZakatType},
		{"general", "hello kawan", CategoryGeneral},
		{"priority_order", "bayar kat pejabat mana?", CategoryOrganization},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := c.Classify(tt.input)
			if got.Category != tt.want {
				t.Errorf("Classify(%q).Category = %v, want %v", tt.input, got.Category, tt.want)
			}
		})
	}
}

func TestClassifySentiment(t *testing.T) {
	c := newTestClassifier()

	tests := []struct {
		name  string
		input string
		want  Sentiment
	}{
		{"positive", "sistem ini sangat bagus dan mudah", SentimentPositive},
		{"negative", "laman web teruk dan lambat", SentimentNegative},
		{"balanced", "bagus tapi lambat", SentimentNeutral},
		{"neutral", "apa itu zakat", SentimentNeutral},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := c.Classify(tt.input)
			if got.Sentiment != tt.want {
				t.Errorf("Classify(%q).Sentiment = %v, want %v", tt.input, got.Sentiment, tt.want)
			}
		})
	}
}

func TestClassifyUrgency(t *testing.T) {
	c := newTestClassifier()

	tests := []struct {
		name  string
		input string
		want  Urgency
	}{
		{"urgent_word", "saya perlu bayar segera", UrgencyHigh},
		{"question_mark", "apa itu zakat?", UrgencyMedium},
		{"plain", "terima kasih", UrgencyLow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := c.Classify(tt.input)
			if got.Urgency != tt.want {
				t.Errorf("Classify(%q).Urgency = %v, want %v", tt.input, got.Urgency, tt.want)
			}
		})
	}
}

func TestClassifyLanguage(t *testing.T) {
	c := newTestClassifier()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"malay", "apa itu zakat", LanguageMalay},
		{"english", "how can i pay online", LanguageEnglish},
		{"mixed", "what is zakat", LanguageMixed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := c.Classify(tt.input)
			if got.Language != tt.want {
				t.Errorf("Classify(%q).Language = %v, want %v", tt.input, got.Language, tt.want)
			}
		})
	}
}

func TestIntentPrimary(t *testing.T) {
	c := newTestClassifier()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"greeting_beats_thanks", "hello terima kasih", "greeting"},
		{"question", "berapa kadar zakat", "question"},
		{"statement", "ok", "statement"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := c.Classify(tt.input).Primary()
			if got != tt.want {
				t.Errorf("Primary() = %v, want %v", got, tt.want)
			}
		})
	}
}
