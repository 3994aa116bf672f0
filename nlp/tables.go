package nlp

import "strings"

// Tables bundles the fixed lookup data the engine works from: the typo
// dictionary, stop words, intent word lists, topic keyword sets and language
// indicators. Build one set at startup and inject it into the components;
// tests can substitute smaller tables.
type Tables struct {
	TypoCorrections map[string][]string
	StopWords       []string

	QuestionWords  []string
	GreetingWords  []string
	ThanksWords    []string
	GoodbyeWords   []string
	HelpWords      []string
	ComplaintWords []string
	PraiseWords    []string
	ConfusionWords []string

	PositiveWords []string
	NegativeWords []string
	UrgentWords   []string

	TopicCategories []TopicCategory

	MalayIndicators   []string
	EnglishIndicators []string
}

// TopicCategory pairs a category label with the words that select it.
// Order in Tables.TopicCategories is the matching priority.
type TopicCategory struct {
	Name  Category
	Words []string
}

// DefaultTables returns the standard Malay/English tables for the zakat
// domain. Intent and topic lists are written in post-normalization
// vocabulary: a word that the typo dictionary rewrites (e.g. "tolong" to
// "bantuan") never survives into normalized text, so only canonical forms
// appear here. Entries must be lowercase.
func DefaultTables() *Tables {
	return &Tables{
		TypoCorrections: map[string][]string{
			// ============================================================================
			// QUESTION WORDS
			// ============================================================================
			"apa":       {"ap", "apakah", "pe", "what", "maksud"},
			"siapa":     {"sipa", "siapakah", "sape", "who"},
			"bagaimana": {"bgaimana", "bgmn", "bagaimanakah", "mcm mana", "macam mana", "how"},
			"berapa":    {"brp", "brpa", "berapakah", "brape", "how much", "how many"},
			"bila":      {"bl", "bilakah", "bile", "when"},
			"mana":      {"mn", "manakah", "mne", "where"},
			"kenapa":    {"knp", "kenapakah", "nape", "why", "mengapa"},

			// ============================================================================
			// DOMAIN TERMS
			// ============================================================================
			"zakat":    {"zakah", "zakt", "zkat", "zaket"},
			"bayar":    {"bayr", "byr", "membayar", "pembayaran", "pay", "payment"},
			"nisab":    {"threshold"},
			"fitrah":   {"fitr"},
			"emas":     {"gold"},
			"wang":     {"duit", "money", "cash"},
			"syarat":   {"syrt", "syart"},
			"khairiat": {"khairat", "kheiriyat"},
			"mohon":    {"apply", "permohonan", "application"},
			"bantuan":  {"help", "tolong", "assist", "aid"},

			// ============================================================================
			// PLACES & SERVICES
			// ============================================================================
			"lznk":    {"lembaga zakat negeri kedah", "lembaga zakat", "lembaga"},
			"pejabat": {"office", "kaunter", "cawangan", "branch"},

			// ============================================================================
			// PRONOUNS
			// ============================================================================
			"saya":   {"sy", "aku", "i", "me"},
			"anda":   {"akau", "you", "u"},
			"kami":   {"kmi", "we", "us"},
			"mereka": {"mrk", "they", "them"},
		},

		StopWords: []string{
			"yang", "dan", "atau", "dengan", "untuk", "dari", "ke", "di", "pada",
			"adalah", "ialah", "ini", "itu", "saya", "anda", "kami", "mereka",
			"akan", "telah", "sudah", "boleh", "dapat", "ada", "mana", "bila",
			"the", "a", "an", "and", "or", "but", "in", "on", "at", "to", "for",
		},

		QuestionWords: []string{
			"apa", "siapa", "bagaimana", "berapa", "bila", "mana", "kenapa",
			"can", "could",
		},
		GreetingWords: []string{
			"assalamualaikum", "waalaikumsalam", "assalam", "salam",
			"hai", "hello", "hi",
			"selamat pagi", "selamat petang", "selamat malam",
			"good morning", "good afternoon", "good evening",
		},
		ThanksWords: []string{
			"terima kasih", "thanks", "thank", "tq", "grateful", "appreciate",
		},
		GoodbyeWords: []string{
			"bye", "goodbye", "selamat tinggal", "jumpa lagi", "farewell",
		},
		HelpWords: []string{
			"bantuan", "bantu", "panduan", "guide",
		},
		ComplaintWords: []string{
			"aduan", "komplain", "lambat", "teruk", "kecewa", "tidak puas hati",
			"complaint", "slow", "disappointed", "poor service",
		},
		PraiseWords: []string{
			"bagus", "hebat", "terbaik", "tahniah", "syabas",
			"great", "excellent", "awesome", "well done", "good job",
		},
		ConfusionWords: []string{
			"keliru", "tak faham", "tidak faham", "kurang faham", "tak jelas",
			"confused", "confusing", "unclear", "blur",
		},

		PositiveWords: []string{
			"bagus", "baik", "terbaik", "hebat", "cantik", "mudah", "senang",
			"suka", "gembira", "puas",
			"good", "great", "excellent", "nice", "easy", "helpful", "love",
		},
		NegativeWords: []string{
			"teruk", "buruk", "lambat", "susah", "payah", "sukar", "marah",
			"kecewa", "benci",
			"bad", "terrible", "slow", "hard", "difficult", "angry",
			"disappointed", "useless",
		},
		UrgentWords: []string{
			"segera", "cepat", "sekarang", "kecemasan",
			"urgent", "emergency", "immediately", "asap", "hari ini",
		},

		TopicCategories: []TopicCategory{
			{Name: CategoryOrganization, Words: []string{
				"lznk", "pejabat", "alamat", "lokasi", "telefon", "talian", "hubungi", "contact",
			}},
			{Name: CategoryPayment, Words: []string{
				"bayar", "tunai", "online", "fpx", "kad kredit", "ansuran", "resit",
			}},
			{Name: CategoryThreshold, Words: []string{
				"nisab", "kadar", "rate", "minimum", "uruf",
			}},
			{Name: CategoryBusiness, Words: []string{
				"perniagaan", "niaga", "syarikat", "bisnes", "business", "company",
				"untung", "keuntungan", "modal",
			}},
			{Name: CategoryTimePeriod, Words: []string{
				"haul", "tahun", "bulan", "tempoh", "tarikh", "masa", "waktu", "bila",
				"year", "month", "period", "time", "deadline",
			}},
			{Name: CategoryZakatType, Words: []string{
				"fitrah", "pendapatan", "simpanan", "emas", "perak", "padi",
				"saham", "ternakan", "kwsp", "income", "savings",
			}},
		},

		MalayIndicators: []string{
			"apa", "siapa", "bagaimana", "bila", "mana", "kenapa", "berapa",
			"zakat", "bayar", "terima kasih", "assalam", "assalamualaikum",
		},
		EnglishIndicators: []string{
			"what", "who", "how", "when", "where", "why", "can",
			"thank you", "hello", "please",
		},
	}
}

// containsPhrase checks if phrase exists as a word/phrase in text (not
// substring): "mana" matches "di mana?" but not "bagaimanakah". Text is
// expected in cleaned form, where '?' is the only surviving punctuation.
func containsPhrase(text, phrase string) bool {
	phrase = strings.TrimSpace(phrase)
	if phrase == "" {
		return false
	}

	padded := " " + text + " "
	if strings.Contains(padded, " "+phrase+" ") {
		return true
	}
	return strings.Contains(padded, " "+phrase+"? ")
}

func containsAny(text string, phrases []string) bool {
	for _, phrase := range phrases {
		if containsPhrase(text, phrase) {
			return true
		}
	}
	return false
}

func countHits(text string, phrases []string) int {
	hits := 0
	for _, phrase := range phrases {
		if containsPhrase(text, phrase) {
			hits++
		}
	}
	return hits
}

// detectLanguage guesses the dominant language of a cleaned (but not
// typo-substituted) message. Ties and indicator-free messages are "mixed".
func detectLanguage(text string, tables *Tables) string {
	malay := countHits(text, tables.MalayIndicators)
	english := countHits(text, tables.EnglishIndicators)
	switch {
	case malay > english:
		return LanguageMalay
	case english > malay:
		return LanguageEnglish
	default:
		return LanguageMixed
	}
}
