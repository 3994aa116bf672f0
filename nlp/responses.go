package nlp

import (
	"fmt"
	"strings"
)

// Fixed replies for intent short-circuits. Candidate lists exist per
// language; the responder always serves the first entry so replies stay
// deterministic, later entries are approved alternates.

var greetingRepliesMalay = []string{
	"Assalamualaikum! 👋 Saya ZAKIA dari LZNK. Bagaimana saya boleh membantu anda? 😊",
	"Salam sejahtera! 😊 Ada apa-apa soalan tentang zakat yang boleh saya bantu?",
}

var greetingRepliesEnglish = []string{
	"Hello! 😊 Welcome to LZNK Chat Support. How can I help you today?",
	"Hi! 👋 I'm ZAKIA, the LZNK assistant. What would you like to know about zakat?",
}

var thanksRepliesMalay = []string{
	"Sama-sama! 😊 Saya gembira dapat membantu. Ada lagi soalan?",
	"Tiada masalah! 😊 Jangan segan untuk bertanya lagi.",
}

var thanksRepliesEnglish = []string{
	"You're welcome! 😊 Glad I could help. Anything else?",
	"No problem at all! 😊 Feel free to ask again.",
}

var goodbyeRepliesMalay = []string{
	"Terima kasih! Semoga bermanfaat. Jumpa lagi! 👋",
	"Terima kasih kerana menggunakan ZAKIA. Jumpa lagi! 👋",
}

var goodbyeRepliesEnglish = []string{
	"Thank you! Hope that was helpful. See you again! 👋",
	"Thanks for chatting with ZAKIA. Goodbye! 👋",
}

const (
	emptyInputReply = "Sila masukkan soalan anda. 😊"

	helpRequestReply = "Saya di sini untuk membantu! 😊 Anda boleh bertanya tentang cara membayar zakat, " +
		"pengiraan zakat pendapatan atau simpanan, nisab semasa, dan perkhidmatan LZNK."

	complaintReply = "Maaf atas kesulitan yang anda alami. 🙏 Maklum balas anda penting kepada kami. " +
		"Sila hubungi pejabat LZNK di 04-733 6633 supaya pihak kami dapat membantu dengan segera."

	praiseReply = "Terima kasih atas sokongan anda! 😄 Saya gembira dapat membantu. Ada lagi soalan tentang zakat?"

	confusionReply = "Maaf jika penerangan saya kurang jelas. 😊 Cuba tanya semula dengan ayat yang lebih ringkas, " +
		"contohnya 'Apa itu nisab?' atau 'Macam mana nak bayar zakat?'."

	fallbackPrefix = "Maaf, saya kurang faham soalan anda. 🙏"
)

// categoryReplies are the topic-tailored fallbacks used when no FAQ matched
// but the classifier recognized what area the user is asking about.
var categoryReplies = map[Category]string{
	CategoryOrganization: "Saya tidak pasti tentang perkara itu, tetapi saya boleh membantu dengan maklumat pejabat, " +
		"lokasi kaunter, dan perkhidmatan LZNK. 📞 Talian am: 04-733 6633.",
	CategoryPayment: "Saya tidak pasti tentang perkara itu, tetapi anda boleh bertanya tentang cara dan saluran " +
		"pembayaran zakat seperti kaunter, perbankan internet, dan potongan gaji. 💳",
	CategoryThreshold: "Saya tidak pasti tentang perkara itu, tetapi anda boleh bertanya tentang nisab dan " +
		"kadar zakat semasa. 📊",
	CategoryBusiness: "Saya tidak pasti tentang perkara itu, tetapi anda boleh bertanya tentang zakat perniagaan " +
		"dan syarat pengiraannya. 🏢",
	CategoryTimePeriod: "Saya tidak pasti tentang perkara itu, tetapi anda boleh bertanya tentang haul dan " +
		"tempoh taksiran zakat. 📅",
	CategoryZakatType: "Saya tidak pasti tentang perkara itu, tetapi anda boleh bertanya tentang jenis-jenis zakat " +
		"seperti zakat pendapatan, simpanan, emas, dan fitrah. 💰",
}

// defaultSuggestions are offered when no corpus entry shares a keyword with
// the query.
var defaultSuggestions = []string{
	"Cara membayar zakat",
	"Pengiraan zakat pendapatan dan simpanan",
	"Maklumat nisab dan kadar zakat",
}

// buildFallbackReply assembles the generic "didn't understand" reply with a
// numbered suggestion list.
func buildFallbackReply(suggestions []string) string {
	var b strings.Builder
	b.WriteString(fallbackPrefix)
	b.WriteString("\n\nMungkin anda ingin bertanya tentang:\n")
	for i, question := range suggestions {
		fmt.Fprintf(&b, "%d. %s\n", i+1, question)
	}
	return strings.TrimRight(b.String(), "\n")
}

// pickReply selects the language-appropriate candidate list and serves its
// first entry. Malay is the default for mixed or undetected language.
func pickReply(language string, malay, english []string) string {
	if language == LanguageEnglish {
		return english[0]
	}
	return malay[0]
}
