package entities

// Dua is a supplication text.
type Dua struct {
	ID              string `json:"id"`
	Category        string `json:"category"`
	Title           string `json:"title"`
	Arabic          string `json:"arabic"`
	Transliteration string `json:"transliteration,omitempty"`
	Translation     string `json:"translation"`
	Reference       string `json:"reference"`
}

// Duas is the static collection.
var Duas = []Dua{
	{
		ID:              "1",
		Category:        "সকাল",
		Title:           "ঘুম থেকে জাগার দোয়া",
		Arabic:          "الْحَمْدُ لِلَّهِ الَّذِي أَحْيَانَا بَعْدَ مَا أَمَاتَنَا وَإِلَيْهِ النُّشُورُ",
		Transliteration: "Alhamdu lillahil-ladhi ahyana ba'da ma amatana wa ilayhin-nushur",
		Translation:     "সকল প্রশংসা আল্লাহর জন্য যিনি আমাদেরকে মৃত্যু (ঘুম) প্রদানের পর পুনরায় জীবিত করলেন এবং তাঁর দিকেই প্রত্যাবর্তন করতে হবে।",
		Reference:       "সহীহ বুখারী",
	},
	{
		ID:          "2",
		Category:    "দৈনন্দিন",
		Title:       "বিপদ থেকে মুক্তির দোয়া",
		Arabic:      "لَا إِلَهَ إِلَّا أَنْتَ سُبْحَانَكَ إِنِّي كُنْتُ مِنَ الظَّالِمِينَ",
		Translation: "আপনি ছাড়া কোনো ইলাহ নেই, আপনি পবিত্র। নিশ্চয়ই আমি জালিমদের অন্তর্ভুক্ত ছিলাম।",
		Reference:   "সুরা আল-আম্বিয়া, ৮৭",
	},
}
