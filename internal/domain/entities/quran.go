package entities

// Surah is a chapter of the Quran.
type Surah struct {
	Number                 int    `json:"number"`
	Name                   string `json:"name"`
	EnglishName            string `json:"englishName"`
	EnglishNameTranslation string `json:"englishNameTranslation"`
	NumberOfAyahs          int    `json:"numberOfAyahs"`
	RevelationType         string `json:"revelationType"`
}

// Ayah is a verse. Number is the global verse id, NumberInSurah the local one.
type Ayah struct {
	Number        int    `json:"number"`
	Text          string `json:"text"`
	NumberInSurah int    `json:"numberInSurah"`
	Juz           int    `json:"juz"`
}

// ReadingVerse pairs the Arabic text of a verse with its translation.
type ReadingVerse struct {
	Ayah
	Translation string `json:"translation"`
}

// SurahReading is a chapter opened for reading.
type SurahReading struct {
	Surah  Surah          `json:"surah"`
	Verses []ReadingVerse `json:"verses"`
}

// LastRead is the last chapter the user opened.
type LastRead struct {
	Number int    `json:"number"`
	Name   string `json:"name"`
}

// Quran editions used by the text provider.
const (
	EditionUthmani = "quran-uthmani"
	EditionEnglish = "en.sahih"
	EditionBengali = "bn.bengali"
)

// TranslationEdition maps a language to its translation edition.
func TranslationEdition(lang Language) string {
	if lang == LanguageEnglish {
		return EditionEnglish
	}
	return EditionBengali
}
