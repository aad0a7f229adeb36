package entities

// HadithBook is one of the supported hadith collections.
type HadithBook struct {
	ID          string `json:"id"`
	Slug        string `json:"slug"`
	Name        string `json:"name"`
	NameArabic  string `json:"nameArabic"`
	TotalHadith int    `json:"totalHadith"`
}

// Hadith pairs a translated narration with its Arabic original.
type Hadith struct {
	Number     int    `json:"hadithnumber"`
	Text       string `json:"text"`
	ArabicText string `json:"arabicText"`
}

// HadithBooks are the collections offered to users.
var HadithBooks = []HadithBook{
	{ID: "bukhari", Slug: "bukhari", Name: "সহীহ বুখারী", NameArabic: "صحيح البخاري", TotalHadith: 7563},
	{ID: "muslim", Slug: "muslim", Name: "সহীহ মুসলিম", NameArabic: "صحيح مسلم", TotalHadith: 7453},
	{ID: "tirmidhi", Slug: "tirmidhi", Name: "জামি আত-তিরমিজি", NameArabic: "جامع الترمذي", TotalHadith: 3956},
	{ID: "abudawud", Slug: "abudawud", Name: "সুনান আবু দাউদ", NameArabic: "سنن أبي داود", TotalHadith: 5274},
	{ID: "nasai", Slug: "nasai", Name: "সুনান আন-নাসায়ী", NameArabic: "سنن النسائي", TotalHadith: 5758},
	{ID: "ibnmajah", Slug: "ibnmajah", Name: "সুনান ইবনে মাজাহ", NameArabic: "سنن ابن ماجه", TotalHadith: 4341},
}

// LookupHadithBook finds a collection by slug.
func LookupHadithBook(slug string) (HadithBook, bool) {
	for _, b := range HadithBooks {
		if b.Slug == slug {
			return b, true
		}
	}
	return HadithBook{}, false
}
