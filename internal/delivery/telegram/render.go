package telegram

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/aliskhannn/nurul-islam-bot/internal/domain/entities"
	"github.com/aliskhannn/nurul-islam-bot/internal/domain/prayer"
	"github.com/aliskhannn/nurul-islam-bot/internal/player"
	"github.com/aliskhannn/nurul-islam-bot/internal/service"
)

const (
	surahsPerPage  = 10
	versesPerPage  = 5
	hadithsPerPage = 3
	maxVerseLen    = 350
	maxHadithLen   = 600
)

var prayerNames = map[entities.PrayerLabel]string{
	entities.Fajr:    "ফজর",
	entities.Sunrise: "সূর্যোদয়",
	entities.Dhuhr:   "যোহর",
	entities.Asr:     "আসর",
	entities.Maghrib: "মাগরিব",
	entities.Isha:    "ইশা",
}

func prayerName(label entities.PrayerLabel) string {
	if n, ok := prayerNames[label]; ok {
		return n
	}
	return string(label)
}

func formatClock(c entities.Clock) string {
	return bn(c.Format12Hour())
}

// formatDuration renders minutes as "২ ঘণ্টা ১৫ মিনিট".
func formatDuration(minutes int) string {
	h, m := minutes/60, minutes%60
	switch {
	case h == 0:
		return bn(strconv.Itoa(m)) + " মিনিট"
	case m == 0:
		return bn(strconv.Itoa(h)) + " ঘণ্টা"
	default:
		return bn(strconv.Itoa(h)) + " ঘণ্টা " + bn(strconv.Itoa(m)) + " মিনিট"
	}
}

func renderNotices(sb *strings.Builder, notices []error) {
	for _, n := range notices {
		switch {
		case errors.Is(n, entities.ErrCapabilityUnavailable):
			sb.WriteString("\n" + noticeDefaultLocation)
		case errors.Is(n, entities.ErrProviderFailure):
			sb.WriteString("\n" + noticeStaleSchedule)
		}
	}
}

func renderWindow(sb *strings.Builder, w prayer.Window) {
	fmt.Fprintf(sb, "⏳ <b>পরবর্তী:</b> %s, %s (আর %s বাকি)\n",
		prayerName(w.Next.Label),
		formatClock(w.Next.Clock),
		formatDuration(w.Remaining()),
	)
	fmt.Fprintf(sb, "%s %s%%\n", progressBar(w.Progress), bn(strconv.Itoa(int(w.Progress))))
}

func renderDashboard(d *service.Dashboard) string {
	var sb strings.Builder

	greeting := d.Greeting
	if d.Name != "" {
		greeting += ", " + esc(d.Name)
	}
	fmt.Fprintf(&sb, "<b>%s</b> 🌙\n", greeting)
	fmt.Fprintf(&sb, "📅 %s\n\n", esc(bn(d.HijriDate)))

	if d.Times != nil && d.Window != nil {
		fmt.Fprintf(&sb, "📍 %s\n", esc(d.Times.City))
		renderWindow(&sb, *d.Window)
	}

	if d.LastRead != nil {
		fmt.Fprintf(&sb, "\n📖 <b>সর্বশেষ পড়া:</b> %s. %s\n", bn(strconv.Itoa(d.LastRead.Number)), esc(d.LastRead.Name))
	}

	renderNotices(&sb, d.Notices)

	return sb.String()
}

func renderPrayer(times *service.PrayerTimes, w prayer.Window) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "🕌 <b>নামাজের সময়</b>\n📍 %s\n📅 %s\n\n", esc(times.City), bn(times.Schedule.Date))

	for _, p := range times.Schedule.Points {
		marker := "▫️"
		switch {
		case p.Label == w.Next.Label:
			marker = "⏳"
		case p.Label == w.Prev.Label:
			marker = "✅"
		}
		fmt.Fprintf(&sb, "%s %s — <b>%s</b>\n", marker, prayerName(p.Label), formatClock(p.Clock))
	}

	sb.WriteString("\n")
	renderWindow(&sb, w)

	if m, ok := entities.LookupCalculationMethod(times.Method); ok {
		fmt.Fprintf(&sb, "\n<i>%s</i>\n", esc(m.Name))
	}

	var notices []error
	if times.Stale {
		notices = append(notices, entities.ErrProviderFailure)
	}
	if times.DefaultLocation {
		notices = append(notices, entities.ErrCapabilityUnavailable)
	}
	renderNotices(&sb, notices)

	return sb.String()
}

func renderQibla(r service.CompassReading, approximate bool, compass bool) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "🧭 <b>কিবলার দিক</b>\n\nউত্তর থেকে ঘড়ির কাঁটার দিকে <b>%s°</b> (%s)\n",
		bn(strconv.FormatFloat(r.Bearing, 'f', 1, 64)),
		r.Point,
	)
	if compass {
		fmt.Fprintf(&sb, "ডানদিকে ঘুরুন: <b>%s°</b>\n", bn(strconv.FormatFloat(r.Relative, 'f', 0, 64)))
	} else {
		sb.WriteString("\n" + noticeNoCompass + "\n")
	}
	if approximate {
		sb.WriteString("\n" + noticeApproxQibla)
	}

	return sb.String()
}

func pageCount(n, perPage int) int {
	return (n + perPage - 1) / perPage
}

// pageBounds clamps page into range and returns the slice bounds of that page.
func pageBounds(n, perPage, page int) (from, to, clamped int) {
	total := pageCount(n, perPage)
	if page >= total {
		page = total - 1
	}
	if page < 0 {
		page = 0
	}
	from = page * perPage
	to = min(from+perPage, n)
	return from, to, page
}

func renderSurahList(surahs []entities.Surah, page int) (string, []entities.Surah, int) {
	from, to, page := pageBounds(len(surahs), surahsPerPage, page)

	var sb strings.Builder
	fmt.Fprintf(&sb, "📖 <b>সূরাসমূহ</b> (পৃষ্ঠা %s/%s)\n\n",
		bn(strconv.Itoa(page+1)),
		bn(strconv.Itoa(pageCount(len(surahs), surahsPerPage))),
	)
	for _, s := range surahs[from:to] {
		fmt.Fprintf(&sb, "%s. %s %s (%s আয়াত)\n",
			bn(strconv.Itoa(s.Number)),
			esc(s.EnglishName),
			s.Name,
			bn(strconv.Itoa(s.NumberOfAyahs)),
		)
	}
	sb.WriteString("\nসরাসরি খুঁজতে: /quran ইয়াসীন বা /quran 36")

	return sb.String(), surahs[from:to], page
}

func renderSurahPage(r *entities.SurahReading, page int) (string, int) {
	from, to, page := pageBounds(len(r.Verses), versesPerPage, page)

	var sb strings.Builder
	fmt.Fprintf(&sb, "📖 <b>%s. %s</b> %s\n<i>%s · %s আয়াত</i>\n\n",
		bn(strconv.Itoa(r.Surah.Number)),
		esc(r.Surah.EnglishName),
		r.Surah.Name,
		esc(r.Surah.EnglishNameTranslation),
		bn(strconv.Itoa(r.Surah.NumberOfAyahs)),
	)
	for _, v := range r.Verses[from:to] {
		fmt.Fprintf(&sb, "%s%s ﴿%s﴾\n%s<b>%s.</b> %s\n\n",
			rlm, esc(truncate(v.Text, maxVerseLen)), strconv.Itoa(v.NumberInSurah),
			lrm, bn(strconv.Itoa(v.NumberInSurah)), esc(truncate(v.Translation, maxVerseLen)),
		)
	}

	return sb.String(), page
}

func renderHadithPage(p *service.HadithPage) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "📜 <b>%s</b> %s\n", esc(p.Book.Name), p.Book.NameArabic)
	if p.Total == 0 {
		sb.WriteString("\n" + msgHadithNotFound)
		return sb.String()
	}

	fmt.Fprintf(&sb, "<i>%s–%s / %s</i>\n\n",
		bn(strconv.Itoa(p.Offset+1)),
		bn(strconv.Itoa(p.Offset+len(p.Hadiths))),
		bn(strconv.Itoa(p.Total)),
	)
	for _, hd := range p.Hadiths {
		fmt.Fprintf(&sb, "<b>হাদিস %s</b>\n", bn(strconv.Itoa(hd.Number)))
		if hd.ArabicText != "" {
			fmt.Fprintf(&sb, "%s%s\n", rlm, esc(truncate(hd.ArabicText, maxHadithLen)))
		}
		fmt.Fprintf(&sb, "%s%s\n\n", lrm, esc(truncate(hd.Text, maxHadithLen)))
	}

	return sb.String()
}

func renderDua(d entities.Dua) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "🤲 <b>%s</b>\n<i>%s</i>\n\n", esc(d.Title), esc(d.Category))
	fmt.Fprintf(&sb, "%s%s\n\n", rlm, esc(d.Arabic))
	if d.Transliteration != "" {
		fmt.Fprintf(&sb, "<i>%s</i>\n\n", esc(d.Transliteration))
	}
	fmt.Fprintf(&sb, "%s\n\n📚 %s", esc(d.Translation), esc(d.Reference))

	return sb.String()
}

func renderDuaList(duas []entities.Dua) string {
	var sb strings.Builder
	sb.WriteString("🤲 <b>দোয়া</b>\n\n")
	for _, d := range duas {
		fmt.Fprintf(&sb, "• %s <i>(%s)</i>\n", esc(d.Title), esc(d.Category))
	}
	return sb.String()
}

func renderTasbih(s entities.TasbihState) string {
	return fmt.Sprintf("📿 <b>তাসবীহ</b>\n\nএই সেশনে: <b>%s</b>\nসর্বমোট: %s",
		bn(strconv.Itoa(s.Count)),
		bn(strconv.FormatInt(s.Total, 10)),
	)
}

func formatBool(b bool) string {
	if b {
		return "চালু ✅"
	}
	return "বন্ধ ❌"
}

func formatLanguage(l entities.Language) string {
	if l == entities.LanguageEnglish {
		return "English"
	}
	return "বাংলা"
}

func renderSettings(s *entities.UserSettings) string {
	name := s.Name
	if name == "" {
		name = "—"
	}
	method := strconv.Itoa(s.CalculationMethod)
	if m, ok := entities.LookupCalculationMethod(s.CalculationMethod); ok {
		method = m.Name
	}
	_, city, shared := s.LocationOrDefault()
	if !shared {
		city += " (ডিফল্ট)"
	}

	return fmt.Sprintf(
		"<b>⚙️ সেটিংস</b>\n\n"+
			"👤 <b>নাম:</b> %s\n"+
			"🌐 <b>অনুবাদের ভাষা:</b> %s\n"+
			"🧮 <b>হিসাব পদ্ধতি:</b> %s\n"+
			"📍 <b>অবস্থান:</b> %s\n"+
			"🔔 <b>নামাজের নোটিফিকেশন:</b> %s\n"+
			"🌙 <b>ডার্ক মোড:</b> %s\n",
		esc(name),
		formatLanguage(s.Language),
		esc(method),
		esc(city),
		formatBool(s.PrayerAlerts),
		formatBool(s.DarkMode),
	)
}

func renderPrayerAlert(a entities.PrayerAlert) string {
	return fmt.Sprintf("🕌 <b>%s</b> নামাজের সময় হয়েছে (%s)।\n\nحَيَّ عَلَى الصَّلَاةِ",
		prayerName(a.Label),
		formatClock(a.Clock),
	)
}

func renderPlayerCaption(src player.Source, status player.Status) string {
	pos := src.Position

	var what string
	if pos.Unit == entities.UnitAyah {
		what = fmt.Sprintf("সূরা %s, আয়াত %s/%s",
			bn(strconv.Itoa(pos.Chapter)),
			bn(strconv.Itoa(pos.Verse)),
			bn(strconv.Itoa(pos.Total)),
		)
	} else {
		what = "সূরা " + bn(strconv.Itoa(pos.Chapter))
	}

	icon := "▶️"
	if status == player.StatusPaused {
		icon = "⏸"
	}
	return icon + " " + what
}
