package telegram

import (
	"fmt"
	"strconv"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/aliskhannn/nurul-islam-bot/internal/domain/entities"
	"github.com/aliskhannn/nurul-islam-bot/internal/player"
)

// buildHomeKeyboard is the main menu shown under the dashboard.
func buildHomeKeyboard() *tgbotapi.InlineKeyboardMarkup {
	kb := tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(btnPrayer, buildPrayerCallback()),
			tgbotapi.NewInlineKeyboardButtonData(btnQibla, buildQiblaCallback()),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(btnQuran, buildQuranListCallback(0)),
			tgbotapi.NewInlineKeyboardButtonData(btnHadith, buildHadithBooksCallback()),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(btnDua, buildDuaRandomCallback()),
			tgbotapi.NewInlineKeyboardButtonData(btnTasbih, buildTasbihCallback(tasbihIncrement)),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(btnSettings, buildSettingsCallback(settingsMenu)),
		),
	)
	return &kb
}

func buildPrayerKeyboard() *tgbotapi.InlineKeyboardMarkup {
	kb := tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(btnRefresh, buildPrayerCallback()),
			tgbotapi.NewInlineKeyboardButtonData(btnHome, buildHomeCallback()),
		),
	)
	return &kb
}

// buildLocationKeyboard asks the client for the device location.
func buildLocationKeyboard() tgbotapi.ReplyKeyboardMarkup {
	kb := tgbotapi.NewReplyKeyboard(
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButtonLocation(btnLocation),
		),
	)
	kb.OneTimeKeyboard = true
	kb.ResizeKeyboard = true
	return kb
}

// buildPagerRow returns prev/next buttons, or nil when there is one page.
func buildPagerRow(page, totalPages int, data func(page int) string) []tgbotapi.InlineKeyboardButton {
	var row []tgbotapi.InlineKeyboardButton
	if page > 0 {
		row = append(row, tgbotapi.NewInlineKeyboardButtonData(btnPrev, data(page-1)))
	}
	if page < totalPages-1 {
		row = append(row, tgbotapi.NewInlineKeyboardButtonData(btnNext, data(page+1)))
	}
	return row
}

func buildSurahListKeyboard(shown []entities.Surah, page, totalPages int) *tgbotapi.InlineKeyboardMarkup {
	var rows [][]tgbotapi.InlineKeyboardButton

	var row []tgbotapi.InlineKeyboardButton
	for _, s := range shown {
		row = append(row, tgbotapi.NewInlineKeyboardButtonData(
			bn(strconv.Itoa(s.Number)),
			buildQuranPageCallback(s.Number, 0),
		))
		if len(row) == 5 {
			rows = append(rows, row)
			row = nil
		}
	}
	if len(row) > 0 {
		rows = append(rows, row)
	}

	if pager := buildPagerRow(page, totalPages, buildQuranListCallback); len(pager) > 0 {
		rows = append(rows, pager)
	}
	rows = append(rows, tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData(btnHome, buildHomeCallback()),
	))

	kb := tgbotapi.NewInlineKeyboardMarkup(rows...)
	return &kb
}

func buildSurahSearchKeyboard(found []entities.Surah) *tgbotapi.InlineKeyboardMarkup {
	var rows [][]tgbotapi.InlineKeyboardButton
	for _, s := range found {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(
				fmt.Sprintf("%s. %s", bn(strconv.Itoa(s.Number)), s.EnglishName),
				buildQuranPageCallback(s.Number, 0),
			),
		))
	}
	kb := tgbotapi.NewInlineKeyboardMarkup(rows...)
	return &kb
}

func buildSurahPageKeyboard(chapter, page, totalPages, firstVerse int) *tgbotapi.InlineKeyboardMarkup {
	rows := [][]tgbotapi.InlineKeyboardButton{
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🎧 পুরো সূরা শুনুন", buildQuranPlayCallback(chapter)),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🔁 আয়াত ধরে শুনুন", buildQuranVerseCallback(chapter, firstVerse)),
		),
	}

	pager := buildPagerRow(page, totalPages, func(p int) string {
		return buildQuranPageCallback(chapter, p)
	})
	if len(pager) > 0 {
		rows = append(rows, pager)
	}
	rows = append(rows, tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData("📚 সূরার তালিকা", buildQuranListCallback((chapter-1)/surahsPerPage)),
	))

	kb := tgbotapi.NewInlineKeyboardMarkup(rows...)
	return &kb
}

func buildHadithBooksKeyboard(books []entities.HadithBook) *tgbotapi.InlineKeyboardMarkup {
	var rows [][]tgbotapi.InlineKeyboardButton
	for _, b := range books {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(b.Name, buildHadithBookCallback(b.Slug, 0)),
		))
	}
	kb := tgbotapi.NewInlineKeyboardMarkup(rows...)
	return &kb
}

func buildHadithPageKeyboard(slug string, offset, total int) *tgbotapi.InlineKeyboardMarkup {
	page := offset / hadithsPerPage
	pager := buildPagerRow(page, pageCount(total, hadithsPerPage), func(p int) string {
		return buildHadithBookCallback(slug, p*hadithsPerPage)
	})

	var rows [][]tgbotapi.InlineKeyboardButton
	if len(pager) > 0 {
		rows = append(rows, pager)
	}
	rows = append(rows, tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData("📚 গ্রন্থসমূহ", buildHadithBooksCallback()),
	))

	kb := tgbotapi.NewInlineKeyboardMarkup(rows...)
	return &kb
}

func buildDuaKeyboard() *tgbotapi.InlineKeyboardMarkup {
	kb := tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🔄 আরেকটি দোয়া", buildDuaRandomCallback()),
			tgbotapi.NewInlineKeyboardButtonData(btnHome, buildHomeCallback()),
		),
	)
	return &kb
}

func buildDuaListKeyboard(duas []entities.Dua) *tgbotapi.InlineKeyboardMarkup {
	var rows [][]tgbotapi.InlineKeyboardButton
	for _, d := range duas {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(truncate(d.Title, 40), buildDuaShowCallback(d.ID)),
		))
	}
	kb := tgbotapi.NewInlineKeyboardMarkup(rows...)
	return &kb
}

func buildTasbihKeyboard() *tgbotapi.InlineKeyboardMarkup {
	kb := tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("📿 +১", buildTasbihCallback(tasbihIncrement)),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🔄 রিসেট", buildTasbihCallback(tasbihReset)),
			tgbotapi.NewInlineKeyboardButtonData(btnHome, buildHomeCallback()),
		),
	)
	return &kb
}

// buildSettingsKeyboard builds main settings keyboard.
func buildSettingsKeyboard(s *entities.UserSettings) *tgbotapi.InlineKeyboardMarkup {
	lang := string(entities.LanguageEnglish)
	if s.Language == entities.LanguageEnglish {
		lang = string(entities.LanguageBengali)
	}

	kb := tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("👤 নাম বদলান", buildSettingsCallback(settingsName)),
			tgbotapi.NewInlineKeyboardButtonData("🌐 ভাষা", buildSettingsCallback(settingsLanguage, lang)),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🧮 হিসাব পদ্ধতি", buildSettingsCallback(settingsMethod)),
			tgbotapi.NewInlineKeyboardButtonData("📍 অবস্থান", buildSettingsCallback(settingsLocation)),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🔔 নোটিফিকেশন", buildSettingsCallback(settingsAlerts)),
			tgbotapi.NewInlineKeyboardButtonData("🌙 ডার্ক মোড", buildSettingsCallback(settingsDarkMode)),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(btnHome, buildHomeCallback()),
		),
	)
	return &kb
}

func buildMethodKeyboard(current int) *tgbotapi.InlineKeyboardMarkup {
	var rows [][]tgbotapi.InlineKeyboardButton
	for _, m := range entities.CalculationMethods {
		label := m.Name
		if m.ID == current {
			label = "✅ " + label
		}
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(label, buildSettingsCallback(settingsMethod, strconv.Itoa(m.ID))),
		))
	}
	rows = append(rows, tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData("◀️ সেটিংস", buildSettingsCallback(settingsMenu)),
	))
	kb := tgbotapi.NewInlineKeyboardMarkup(rows...)
	return &kb
}

func buildResetKeyboard() *tgbotapi.InlineKeyboardMarkup {
	kb := tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("✅ হ্যাঁ, মুছে ফেলুন", buildResetConfirmCallback()),
			tgbotapi.NewInlineKeyboardButtonData("❌ না", buildResetCancelCallback()),
		),
	)
	return &kb
}

// buildPlayerKeyboard builds the controls of an audio message. The toggle shows
// the action it will perform.
func buildPlayerKeyboard(token uint64, status player.Status) tgbotapi.InlineKeyboardMarkup {
	toggle := "⏸ বিরতি"
	if status == player.StatusPaused {
		toggle = "▶️ চালান"
	}

	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("⏮", buildPlayerCallback(playerPrev, token)),
			tgbotapi.NewInlineKeyboardButtonData(toggle, buildPlayerCallback(playerToggle, token)),
			tgbotapi.NewInlineKeyboardButtonData("⏭", buildPlayerCallback(playerNext, token)),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("✅ শেষ হয়েছে", buildPlayerCallback(playerEnded, token)),
			tgbotapi.NewInlineKeyboardButtonData("⏹ বন্ধ", buildPlayerCallback(playerClose, token)),
		),
	)
}
