package telegram

import (
	"strconv"
	"strings"
)

// Callback action constants.
const (
	actionHome     = "home"
	actionPrayer   = "prayer"
	actionQibla    = "qibla"
	actionQuran    = "quran"
	actionHadith   = "hadith"
	actionDua      = "dua"
	actionTasbih   = "tasbih"
	actionSettings = "settings"
	actionReset    = "reset"
	actionPlayer   = "player"
)

// Quran sub-actions.
const (
	quranList  = "list"
	quranPage  = "page"
	quranPlay  = "play"
	quranVerse = "verse"
)

// Hadith sub-actions.
const (
	hadithBooks = "books"
	hadithBook  = "book"
)

// Dua sub-actions.
const (
	duaRandom = "random"
	duaShow   = "show"
)

// Tasbih sub-actions.
const (
	tasbihIncrement = "inc"
	tasbihReset     = "reset"
)

// Settings sub-actions.
const (
	settingsMenu     = "menu"
	settingsLanguage = "language"
	settingsMethod   = "method"
	settingsName     = "name"
	settingsAlerts   = "alerts"
	settingsDarkMode = "dark"
	settingsLocation = "location"
)

const (
	resetConfirm = "confirm"
	resetCancel  = "cancel"
)

// Player sub-actions. Every player callback carries the token of the source
// the keyboard was attached to.
const (
	playerToggle = "toggle"
	playerNext   = "next"
	playerPrev   = "prev"
	playerClose  = "close"
	playerEnded  = "ended"
)

// callbackData represents structured callback data.
type callbackData struct {
	Action string
	Params []string
	Raw    string
}

// encode creates callback string.
func (cd callbackData) encode() string {
	if len(cd.Params) == 0 {
		return cd.Action
	}
	return cd.Action + ":" + strings.Join(cd.Params, ":")
}

// decodeCallback parses callback data string.
func decodeCallback(data string) callbackData {
	parts := strings.Split(data, ":")
	if len(parts) == 0 || parts[0] == "" {
		return callbackData{Raw: data}
	}

	return callbackData{
		Action: parts[0],
		Params: parts[1:],
		Raw:    data,
	}
}

// sub returns the sub-action, or "" when there is none.
func (cd callbackData) sub() string {
	if len(cd.Params) == 0 {
		return ""
	}
	return cd.Params[0]
}

// intParam parses the i-th parameter.
func (cd callbackData) intParam(i int) (int, bool) {
	if i >= len(cd.Params) {
		return 0, false
	}
	n, err := strconv.Atoi(cd.Params[i])
	if err != nil {
		return 0, false
	}
	return n, true
}

func buildHomeCallback() string {
	return actionHome
}

func buildPrayerCallback() string {
	return actionPrayer
}

func buildQiblaCallback() string {
	return actionQibla
}

func buildQuranListCallback(page int) string {
	return callbackData{
		Action: actionQuran,
		Params: []string{quranList, strconv.Itoa(page)},
	}.encode()
}

// buildQuranPageCallback opens a page of verses of a surah.
func buildQuranPageCallback(chapter, page int) string {
	return callbackData{
		Action: actionQuran,
		Params: []string{quranPage, strconv.Itoa(chapter), strconv.Itoa(page)},
	}.encode()
}

// buildQuranPlayCallback starts chapter playback.
func buildQuranPlayCallback(chapter int) string {
	return callbackData{
		Action: actionQuran,
		Params: []string{quranPlay, strconv.Itoa(chapter)},
	}.encode()
}

// buildQuranVerseCallback starts verse-by-verse playback.
func buildQuranVerseCallback(chapter, verse int) string {
	return callbackData{
		Action: actionQuran,
		Params: []string{quranVerse, strconv.Itoa(chapter), strconv.Itoa(verse)},
	}.encode()
}

func buildHadithBooksCallback() string {
	return callbackData{
		Action: actionHadith,
		Params: []string{hadithBooks},
	}.encode()
}

func buildHadithBookCallback(slug string, offset int) string {
	return callbackData{
		Action: actionHadith,
		Params: []string{hadithBook, slug, strconv.Itoa(offset)},
	}.encode()
}

func buildDuaRandomCallback() string {
	return callbackData{
		Action: actionDua,
		Params: []string{duaRandom},
	}.encode()
}

func buildDuaShowCallback(id string) string {
	return callbackData{
		Action: actionDua,
		Params: []string{duaShow, id},
	}.encode()
}

func buildTasbihCallback(subAction string) string {
	return callbackData{
		Action: actionTasbih,
		Params: []string{subAction},
	}.encode()
}

// buildSettingsCallback builds callback data for settings-related actions.
func buildSettingsCallback(subAction string, value ...string) string {
	params := []string{subAction}
	params = append(params, value...)
	return callbackData{
		Action: actionSettings,
		Params: params,
	}.encode()
}

func buildResetConfirmCallback() string {
	return callbackData{Action: actionReset, Params: []string{resetConfirm}}.encode()
}

func buildResetCancelCallback() string {
	return callbackData{Action: actionReset, Params: []string{resetCancel}}.encode()
}

// buildPlayerCallback builds a player control bound to a source token.
func buildPlayerCallback(op string, token uint64) string {
	return callbackData{
		Action: actionPlayer,
		Params: []string{op, strconv.FormatUint(token, 10)},
	}.encode()
}

// parsePlayerCallback extracts the control and the token of a player callback.
func parsePlayerCallback(cd callbackData) (op string, token uint64, ok bool) {
	if cd.Action != actionPlayer || len(cd.Params) != 2 {
		return "", 0, false
	}
	token, err := strconv.ParseUint(cd.Params[1], 10, 64)
	if err != nil {
		return "", 0, false
	}
	return cd.Params[0], token, true
}
