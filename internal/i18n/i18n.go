// Package i18n holds the English and Ukrainian UI strings.
package i18n

// Key names one UI string.
type Key string

const (
	Score         Key = "score"
	Best          Key = "best"
	Combo         Key = "combo"
	Level         Key = "level"
	Time          Key = "time"
	Lines         Key = "lines"
	Paused        Key = "paused"
	ResumeHint    Key = "resume_hint"
	Finished      Key = "finished"
	TimeUp        Key = "time_up"
	RetryHint     Key = "retry_hint"
	TooSmall      Key = "too_small"
	ResizeHint    Key = "resize_hint"
	LinesCleared  Key = "lines_cleared"
	Bomb          Key = "bomb"
	Star          Key = "star"
	LevelUp       Key = "level_up"
	NewBest       Key = "new_best"
	NoFit         Key = "no_fit"
	GameHelp      Key = "game_help"
	Classic       Key = "classic"
	ClassicDesc   Key = "classic_desc"
	TimeRush      Key = "time_rush"
	TimeRushDesc  Key = "time_rush_desc"
	Hard          Key = "hard"
	HardDesc      Key = "hard_desc"
	SelectMode    Key = "select_mode"
	Settings      Key = "settings"
	Theme         Key = "theme"
	Language      Key = "language"
	GameSounds    Key = "game_sounds"
	ResetBest     Key = "reset_best"
	ConfirmReset  Key = "confirm_reset"
	PersonalBest  Key = "personal_best"
	HighScores    Key = "high_scores"
	On            Key = "on"
	Off           Key = "off"
	Yes           Key = "yes"
	No            Key = "no"
	Done          Key = "done"
	MenuHelp      Key = "menu_help"
	SettingsHelp  Key = "settings_help"
	ThemeDark     Key = "theme_dark"
	ThemeLight    Key = "theme_light"
	LanguageName  Key = "language_name"
	NoScores      Key = "no_scores"
	Player        Key = "player"
	ScoreboardTab Key = "scoreboard_tab"
)

// Languages lists the supported language codes in menu order.
var Languages = []string{"en", "uk"}

var tables = map[string]map[Key]string{
	"en": {
		Score:         "Score",
		Best:          "Best",
		Combo:         "Combo",
		Level:         "LEVEL",
		Time:          "Time",
		Lines:         "Lines",
		Paused:        "PAUSED",
		ResumeHint:    "Press P to resume",
		Finished:      "FINISHED",
		TimeUp:        "Time is up!",
		RetryHint:     "R retry  B menu",
		TooSmall:      "Window too small",
		ResizeHint:    "Please resize terminal",
		LinesCleared:  "lines!",
		Bomb:          "BOOM!",
		Star:          "STAR!",
		LevelUp:       "Level up!",
		NewBest:       "New best!",
		NoFit:         "Does not fit",
		GameHelp:      "arrows move  1-3/tab shape  enter place  p pause  q quit",
		Classic:       "Classic",
		ClassicDesc:   "THE ORIGINAL ENDLESS MODE",
		TimeRush:      "Time Rush",
		TimeRushDesc:  "RACE AGAINST THE CLOCK",
		Hard:          "Hard Mode",
		HardDesc:      "SMALL FIELD, TOUGH CHALLENGES",
		SelectMode:    "SELECT MODE",
		Settings:      "SETTINGS",
		Theme:         "Theme",
		Language:      "Language",
		GameSounds:    "Game Sounds",
		ResetBest:     "Reset Best Score",
		ConfirmReset:  "Clear your best score permanently?",
		PersonalBest:  "Personal Best",
		HighScores:    "HIGH SCORES",
		On:            "on",
		Off:           "off",
		Yes:           "yes",
		No:            "no",
		Done:          "DONE",
		MenuHelp:      "up/down navigate  enter select  s settings  tab scores  q quit",
		SettingsHelp:  "up/down navigate  enter toggle  esc back",
		ThemeDark:     "dark",
		ThemeLight:    "light",
		LanguageName:  "English",
		NoScores:      "No scores recorded yet.",
		Player:        "Player",
		ScoreboardTab: "Scores",
	},
	"uk": {
		Score:         "Рахунок",
		Best:          "Рекорд",
		Combo:         "Комбо",
		Level:         "РІВЕНЬ",
		Time:          "Час",
		Lines:         "Лінії",
		Paused:        "ПАУЗА",
		ResumeHint:    "P щоб продовжити",
		Finished:      "ФІНІШ",
		TimeUp:        "Час вийшов!",
		RetryHint:     "R ще раз  B меню",
		TooSmall:      "Вікно замале",
		ResizeHint:    "Збільште термінал",
		LinesCleared:  "ліній!",
		Bomb:          "БУМ!",
		Star:          "ЗІРКА!",
		LevelUp:       "Новий рівень!",
		NewBest:       "Новий рекорд!",
		NoFit:         "Не вміщується",
		GameHelp:      "стрілки рух  1-3/tab фігура  enter поставити  p пауза  q вихід",
		Classic:       "Класика",
		ClassicDesc:   "ОРИГІНАЛЬНИЙ НЕСКІНЧЕННИЙ РЕЖИМ",
		TimeRush:      "На час",
		TimeRushDesc:  "ВСТИГНИ ЗА 60 СЕКУНД",
		Hard:          "Важкий",
		HardDesc:      "МАЛЕ ПОЛЕ, СЕРЙОЗНІ ВИКЛИКИ",
		SelectMode:    "ОБЕРІТЬ РЕЖИМ",
		Settings:      "НАЛАШТУВАННЯ",
		Theme:         "Тема",
		Language:      "Мова",
		GameSounds:    "Звуки гри",
		ResetBest:     "Скинути рекорд",
		ConfirmReset:  "Видалити ваш рекорд назавжди?",
		PersonalBest:  "Особистий Рекорд",
		HighScores:    "РЕКОРДИ",
		On:            "увімк",
		Off:           "вимк",
		Yes:           "так",
		No:            "ні",
		Done:          "ГОТОВО",
		MenuHelp:      "вгору/вниз вибір  enter грати  s налаштування  tab рекорди  q вихід",
		SettingsHelp:  "вгору/вниз вибір  enter змінити  esc назад",
		ThemeDark:     "темна",
		ThemeLight:    "світла",
		LanguageName:  "Українська",
		NoScores:      "Рекордів ще немає.",
		Player:        "Гравець",
		ScoreboardTab: "Рекорди",
	},
}

// T returns the string for key in lang, falling back to English and then
// to the key itself.
func T(lang string, key Key) string {
	if s, ok := tables[lang][key]; ok {
		return s
	}
	if s, ok := tables["en"][key]; ok {
		return s
	}
	return string(key)
}

// Supported reports whether lang has a string table.
func Supported(lang string) bool {
	_, ok := tables[lang]
	return ok
}

// Next returns the language after lang in menu order.
func Next(lang string) string {
	for i, l := range Languages {
		if l == lang {
			return Languages[(i+1)%len(Languages)]
		}
	}
	return Languages[0]
}
