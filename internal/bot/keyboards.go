package bot

// Menu labels. These double as the match keys for MainMenu text dispatch.
const (
	labelLearnTopic = "📚 Учить тему"
	labelMathGame   = "🎮 Математическая игра"
	labelLessons    = "📖 Уроки"
	labelTesting    = "📝 Тестирование"
	labelAskTutor   = "🤖 Вопрос ассистенту"
	labelFAQ        = "❓ Частые вопросы"
	labelSchedule   = "📅 Расписание"
	labelHomework   = "📎 Домашнее задание"
	labelMyPhoto    = "🖼 Моё фото"

	labelAdminUsers = "👥 Пользователи"
	labelAdminReset = "🗑 Сброс базы"

	cancelKeyword = "Отмена"
)

// Callback payload prefixes.
const (
	cbQuizStart  = "quiz_start"
	cbQuizCancel = "quiz_cancel"
	cbAnswer     = "ans"   // ans_<question>_<chosen>_<correct>
	cbMathGo     = "math_go"
	cbMathAnswer = "math"  // math_<chosen>_<correct>
	cbLesson     = "lesson" // lesson_<index>
	cbModuleTest = "test"   // test_<index>
	cbFAQ        = "faq"    // faq_<index>
	cbResetYes   = "reset_yes"
	cbResetNo    = "reset_no"
)

// mainMenuKeyboard builds the persistent reply keyboard. Admins get two
// extra maintenance rows.
func mainMenuKeyboard(admin bool) [][]ReplyButton {
	rows := [][]ReplyButton{
		{{Label: labelLearnTopic}, {Label: labelMathGame}},
		{{Label: labelLessons}, {Label: labelTesting}},
		{{Label: labelAskTutor}, {Label: labelFAQ}},
		{{Label: labelSchedule}, {Label: labelHomework}, {Label: labelMyPhoto}},
	}
	if admin {
		rows = append(rows, []ReplyButton{
			{Label: labelAdminUsers}, {Label: labelAdminReset},
		})
	}
	return rows
}

func contactKeyboard() [][]ReplyButton {
	return [][]ReplyButton{
		{{Label: "📱 Отправить контакт", RequestContact: true}},
	}
}
