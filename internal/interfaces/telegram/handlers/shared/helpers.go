package shared

import (
	"fmt"
	"strings"
)

// GetStartText returns the welcome message
func GetStartText(firstName string) string {
	greeting := "Привет!"
	if name := strings.TrimSpace(firstName); name != "" {
		greeting = fmt.Sprintf("Привет, %s!", name)
	}
	return greeting + " 👋\n\n" +
		"Я помогаю находить компании по ИНН в реестре ФНС.\n" +
		"Отправьте /inn и один или несколько ИНН через пробел.\n\n" +
		"Введите /help для списка доступных команд."
}

// GetHelpText returns the standard help text
func GetHelpText() string {
	return `📋 Доступные команды:

/start - приветствие
/help - эта справка
/hello - поздороваться с ботом
/inn <ИНН> [<ИНН> ...] - найти компании по ИНН (10 или 12 цифр)
/last - показать результат последнего запроса /inn

Пример: /inn 7707083893 500100732259`
}

// GetHelloText returns the reply to /hello
func GetHelloText() string {
	return "Привет! 👋 Я на связи и готов искать компании по ИНН."
}
