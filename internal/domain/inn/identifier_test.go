package inn

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsValid(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"", false},
		{"   ", false},
		{"12345", false},
		{"1234567890", true},
		{"12345678901", false},
		{"123456789012", true},
		{"1234567890123", false},
		{"12345abcde", false},
		{"１２３４５６７８９０", false},
		{" 123456789", false},
		{"12345-7890", false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, IsValid(tc.in), "candidate=%q", tc.in)
	}
}

func TestUnique_PreservesFirstSeenOrder(t *testing.T) {
	got := Unique([]string{"2222222222", "1111111111", "2222222222", "abc", "1111111111"})
	require.Equal(t, []string{"2222222222", "1111111111", "abc"}, got)
}

func TestUnique_Empty(t *testing.T) {
	require.Empty(t, Unique(nil))
}

func TestFound_SubstitutesPlaceholders(t *testing.T) {
	o := Found("1234567890", "", "")
	require.True(t, o.OK())
	require.Equal(t, "🔹 ИНН 1234567890\nНазвание отсутствует\nАдрес: Адрес отсутствует", o.Text())
}

func TestOutcomeText(t *testing.T) {
	cases := []struct {
		o    Outcome
		want string
	}{
		{Found("1234567890", "ООО Ромашка", "г. Москва"), "🔹 ИНН 1234567890\nООО Ромашка\nАдрес: г. Москва"},
		{NotFound("1234567890"), "ИНН 1234567890: компания не найдена."},
		{Empty("1234567890"), "ИНН 1234567890: не удалось получить данные. Пустой ответ от сервера."},
		{Unauthorized("1234567890"), "Ошибка: неверный токен API. Обратитесь к администратору."},
		{UnexpectedStatus("1234567890", 500), "ИНН 1234567890: получен неожиданный ответ от API (500)."},
		{ParseError("1234567890", errors.New("bad json")), "Ошибка при разборе данных для ИНН 1234567890."},
		{TransportError("1234567890", errors.New("connection refused")), "Ошибка соединения с API: connection refused"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, tc.o.Text(), "kind=%s", tc.o.Kind)
	}
}
