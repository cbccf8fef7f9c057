package usecases

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/rs/zerolog"

	"inn-lookup-bot/internal/domain/inn"
)

const (
	errorGlyph  = "❗"
	innHeader   = "🔹 ИНН "
	objectLabel = "ОБЪЕКТ:"

	// UsageMessage is returned for /inn without arguments
	UsageMessage = "❗ Пожалуйста, укажите один или несколько ИНН через пробел.\nПример: /inn 1234567890 109876543210"

	accessDeniedMessage = "❗️ Ошибка: доступ к данным запрещён (403). Проверьте правильность API-ключа."
)

// Lookuper resolves one identifier against the registry
type Lookuper interface {
	Lookup(ctx context.Context, id string) inn.Outcome
}

// ResultStore keeps the last formatted /inn response
type ResultStore interface {
	Save(text string)
	Get() string
}

// InnUseCase handles the /inn command
type InnUseCase struct {
	lookuper Lookuper
	store    ResultStore
}

// NewInnUseCase creates a new /inn use case
func NewInnUseCase(lookuper Lookuper, store ResultStore) *InnUseCase {
	return &InnUseCase{
		lookuper: lookuper,
		store:    store,
	}
}

type entry struct {
	id   string
	body string
}

func (e entry) failed() bool {
	return strings.HasPrefix(e.body, errorGlyph)
}

// Handle looks up every identifier given after the command, one at a time,
// and returns the combined answer. Successful lookups are listed first.
func (uc *InnUseCase) Handle(ctx context.Context, messageText string) string {
	logger := zerolog.Ctx(ctx)

	fields := strings.Fields(messageText)
	if len(fields) < 2 {
		logger.Info().Msg("inn command without identifiers")
		return UsageMessage
	}

	ids := inn.Unique(fields[1:])
	entries := make([]entry, 0, len(ids))
	for _, id := range ids {
		entries = append(entries, uc.process(ctx, id))
	}

	slices.SortStableFunc(entries, func(a, b entry) int {
		return rank(a) - rank(b)
	})

	blocks := make([]string, 0, len(entries))
	for _, e := range entries {
		blocks = append(blocks, innHeader+e.id+"\n"+e.body)
	}
	final := strings.Join(blocks, "\n\n")

	uc.store.Save(final)
	return final
}

// Last returns the previously saved /inn response
func (uc *InnUseCase) Last() string {
	return uc.store.Get()
}

func rank(e entry) int {
	if e.failed() {
		return 1
	}
	return 0
}

func (uc *InnUseCase) process(ctx context.Context, id string) (result entry) {
	logger := zerolog.Ctx(ctx).With().Str("inn", id).Logger()

	defer func() {
		if r := recover(); r != nil {
			logger.Error().Interface("panic", r).Msg("failed to process inn")
			result = entry{id: id, body: fmt.Sprintf("%s Ошибка при обработке ИНН '%s': %v", errorGlyph, id, r)}
		}
	}()

	if !inn.IsValid(id) {
		logger.Info().Msg("invalid inn format")
		return entry{id: id, body: fmt.Sprintf("%s ИНН '%s' должен содержать только 10 или 12 цифр.", errorGlyph, id)}
	}

	outcome := uc.lookuper.Lookup(ctx, id)
	text := outcome.Text()
	logger.Debug().Str("kind", string(outcome.Kind)).Str("result", text).Msg("lookup finished")

	return entry{id: id, body: classify(id, text)}
}

// classify turns the lookup text into the body of its block. Only the
// substring markers decide: a company name containing one is reported as an
// error, and texts without one (an empty body, a 5xx status) count as success.
func classify(id string, text string) string {
	lower := strings.ToLower(text)

	if strings.Contains(text, "(403)") || strings.Contains(lower, "forbidden") {
		return accessDeniedMessage
	}

	if strings.Contains(lower, "ошибка") || strings.Contains(lower, "не найден") {
		return errorGlyph + " " + strings.TrimSpace(text)
	}

	body := strings.TrimSpace(text)
	if header := innHeader + id; strings.HasPrefix(body, header) {
		body = strings.TrimSpace(strings.TrimPrefix(body, header))
	}
	if strings.HasPrefix(body, objectLabel) {
		body = strings.TrimSpace(strings.TrimPrefix(body, objectLabel))
	}
	return body
}
