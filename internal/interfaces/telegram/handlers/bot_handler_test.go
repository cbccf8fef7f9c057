package handlers

import (
	"context"
	"testing"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stretchr/testify/require"

	"inn-lookup-bot/internal/application/usecases"
	"inn-lookup-bot/internal/domain/inn"
	"inn-lookup-bot/internal/infrastructure/cache"
	"inn-lookup-bot/internal/interfaces/telegram"
	"inn-lookup-bot/internal/interfaces/telegram/handlers/shared"
)

type fakeSender struct {
	texts []string
}

func (f *fakeSender) SendMessage(_ int64, text string) error {
	f.texts = append(f.texts, text)
	return nil
}

type fakeLookuper struct {
	calls int
}

func (f *fakeLookuper) Lookup(_ context.Context, id string) inn.Outcome {
	f.calls++
	return inn.Found(id, "ООО Тест", "г. Самара")
}

type fakeSource struct {
	updates chan tgbotapi.Update
	stopped bool
}

func (f *fakeSource) GetUpdatesChan() tgbotapi.UpdatesChannel {
	return f.updates
}

func (f *fakeSource) StopReceivingUpdates() {
	f.stopped = true
}

type fixture struct {
	dispatcher telegram.Dispatcher
	sender     *fakeSender
	lookuper   *fakeLookuper
	cache      *cache.LastResult
}

func newFixture() *fixture {
	f := &fixture{
		sender:   &fakeSender{},
		lookuper: &fakeLookuper{},
		cache:    cache.NewLastResult(),
	}
	f.dispatcher = telegram.NewDispatcher(f.sender, "InnLookupBot", nil)
	NewCommandHandlers(usecases.NewInnUseCase(f.lookuper, f.cache)).RegisterHandlers(f.dispatcher)
	return f
}

func message(text string) tgbotapi.Update {
	return tgbotapi.Update{Message: &tgbotapi.Message{
		Chat: &tgbotapi.Chat{ID: 1},
		From: &tgbotapi.User{ID: 2, FirstName: "Анна"},
		Text: text,
	}}
}

func TestCommands_StaticTexts(t *testing.T) {
	f := newFixture()
	f.dispatcher.Dispatch(context.Background(), message("/start"))
	f.dispatcher.Dispatch(context.Background(), message("/help"))
	f.dispatcher.Dispatch(context.Background(), message("/hello"))

	require.Equal(t, []string{
		shared.GetStartText("Анна"),
		shared.GetHelpText(),
		shared.GetHelloText(),
	}, f.sender.texts)
	require.Contains(t, f.sender.texts[0], "Привет, Анна!")
}

func TestCommands_LastBeforeAnyInn(t *testing.T) {
	f := newFixture()
	f.dispatcher.Dispatch(context.Background(), message("/last"))
	require.Equal(t, []string{cache.NoPreviousRequest}, f.sender.texts)
}

func TestCommands_InnThenLast(t *testing.T) {
	f := newFixture()
	f.dispatcher.Dispatch(context.Background(), message("/inn 1234567890"))
	f.dispatcher.Dispatch(context.Background(), message("/last"))

	want := "🔹 ИНН 1234567890\nООО Тест\nАдрес: г. Самара"
	require.Equal(t, []string{want, want}, f.sender.texts)
}

func TestCommands_NonTextLeavesCacheAlone(t *testing.T) {
	f := newFixture()
	f.dispatcher.Dispatch(context.Background(), tgbotapi.Update{Message: &tgbotapi.Message{
		Chat:    &tgbotapi.Chat{ID: 1},
		Photo:   []tgbotapi.PhotoSize{{FileID: "x"}},
		Caption: "/inn 1234567890",
	}})

	require.Zero(t, f.lookuper.calls)
	require.Equal(t, cache.NoPreviousRequest, f.cache.Get())
	require.Len(t, f.sender.texts, 1)
}

func TestBotHandler_StartProcessesUntilCancelled(t *testing.T) {
	f := newFixture()
	src := &fakeSource{updates: make(chan tgbotapi.Update, 2)}
	src.updates <- message("/hello")
	src.updates <- message("/inn 1234567890")

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- NewBotHandler(src, f.dispatcher).Start(ctx) }()

	require.Eventually(t, func() bool { return f.cache.Get() != cache.NoPreviousRequest },
		time.Second, 10*time.Millisecond)
	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("Start did not return after cancel")
	}
	require.True(t, src.stopped)
	require.Equal(t, 1, f.lookuper.calls)
	require.Len(t, f.sender.texts, 2)
}

func TestBotHandler_StopsWhenChannelCloses(t *testing.T) {
	f := newFixture()
	src := &fakeSource{updates: make(chan tgbotapi.Update)}
	close(src.updates)

	require.NoError(t, NewBotHandler(src, f.dispatcher).Start(context.Background()))
	require.True(t, src.stopped)
}
