package telegram

import tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

// ContentKind names the payload type of an inbound message
type ContentKind string

const (
	ContentText      ContentKind = "text"
	ContentPhoto     ContentKind = "photo"
	ContentVideo     ContentKind = "video"
	ContentSticker   ContentKind = "sticker"
	ContentVoice     ContentKind = "voice"
	ContentDocument  ContentKind = "document"
	ContentAudio     ContentKind = "audio"
	ContentAnimation ContentKind = "animation"
	ContentVideoNote ContentKind = "video_note"
	ContentLocation  ContentKind = "location"
	ContentContact   ContentKind = "contact"
	ContentPoll      ContentKind = "poll"
	ContentDice      ContentKind = "dice"
	ContentOther     ContentKind = "other"
)

// DetectContent reports what a message carries. Animations are checked
// before documents because Telegram fills both for GIFs.
func DetectContent(m *tgbotapi.Message) ContentKind {
	switch {
	case m.Text != "":
		return ContentText
	case len(m.Photo) > 0:
		return ContentPhoto
	case m.Video != nil:
		return ContentVideo
	case m.Sticker != nil:
		return ContentSticker
	case m.Voice != nil:
		return ContentVoice
	case m.Animation != nil:
		return ContentAnimation
	case m.Document != nil:
		return ContentDocument
	case m.Audio != nil:
		return ContentAudio
	case m.VideoNote != nil:
		return ContentVideoNote
	case m.Venue != nil, m.Location != nil:
		return ContentLocation
	case m.Contact != nil:
		return ContentContact
	case m.Poll != nil:
		return ContentPoll
	case m.Dice != nil:
		return ContentDice
	default:
		return ContentOther
	}
}

const helpHint = " Введите /help для списка доступных команд."

var mediaReplies = map[ContentKind]string{
	ContentPhoto:   "Спасибо за фото, но я могу работать только с текстовыми командами." + helpHint,
	ContentVideo:   "Спасибо за видео, но я не умею их обрабатывать." + helpHint,
	ContentSticker: "Стикеры — это круто, но, к сожалению, я не понимаю их смысл." + helpHint,
	ContentVoice:   "Голосовые сообщения пока не поддерживаются." + helpHint,
}

// MediaReply returns the fixed answer for a non-text message
func MediaReply(kind ContentKind) string {
	if reply, ok := mediaReplies[kind]; ok {
		return reply
	}
	return "Я получил сообщение типа '" + string(kind) + "', но не понимаю, что с ним делать." + helpHint
}
