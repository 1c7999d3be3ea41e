package telegram

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"tumorvision/internal/content"
	"tumorvision/internal/domain/entity"
)

const (
	msgAwaitingScan   = "Upload a brain MRI scan as a photo or as a JPEG/PNG file."
	msgDetectFirst    = "Send /detect first, then upload the scan."
	msgCancelled      = "Cancelled. Send /detect to check another scan."
	msgHistoryCleared = "Chat history cleared."
	msgUnknownCommand = "Unknown command. Use /help to see what I can do."
	msgVerifying      = "Verifying image..."
	msgUnsupported    = "Only JPEG and PNG images are supported."
	msgTooLarge       = "The image is too large."
)

// maxMessageRunes stays below the Telegram limit of 4096 characters.
const maxMessageRunes = 4000

// sessionID is the chat history key of a Telegram chat.
func sessionID(chatID int64) string {
	return "tg:" + strconv.FormatInt(chatID, 10)
}

// diagnosisReply renders a successful or rejected diagnosis.
func diagnosisReply(d entity.Diagnosis) string {
	if !d.Accepted {
		return content.NotMRI
	}
	text := fmt.Sprintf("Predicted result is: %s", d.Label)
	if desc, err := content.Description(d.Label); err == nil {
		text += "\n\n" + desc
	}
	return text
}

// errorReply renders a failed diagnosis. Decode and inference failures share
// the generic message.
func errorReply(err error) string {
	switch {
	case errors.Is(err, errTooLarge):
		return msgTooLarge
	case errors.Is(err, errUnsupported):
		return msgUnsupported
	default:
		return content.Failure
	}
}

// upload is an image attached to a message.
type upload struct {
	fileID string
	size   int64
}

// scanUpload returns the image a message carries, or nil if it has none.
// Non-image documents yield errUnsupported.
func scanUpload(msg *tgbotapi.Message) (*upload, error) {
	if len(msg.Photo) > 0 {
		// The last size is the largest.
		p := msg.Photo[len(msg.Photo)-1]
		return &upload{fileID: p.FileID, size: int64(p.FileSize)}, nil
	}
	if msg.Document != nil {
		if !isImageDocument(msg.Document.MimeType, msg.Document.FileName) {
			return nil, fmt.Errorf("%w: %s", errUnsupported, msg.Document.MimeType)
		}
		return &upload{fileID: msg.Document.FileID, size: int64(msg.Document.FileSize)}, nil
	}
	return nil, nil
}

// isImageDocument reports whether a file upload can be diagnosed.
func isImageDocument(mimeType, fileName string) bool {
	switch strings.ToLower(mimeType) {
	case "image/jpeg", "image/jpg", "image/png":
		return true
	}
	name := strings.ToLower(fileName)
	return strings.HasSuffix(name, ".jpg") || strings.HasSuffix(name, ".jpeg") || strings.HasSuffix(name, ".png")
}

// chunkText splits text into pieces of at most limit runes, preferring
// paragraph and line breaks.
func chunkText(text string, limit int) []string {
	var chunks []string
	for utf8.RuneCountInString(text) > limit {
		cut := byteOffset(text, limit)
		head := text[:cut]
		if i := strings.LastIndex(head, "\n\n"); i > 0 {
			cut = i + 2
		} else if i := strings.LastIndex(head, "\n"); i > 0 {
			cut = i + 1
		}
		chunks = append(chunks, strings.TrimRight(text[:cut], "\n"))
		text = text[cut:]
	}
	if text != "" {
		chunks = append(chunks, text)
	}
	return chunks
}

// byteOffset returns the byte index just after the first n runes of s.
func byteOffset(s string, n int) int {
	i := 0
	for n > 0 && i < len(s) {
		_, size := utf8.DecodeRuneInString(s[i:])
		i += size
		n--
	}
	return i
}
