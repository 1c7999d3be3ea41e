package entity

// UserState is the dialogue state of a bot user.
type UserState string

const (
	StateMainMenu     UserState = "main_menu"     // browsing pages or chatting
	StateAwaitingScan UserState = "awaiting_scan" // /detect was issued, waiting for an image
)

// User is a Telegram user of the bot.
type User struct {
	ID     int64     // Telegram User ID
	ChatID int64     // Telegram Chat ID
	State  UserState
}

// NewUser creates a user in the main menu.
func NewUser(userID, chatID int64) *User {
	return &User{
		ID:     userID,
		ChatID: chatID,
		State:  StateMainMenu,
	}
}

// SetState updates the dialogue state.
func (u *User) SetState(state UserState) {
	u.State = state
}

// AwaitingScan reports whether the user asked to upload a scan.
func (u *User) AwaitingScan() bool {
	return u.State == StateAwaitingScan
}
