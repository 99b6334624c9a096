package telegram

import "encoding/json"

const (
	EnvBotToken = "TELEGRAM_BOT_TOKEN"
	EnvChatID   = "TELEGRAM_CHAT_ID"
)

// Credentials identify the bot and the chat to post in
type Credentials struct {
	Token  string
	ChatID string
}

func (c Credentials) Validate() error {
	if c.Token == "" || c.ChatID == "" {
		return ErrMissingCredentials
	}

	return nil
}

// String redacts both values, so credentials can't leak through fmt or logging
func (c Credentials) String() string {
	return "Credentials{redacted}"
}

func (c Credentials) GoString() string {
	return c.String()
}

type sendMessageRequest struct {
	ChatID string `json:"chat_id"`
	Text   string `json:"text"`
}

type apiResponse struct {
	OK          truthy `json:"ok"`
	ErrorCode   int    `json:"error_code,omitempty"`
	Description string `json:"description,omitempty"`
}

// truthy accepts any JSON value. false, null, 0, "" and empty arrays or objects are false, everything else is true.
type truthy bool

func (t *truthy) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch x := v.(type) {
	case bool:
		*t = truthy(x)
	case float64:
		*t = x != 0
	case string:
		*t = x != ""
	case []any:
		*t = len(x) > 0
	case map[string]any:
		*t = len(x) > 0
	default:
		*t = false
	}

	return nil
}
