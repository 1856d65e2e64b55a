package utils

import (
	"encoding/base64"
	"encoding/json"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	flashCookieName = "generatorku_flash"
	flashContextKey = "pending_flashes"
)

type FlashMessage struct {
	Category string `json:"category"`
	Text     string `json:"text"`
}

// AddFlash queues a message for the next rendered page.
func AddFlash(c *gin.Context, category, text string) {
	pending := pendingFlashes(c)
	pending = append(pending, FlashMessage{Category: category, Text: text})
	c.Set(flashContextKey, pending)

	raw, err := json.Marshal(pending)
	if err != nil {
		log.Println("flash marshal error:", err)
		return
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(flashCookieName, base64.RawURLEncoding.EncodeToString(raw), 0, "/", "", false, true)
}

// ConsumeFlashes returns the queued messages and clears the cookie.
func ConsumeFlashes(c *gin.Context) []FlashMessage {
	msgs := pendingFlashes(c)
	if len(msgs) == 0 {
		return nil
	}
	c.Set(flashContextKey, []FlashMessage(nil))
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(flashCookieName, "", -1, "/", "", false, true)
	return msgs
}

func pendingFlashes(c *gin.Context) []FlashMessage {
	if v, ok := c.Get(flashContextKey); ok {
		msgs, _ := v.([]FlashMessage)
		return msgs
	}

	value, err := c.Cookie(flashCookieName)
	if err != nil || value == "" {
		return nil
	}
	raw, err := base64.RawURLEncoding.DecodeString(value)
	if err != nil {
		log.Println("flash cookie decode error:", err)
		return nil
	}
	var msgs []FlashMessage
	if err := json.Unmarshal(raw, &msgs); err != nil {
		log.Println("flash cookie unmarshal error:", err)
		return nil
	}
	return msgs
}
