package telegram

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"

	"voicetask/internal/model"
	"voicetask/internal/voice"
	pkgLog "voicetask/pkg/log"
	pkgResponse "voicetask/pkg/response"
	pkgTelegram "voicetask/pkg/telegram"
)

type handler struct {
	l   pkgLog.Logger
	uc  voice.UseCase
	bot *pkgTelegram.Bot
}

// HandleWebhook is the Gin handler for incoming Telegram webhook updates.
// It responds with HTTP 200 immediately and processes the message in a
// background goroutine so the webhook never hits Telegram's reply timeout.
func (h *handler) HandleWebhook(c *gin.Context) {
	ctx := c.Request.Context()

	var update pkgTelegram.Update
	if err := c.ShouldBindJSON(&update); err != nil {
		h.l.Errorf(ctx, "telegram handler: failed to parse update: %v", err)
		pkgResponse.Error(c, err, nil)
		return
	}

	// Ignore non-message updates (polls, channel_post, etc.)
	if update.Message == nil {
		pkgResponse.OK(c, map[string]string{"status": "ignored"})
		return
	}

	// Snapshot the message before spawning goroutine to avoid data races on
	// the gin context.
	msg := update.Message

	go func() {
		// Detach from the HTTP request context, which is cancelled after the
		// webhook response goes out.
		bgCtx := context.Background()
		if err := h.processMessage(bgCtx, msg); err != nil {
			h.l.Errorf(bgCtx, "telegram handler: background processMessage failed: %v", err)
			_ = h.bot.SendMessage(msg.Chat.ID, "Something went wrong while processing your request. Please try again.")
		}
	}()

	pkgResponse.OK(c, map[string]string{"status": "accepted"})
}

// processMessage handles a single Telegram message end to end: parse the
// text, and when the parse is confident enough, confirm it straight into a
// task. Low-confidence parses are discarded with a hint to rephrase.
func (h *handler) processMessage(ctx context.Context, msg *pkgTelegram.Message) error {
	if msg.Voice != nil && msg.Text == "" {
		// No transcription backend; ask for the transcript as text.
		return h.bot.SendMessage(msg.Chat.ID,
			"🎙 I can't transcribe audio yet. Please type the task as text.")
	}
	if msg.Text == "" {
		return nil
	}

	switch msg.Text {
	case "/start":
		return h.bot.SendMessageWithMode(msg.Chat.ID,
			"👋 Welcome to *VoiceTask*!\n\nSend me a task in plain words and I will:\n• 📝 Create it with title, date, time, category and priority\n• 📅 Add a reminder to your calendar when it has a due date\n\n_Example: \"Remind me to pay the electricity bill tomorrow at 5pm\"_",
			"Markdown",
		)
	case "/help":
		return h.bot.SendMessageWithMode(msg.Chat.ID,
			"*How to use:*\n\nJust describe the task naturally, for example:\n`Call the dentist next Friday morning, it's urgent`\n\nI pick out the date, time, category and priority for you.",
			"Markdown",
		)
	}

	sc := model.Scope{
		UserID:   fmt.Sprintf("telegram_%d", msg.From.ID),
		Username: msg.From.Username,
	}

	parsed, err := h.uc.Parse(ctx, sc, voice.ParseInput{
		Text:   msg.Text,
		Source: model.SourceTelegram,
	})
	if err != nil {
		h.l.Errorf(ctx, "telegram handler: Parse failed: %v", err)
		return h.bot.SendMessage(msg.Chat.ID, fmt.Sprintf("Could not process your message: %v", err))
	}

	if parsed.NeedsReview {
		// Not confident enough to auto-create; drop the session.
		if err := h.uc.Cancel(ctx, sc, parsed.SessionID); err != nil {
			h.l.Warnf(ctx, "telegram handler: cancel of low-confidence session failed: %v", err)
		}
		return h.bot.SendMessage(msg.Chat.ID,
			"⚠️ I could not make out a task from that. Try again with a clearer description, e.g. \"buy groceries tomorrow at 5pm\".")
	}

	confirmed, err := h.uc.Confirm(ctx, sc, voice.ConfirmInput{SessionID: parsed.SessionID})
	if err != nil {
		h.l.Errorf(ctx, "telegram handler: Confirm failed: %v", err)
		return h.bot.SendMessage(msg.Chat.ID, fmt.Sprintf("Could not create the task: %v", err))
	}

	return h.bot.SendMessageWithMode(msg.Chat.ID, h.taskReply(confirmed.Task), "Markdown")
}

// taskReply formats the created task as a Markdown summary.
func (h *handler) taskReply(t model.Task) string {
	reply := fmt.Sprintf("✅ Created *%s*\n", t.Title)
	if t.Description != "" {
		reply += fmt.Sprintf("_%s_\n", t.Description)
	}
	if t.DueDate != nil {
		due := t.DueDate.Format("Mon, Jan 2")
		if t.DueTime != nil {
			due += " at " + t.DueTime.String()
		}
		reply += fmt.Sprintf("🗓 Due %s\n", due)
	}
	reply += fmt.Sprintf("📂 %s · %s priority", t.Category, t.Priority)
	if t.CalendarLink != "" {
		reply += fmt.Sprintf("\n📅 [View in Calendar](%s)", t.CalendarLink)
	}
	return reply
}
