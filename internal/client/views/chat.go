package views

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/dmitrijs2005/moodkeeper/internal/client/resource"
	"github.com/dmitrijs2005/moodkeeper/internal/client/services"
	"github.com/dmitrijs2005/moodkeeper/internal/client/ui"
)

// Chat is a local conversation log. Each message the user sends is
// answered with the journal prompt of the day; both sides are kept under
// the user's own history key.
type Chat struct {
	base
	reply *resource.Resource[string]
}

func NewChat(env *Env) *Chat {
	return &Chat{
		base:  base{env: env, name: "chat"},
		reply: resource.New(promptPolicy, env.Development),
	}
}

// Refresh prints the stored history.
func (c *Chat) Refresh(ctx context.Context) error {
	userID, err := c.guard(ctx)
	if err != nil {
		return err
	}

	msgs, err := c.env.Chat.History(ctx, userID)
	if err != nil {
		renderFailure(c.out(), "read the chat history", err)
		return err
	}

	w := c.out()
	ui.Heading(w, "Chat")
	if len(msgs) == 0 {
		ui.Empty(w, "No messages yet. Type 'chat <message>' to start.")
		return nil
	}
	for _, m := range msgs {
		renderMessage(w, m)
	}
	return nil
}

func (c *Chat) Send(ctx context.Context, text string) error {
	userID, err := c.guard(ctx)
	if err != nil {
		return err
	}
	text = strings.TrimSpace(text)
	if text == "" {
		ui.Banner(c.out(), ui.BannerInfo, "Type a message after 'chat'.")
		return nil
	}

	if _, err := c.env.Chat.Append(ctx, userID, services.RoleUser, text); err != nil {
		renderFailure(c.out(), "store the message", err)
		return err
	}

	st := c.reply.Load(ctx, logged(c.base, "reply", c.env.Backend.Prompt))
	if err := c.expire(ctx, unauthorized(st)); err != nil {
		return err
	}
	if !st.Ready() {
		renderError(c.out(), "a reply", st.Err)
		return nil
	}

	msg, err := c.env.Chat.Append(ctx, userID, services.RoleAssistant, st.Data)
	if err != nil {
		renderFailure(c.out(), "store the reply", err)
		return err
	}
	renderMessage(c.out(), msg)
	return nil
}

func (c *Chat) Unmount() {
	c.reply.Discard()
}

func renderMessage(w io.Writer, m services.ChatMessage) {
	p := ui.Current()
	stamp := m.At.Local().Format("15:04")
	if m.Role == services.RoleUser {
		p.Accent.Fprintf(w, "[%s] you: ", stamp)
	} else {
		p.Info.Fprintf(w, "[%s] moodkeeper: ", stamp)
	}
	fmt.Fprintln(w, m.Text)
}
