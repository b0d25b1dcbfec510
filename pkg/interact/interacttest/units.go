package interacttest

import (
	"context"
	"math/rand"
	"strings"

	"github.com/ib-77/interactor/pkg/interact"
)

const (
	RawUsernameKey = "rawUsername"
	UsernameKey    = "username"
)

// TrimWhitespace trims the raw username. Rollback restores the original.
type TrimWhitespace struct {
	interact.Base
	original any
	had      bool
}

func (u *TrimWhitespace) Execute(_ context.Context, c *interact.Context) error {
	u.original, u.had = c.Lookup(RawUsernameKey)
	raw, _ := interact.Value[string](c, RawUsernameKey)
	c.Set(RawUsernameKey, strings.TrimSpace(raw))
	return nil
}

func (u *TrimWhitespace) Rollback(_ context.Context, c *interact.Context) error {
	restore(c, RawUsernameKey, u.original, u.had)
	return nil
}

// ExtractLocalPartBeforeAt stores the part of the raw username before '@'.
type ExtractLocalPartBeforeAt struct {
	interact.Base
	previous any
	had      bool
}

func (u *ExtractLocalPartBeforeAt) Execute(_ context.Context, c *interact.Context) error {
	u.previous, u.had = c.Lookup(UsernameKey)
	raw, _ := interact.Value[string](c, RawUsernameKey)
	local, _, _ := strings.Cut(raw, "@")
	c.Set(UsernameKey, local)
	return nil
}

func (u *ExtractLocalPartBeforeAt) Rollback(_ context.Context, c *interact.Context) error {
	restore(c, UsernameKey, u.previous, u.had)
	return nil
}

// AlwaysFail records the "error message" failure.
type AlwaysFail struct {
	interact.Base
}

func (AlwaysFail) Execute(_ context.Context, c *interact.Context) error {
	return c.Fail("error message")
}

// ShuffleCharacters shuffles the characters of the username.
type ShuffleCharacters struct {
	interact.Base
}

func (ShuffleCharacters) Execute(_ context.Context, c *interact.Context) error {
	runes := []rune(interact.ValueOr(c, UsernameKey, ""))
	rand.Shuffle(len(runes), func(i, j int) {
		runes[i], runes[j] = runes[j], runes[i]
	})
	c.Set(UsernameKey, string(runes))
	return nil
}

func restore(c *interact.Context, key string, value any, had bool) {
	if had {
		c.Set(key, value)
		return
	}
	c.Delete(key)
}
