package v2

import (
	"sync"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"
)

// GuildLeaver is the part of *discordgo.Session that leaves guilds
type GuildLeaver interface {
	GuildLeave(guildID string, options ...discordgo.RequestOption) error
}

// GuildLimit keeps the bot in at most Max guilds. The admin guild is never
// left. Max 0 means no limit.
type GuildLimit struct {
	Max        int
	AdminGuild string
	Logger     *zap.Logger

	mu    sync.Mutex
	known map[string]bool
}

// Joined records guildID and reports whether it is new since Ready. Discord
// replays GuildCreate for every existing guild on connect.
func (l *GuildLimit) Joined(guildID string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.known == nil {
		l.known = make(map[string]bool)
	}
	if l.known[guildID] {
		return false
	}
	l.known[guildID] = true
	return true
}

// HandleReady marks the guilds the bot is already in
func (l *GuildLimit) HandleReady(_ *discordgo.Session, r *discordgo.Ready) {
	for _, g := range r.Guilds {
		l.Joined(g.ID)
	}
}

// Check leaves guildID when joining it put the bot over the limit. It
// reports whether the guild was left.
func (l *GuildLimit) Check(leaver GuildLeaver, guildID string, guildCount int) bool {
	if l.Max <= 0 || guildCount <= l.Max || guildID == l.AdminGuild {
		return false
	}

	logger := l.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	logger.Warn("guild limit reached, leaving guild",
		zap.String("guild_id", guildID),
		zap.Int("guilds", guildCount),
		zap.Int("max_guilds", l.Max))

	if err := leaver.GuildLeave(guildID); err != nil {
		logger.Error("failed to leave guild", zap.String("guild_id", guildID), zap.Error(err))
		return false
	}
	return true
}

// HandleGuildCreate is the discordgo event handler applying the limit
func (l *GuildLimit) HandleGuildCreate(s *discordgo.Session, g *discordgo.GuildCreate) {
	if !l.Joined(g.ID) {
		return
	}

	s.State.RLock()
	count := len(s.State.Guilds)
	s.State.RUnlock()

	l.Check(s, g.ID, count)
}
