package domain

// CommandEvent is an inbound chat command stripped of transport detail: the
// command word, the raw argument remainder, the channel to reply to, and the
// caller's display name (empty when the backend supplied no user).
type CommandEvent struct {
	Command         string
	Arg             string
	ChannelID       string
	UserDisplayName string
}

// CommandInfo is the registration metadata announced to the chat backend for
// one command. The backend uses it to route command events and to answer
// help queries.
type CommandInfo struct {
	Name      string
	ShortHelp string
	FullHelp  string
}
