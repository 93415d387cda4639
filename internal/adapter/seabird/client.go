package seabird

import (
	"context"
	"fmt"
	"log/slog"

	seabirdgo "github.com/seabird-chat/seabird-go"
	"github.com/seabird-chat/seabird-go/pb"

	"github.com/loudsignal/hambot/internal/config"
	"github.com/loudsignal/hambot/internal/domain"
	"github.com/loudsignal/hambot/internal/observability"
)

// Client bridges a seabird-core gRPC event stream to the bot.
// It implements bot.EventSource and bot.Messenger.
type Client struct {
	inner   *seabirdgo.Client
	metrics *observability.Metrics
	logger  *slog.Logger
	events  chan domain.CommandEvent
}

// NewClient dials the configured seabird-core server.
func NewClient(cfg *config.Config, metrics *observability.Metrics, logger *slog.Logger) (*Client, error) {
	inner, err := seabirdgo.NewClient(cfg.SeabirdURL, cfg.SeabirdToken)
	if err != nil {
		return nil, fmt.Errorf("connect to seabird: %w", err)
	}
	return &Client{
		inner:   inner,
		metrics: metrics,
		logger:  logger,
		events:  make(chan domain.CommandEvent),
	}, nil
}

// Stream opens the event stream, registering the given commands and their
// help text with the server, and forwards each command event until ctx is
// done or the stream breaks. The events channel is closed on return.
func (c *Client) Stream(ctx context.Context, commands []domain.CommandInfo) error {
	defer close(c.events)

	stream, err := c.inner.Inner.StreamEvents(ctx, &pb.StreamEventsRequest{
		Commands: commandMetadataFromInfo(commands),
	})
	if err != nil {
		return fmt.Errorf("open event stream: %w", err)
	}

	c.metrics.StreamConnected.Set(1)
	defer c.metrics.StreamConnected.Set(0)
	c.logger.Info("event stream connected", "commands", len(commands))

	for {
		event, err := stream.Recv()
		if err != nil {
			return fmt.Errorf("receive event: %w", err)
		}

		cmd := event.GetCommand()
		if cmd == nil {
			continue
		}

		ev, ok := commandEventFromProto(cmd)
		if !ok {
			c.logger.Warn("dropping command event without channel source", "command", cmd.GetCommand())
			continue
		}

		select {
		case c.events <- ev:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

// Events returns the channel command events are delivered on.
func (c *Client) Events() <-chan domain.CommandEvent {
	return c.events
}

// SendMessage posts text to a chat channel.
func (c *Client) SendMessage(ctx context.Context, channelID, text string) error {
	_, err := c.inner.Inner.SendMessage(ctx, &pb.SendMessageRequest{
		ChannelId: channelID,
		Text:      text,
	})
	if err != nil {
		return fmt.Errorf("send message: %w", err)
	}
	c.metrics.RepliesSent.Inc()
	return nil
}

// Close tears down the underlying gRPC connection.
func (c *Client) Close() error {
	return c.inner.Close()
}

// commandMetadataFromInfo builds the per-command metadata map the server
// uses to answer help queries.
func commandMetadataFromInfo(commands []domain.CommandInfo) map[string]*pb.CommandMetadata {
	meta := make(map[string]*pb.CommandMetadata, len(commands))
	for _, cmd := range commands {
		meta[cmd.Name] = &pb.CommandMetadata{
			Name:      cmd.Name,
			ShortHelp: cmd.ShortHelp,
			FullHelp:  cmd.FullHelp,
		}
	}
	return meta
}

// commandEventFromProto flattens a proto command event into the domain type.
// Events without a channel source carry no reply address and are dropped.
func commandEventFromProto(cmd *pb.CommandEvent) (domain.CommandEvent, bool) {
	source := cmd.GetSource()
	if source == nil {
		return domain.CommandEvent{}, false
	}
	return domain.CommandEvent{
		Command:         cmd.GetCommand(),
		Arg:             cmd.GetArg(),
		ChannelID:       source.GetChannelId(),
		UserDisplayName: source.GetUser().GetDisplayName(),
	}, true
}
