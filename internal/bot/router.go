package bot

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync/atomic"
	"time"

	"github.com/loudsignal/hambot/internal/domain"
	"github.com/loudsignal/hambot/internal/observability"
)

// EventSource delivers command events from the chat backend.
type EventSource interface {
	Events() <-chan domain.CommandEvent
}

// Messenger posts text to a chat channel.
type Messenger interface {
	SendMessage(ctx context.Context, channelID, text string) error
}

// ConditionsSource fetches the current band condition report.
type ConditionsSource interface {
	FetchConditions(ctx context.Context) (*domain.ConditionReport, error)
}

// ActivationSource fetches the current activation spot list.
type ActivationSource interface {
	FetchActivations(ctx context.Context) ([]domain.Activation, error)
}

// Commands describes every chat command the bot answers, with the help text
// registered on the event stream.
func Commands() []domain.CommandInfo {
	return []domain.CommandInfo{
		{
			Name:      "bands",
			ShortHelp: "show HAM RF band conditions",
			FullHelp:  "show HAM RF band conditions",
		},
		{
			Name:      "pota",
			ShortHelp: "find most recent POTA activation",
			FullHelp:  "find the most recent Parks on the Air activation. Usage: pota <band> [mode]. Default mode is SSB.",
		},
	}
}

// Router dispatches incoming chat commands to their handlers.
type Router struct {
	source      EventSource
	messenger   Messenger
	conditions  ConditionsSource
	activations ActivationSource
	logger      *slog.Logger
	metrics     *observability.Metrics
	ready       atomic.Bool
}

// New creates a Router with the given sources and observability.
func New(source EventSource, messenger Messenger, conditions ConditionsSource, activations ActivationSource, logger *slog.Logger, metrics *observability.Metrics) *Router {
	return &Router{
		source:      source,
		messenger:   messenger,
		conditions:  conditions,
		activations: activations,
		logger:      logger,
		metrics:     metrics,
	}
}

// CheckReadiness returns nil while the event loop is consuming, or an error
// describing why the service is not yet ready.
func (r *Router) CheckReadiness(_ context.Context) error {
	if !r.ready.Load() {
		return errors.New("command router is not running")
	}
	return nil
}

// Run consumes command events until the context is cancelled or the event
// channel closes.
func (r *Router) Run(ctx context.Context) error {
	r.logger.Info("command router started")
	r.ready.Store(true)
	defer r.ready.Store(false)

	for {
		select {
		case <-ctx.Done():
			r.logger.Info("command router stopping", "reason", ctx.Err())
			return nil
		case ev, ok := <-r.source.Events():
			if !ok {
				r.logger.Info("event channel closed, command router stopping")
				return nil
			}
			r.dispatch(ctx, ev)
		}
	}
}

// dispatch routes one command event. Handler failures are reported to the
// channel and never stop the loop.
func (r *Router) dispatch(ctx context.Context, ev domain.CommandEvent) {
	start := time.Now()

	switch ev.Command {
	case "bands":
		r.handleBands(ctx, ev)
	case "pota":
		r.handlePota(ctx, ev)
	default:
		r.logger.Debug("ignoring unknown command", "command", ev.Command)
		return
	}

	r.metrics.CommandsHandled.Inc()
	r.metrics.CommandDuration.WithLabelValues(ev.Command).Observe(time.Since(start).Seconds())
}

func (r *Router) handleBands(ctx context.Context, ev domain.CommandEvent) {
	report, err := r.conditions.FetchConditions(ctx)
	if err != nil {
		r.logger.Error("fetch conditions failed", "error", err)
		r.metrics.CommandErrors.WithLabelValues("bands").Inc()
		r.reply(ctx, ev, "error fetching band conditions")
		return
	}

	r.reply(ctx, ev, "current band conditions:")
	for _, line := range report.Lines() {
		r.send(ctx, ev.ChannelID, line)
	}
}

func (r *Router) handlePota(ctx context.Context, ev domain.CommandEvent) {
	band, mode, ok := r.parsePotaArgs(ctx, ev)
	if !ok {
		return
	}

	activations, err := r.activations.FetchActivations(ctx)
	if err != nil {
		r.logger.Error("fetch activations failed", "error", err)
		r.metrics.CommandErrors.WithLabelValues("pota").Inc()
		r.reply(ctx, ev, "error fetching activations")
		return
	}

	match := domain.FindMostRecentMatch(activations, band, mode)
	if match == nil {
		r.reply(ctx, ev, fmt.Sprintf("no activations found on %s over %s", band, mode))
		return
	}
	r.reply(ctx, ev, match.Summary())
}

// parsePotaArgs extracts the band and optional mode from the command
// argument, replying with a usage or validation message on bad input.
// The mode is validated before the band.
func (r *Router) parsePotaArgs(ctx context.Context, ev domain.CommandEvent) (domain.Band, domain.Mode, bool) {
	fields := strings.Fields(ev.Arg)

	var bandArg string
	mode := domain.ModeSSB

	switch len(fields) {
	case 1:
		bandArg = fields[0]
	case 2:
		var err error
		mode, err = domain.ParseMode(fields[1])
		if err != nil {
			r.reply(ctx, ev, "invalid mode")
			return 0, 0, false
		}
		bandArg = fields[0]
	default:
		r.reply(ctx, ev, "invalid pota command. Usage: pota <band> [mode]")
		return 0, 0, false
	}

	band, err := domain.ParseBand(bandArg)
	if err != nil {
		r.reply(ctx, ev, "invalid_band")
		return 0, 0, false
	}
	return band, mode, true
}

// reply sends text to the event's channel, prefixed with the sender's name
// when one is known.
func (r *Router) reply(ctx context.Context, ev domain.CommandEvent, text string) {
	r.send(ctx, ev.ChannelID, withMention(ev.UserDisplayName, text))
}

func (r *Router) send(ctx context.Context, channelID, text string) {
	if err := r.messenger.SendMessage(ctx, channelID, text); err != nil {
		r.logger.Error("send message failed", "error", err, "channel", channelID)
	}
}

func withMention(name, text string) string {
	if name == "" {
		return text
	}
	return name + ": " + text
}
