package seabird

import (
	"testing"

	"github.com/seabird-chat/seabird-go/pb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loudsignal/hambot/internal/domain"
)

func TestCommandEventFromProto(t *testing.T) {
	ev, ok := commandEventFromProto(&pb.CommandEvent{
		Source: &pb.ChannelSource{
			ChannelId: "chan-42",
			User:      &pb.User{Id: "u-1", DisplayName: "KD5AAA"},
		},
		Command: "pota",
		Arg:     "20m cw",
	})
	require.True(t, ok)

	assert.Equal(t, "pota", ev.Command)
	assert.Equal(t, "20m cw", ev.Arg)
	assert.Equal(t, "chan-42", ev.ChannelID)
	assert.Equal(t, "KD5AAA", ev.UserDisplayName)
}

func TestCommandEventFromProto_NoSource(t *testing.T) {
	_, ok := commandEventFromProto(&pb.CommandEvent{Command: "bands"})
	assert.False(t, ok)
}

func TestCommandEventFromProto_NoUser(t *testing.T) {
	ev, ok := commandEventFromProto(&pb.CommandEvent{
		Source:  &pb.ChannelSource{ChannelId: "chan-42"},
		Command: "bands",
	})
	require.True(t, ok)

	assert.Equal(t, "bands", ev.Command)
	assert.Empty(t, ev.UserDisplayName)
}

func TestCommandMetadataFromInfo(t *testing.T) {
	meta := commandMetadataFromInfo([]domain.CommandInfo{
		{Name: "bands", ShortHelp: "short", FullHelp: "full"},
		{Name: "pota", ShortHelp: "pota short", FullHelp: "pota full"},
	})
	require.Len(t, meta, 2)

	require.Contains(t, meta, "bands")
	assert.Equal(t, "bands", meta["bands"].Name)
	assert.Equal(t, "short", meta["bands"].ShortHelp)
	assert.Equal(t, "full", meta["bands"].FullHelp)

	require.Contains(t, meta, "pota")
	assert.Equal(t, "pota full", meta["pota"].FullHelp)
}
