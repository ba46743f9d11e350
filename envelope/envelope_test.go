package envelope

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mqy/gchat/auth"
	"github.com/mqy/gchat/chat"
)

func TestBuildRequestHeader(t *testing.T) {
	b := NewBuilder(auth.NewStaticClient("tok"))
	h, err := b.BuildRequestHeader()
	require.NoError(t, err)
	assert.Equal(t, ClientType, h.ClientType)
	assert.Equal(t, ClientVersion, h.ClientVersion)
	assert.Equal(t, "tok", h.AuthToken)

	_, err = NewBuilder(auth.NewStaticClient("")).BuildRequestHeader()
	assert.Error(t, err)
}

func TestBuildEventHeader(t *testing.T) {
	b := NewBuilder(auth.NewStaticClient("tok"))
	h := b.BuildEventHeader(chat.Space("AAA"))
	assert.Equal(t, "AAA", h.GetGroupId().GetSpaceId().GetSpaceId())
	assert.Nil(t, h.GetGroupId().GetDmId())
	assert.NotZero(t, h.ClientGeneratedId)

	h2 := b.BuildEventHeader(chat.DM("d"))
	assert.Equal(t, "d", h2.GetGroupId().GetDmId().GetDmId())
	assert.NotEqual(t, h.ClientGeneratedId, h2.ClientGeneratedId)
}

func TestNewClientIDIs63Bit(t *testing.T) {
	for i := 0; i < 1000; i++ {
		id := NewClientID()
		assert.NotZero(t, id)
		assert.Zero(t, id>>63)
	}
}
