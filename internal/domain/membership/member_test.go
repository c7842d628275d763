package membership

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMember(t *testing.T) {
	member, err := NewMember("Budi", "0812000111")
	require.NoError(t, err)
	assert.Equal(t, int64(0), member.Points)

	_, err = NewMember("", "0812000111")
	assert.Error(t, err)

	_, err = NewMember("Budi", "")
	assert.Error(t, err)
}

func TestMember_EarnPoints(t *testing.T) {
	member, _ := NewMember("Budi", "0812000111")

	require.NoError(t, member.EarnPoints(4))
	require.NoError(t, member.EarnPoints(8))
	assert.Equal(t, int64(12), member.Points)

	assert.Error(t, member.EarnPoints(-1))
	assert.Equal(t, int64(12), member.Points)
}
