package shop

import (
	"context"
	"testing"
	"time"

	"github.com/aphfiwiwi/biiscoti/internal/common"
	"github.com/aphfiwiwi/biiscoti/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfileHolder_SaveReplacesSingleRow(t *testing.T) {
	reg := testutil.SetupRegistry(t)
	profiles, err := reg.Profiles(context.Background())
	require.NoError(t, err)

	holder := NewProfileHolder(context.Background(), profiles)
	defer holder.Close()

	_, ok := holder.Current()
	assert.False(t, ok)

	require.NoError(t, holder.Save(ProfileForm{Name: "Amina", Email: "amina@example.com"}))
	require.NoError(t, holder.Flush(context.Background()))
	require.Eventually(t, func() bool {
		_, ok := holder.Current()
		return ok
	}, eventually, 10*time.Millisecond)

	require.NoError(t, holder.Save(ProfileForm{Name: "Amina W.", Phone: "0741462249"}))
	require.NoError(t, holder.Flush(context.Background()))
	require.Eventually(t, func() bool {
		p, _ := holder.Current()
		return p.Name == "Amina W."
	}, eventually, 10*time.Millisecond)

	assert.Equal(t, 1, testutil.MustCount(t, profiles))
	p, _ := holder.Current()
	assert.Equal(t, "0741462249", p.Phone)
}

func TestProfileHolder_SaveInvalid(t *testing.T) {
	reg := testutil.SetupRegistry(t)
	profiles, err := reg.Profiles(context.Background())
	require.NoError(t, err)

	holder := NewProfileHolder(context.Background(), profiles)
	defer holder.Close()

	err = holder.Save(ProfileForm{Name: "Amina", Email: "nope"})
	assert.Equal(t, "check your profile details", common.UserMessage(err))
	require.NoError(t, holder.Flush(context.Background()))
	assert.Zero(t, testutil.MustCount(t, profiles))
}
