package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cookpedia/pantry/pkg/types"
)

var _ types.Catalog = (*Store)(nil)

func rawEnv(id, title string) types.RawEnvelope {
	return types.RawEnvelope{Post: &types.RawPost{PostID: id, MenuName: title}}
}

// fakeSource serves a canned listing or a canned error.
type fakeSource struct {
	envs  []types.RawEnvelope
	err   error
	calls int
}

func (f *fakeSource) ListPosts(ctx context.Context) ([]types.RawEnvelope, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.envs, nil
}

func (f *fakeSource) GetPost(ctx context.Context, id string) (types.RawEnvelope, error) {
	return types.RawEnvelope{}, types.ErrNotFound
}

// fakeJournal is an in-memory Journal.
type fakeJournal struct {
	entries []types.Recipe
	err     error
}

func (f *fakeJournal) Append(r types.Recipe) error {
	if f.err != nil {
		return f.err
	}
	f.entries = append([]types.Recipe{r}, f.entries...)
	return nil
}

func (f *fakeJournal) Recent() ([]types.Recipe, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.entries, nil
}

func TestLoadPreservesSourceOrder(t *testing.T) {
	s := NewStore()
	s.Load([]types.RawEnvelope{rawEnv("1", "Pad Thai"), rawEnv("2", "Tom Yum"), rawEnv("3", "Congee")})

	all := s.All()
	require.Len(t, all, 3)
	assert.Equal(t, "1", all[0].ID)
	assert.Equal(t, "2", all[1].ID)
	assert.Equal(t, "3", all[2].ID)
}

func TestLoadDropsMalformedRecordsOnly(t *testing.T) {
	// One of three records has no identifier; the other two still load.
	s := NewStore()
	s.Load([]types.RawEnvelope{
		rawEnv("1", "Pad Thai"),
		{Post: &types.RawPost{MenuName: "No ID"}},
		rawEnv("3", "Congee"),
	})

	assert.Equal(t, 2, s.Len())
	_, err := s.Get("1")
	assert.NoError(t, err)
	_, err = s.Get("3")
	assert.NoError(t, err)
}

func TestLoadReplacesCollection(t *testing.T) {
	s := NewStore()
	s.Load([]types.RawEnvelope{rawEnv("1", "Pad Thai")})
	s.Load([]types.RawEnvelope{rawEnv("2", "Tom Yum")})

	assert.Equal(t, 1, s.Len())
	_, err := s.Get("1")
	assert.ErrorIs(t, err, types.ErrNotFound)
}

func TestInsertPrepends(t *testing.T) {
	s := NewStore()
	s.Load([]types.RawEnvelope{rawEnv("1", "Pad Thai")})
	s.Insert(types.Recipe{ID: "2", Title: "Tom Yum"})

	all := s.All()
	require.Len(t, all, 2)
	assert.Equal(t, "2", all[0].ID)
}

func TestInsertReplacesByID(t *testing.T) {
	s := NewStore()
	s.Load([]types.RawEnvelope{rawEnv("1", "Pad Thai"), rawEnv("2", "Tom Yum")})
	s.Insert(types.Recipe{ID: "2", Title: "Tom Yum v2"})

	assert.Equal(t, 2, s.Len())
	r, err := s.Get("2")
	require.NoError(t, err)
	assert.Equal(t, "Tom Yum v2", r.Title)
	assert.Equal(t, "2", s.All()[0].ID)
}

func TestRefreshSuccess(t *testing.T) {
	s := NewStore()
	src := &fakeSource{envs: []types.RawEnvelope{rawEnv("1", "Pad Thai")}}

	require.NoError(t, s.Refresh(context.Background(), src))
	assert.Equal(t, 1, s.Len())
}

func TestRefreshFailureLeavesCatalogStale(t *testing.T) {
	s := NewStore()
	s.Load([]types.RawEnvelope{rawEnv("1", "Pad Thai")})

	src := &fakeSource{err: errors.New("boom")}
	err := s.Refresh(context.Background(), src)

	assert.Error(t, err)
	assert.Equal(t, 1, s.Len(), "a transient failure must not blank the catalog")
}

func TestRefreshCanceledContextDiscardsResponse(t *testing.T) {
	s := NewStore()
	s.Load([]types.RawEnvelope{rawEnv("1", "Pad Thai")})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	src := &fakeSource{envs: []types.RawEnvelope{rawEnv("2", "Tom Yum")}}
	err := s.Refresh(ctx, src)

	assert.ErrorIs(t, err, context.Canceled)
	_, getErr := s.Get("2")
	assert.ErrorIs(t, getErr, types.ErrNotFound)
	_, getErr = s.Get("1")
	assert.NoError(t, getErr)
}

func TestPublishCreatedInsertsJournalsAndNotifies(t *testing.T) {
	journal := &fakeJournal{}
	s := NewStore(WithJournal(journal))

	var got []string
	s.Subscribe(func(r types.Recipe) { got = append(got, "a:"+r.ID) })
	s.Subscribe(func(r types.Recipe) { got = append(got, "b:"+r.ID) })

	s.PublishCreated(types.Recipe{ID: "9", Title: "Mango Sticky Rice"})

	// Delivered synchronously, in registration order.
	assert.Equal(t, []string{"a:9", "b:9"}, got)
	assert.Equal(t, 1, s.Len())
	require.Len(t, journal.entries, 1)
	assert.Equal(t, "9", journal.entries[0].ID)
}

func TestPublishCreatedSurvivesJournalFailure(t *testing.T) {
	s := NewStore(WithJournal(&fakeJournal{err: errors.New("disk full")}))

	notified := false
	s.Subscribe(func(types.Recipe) { notified = true })
	s.PublishCreated(types.Recipe{ID: "9", Title: "Mango Sticky Rice"})

	assert.Equal(t, 1, s.Len())
	assert.True(t, notified)
}

func TestUnsubscribeStopsDelivery(t *testing.T) {
	s := NewStore()

	count := 0
	unsubscribe := s.Subscribe(func(types.Recipe) { count++ })

	s.PublishCreated(types.Recipe{ID: "1", Title: "A"})
	unsubscribe()
	unsubscribe() // second call is harmless
	s.PublishCreated(types.Recipe{ID: "2", Title: "B"})

	assert.Equal(t, 1, count)
}

func TestUnsubscribeDuringDeliveryStillSeesInFlightEvent(t *testing.T) {
	s := NewStore()

	count := 0
	var unsubscribe func()
	unsubscribe = s.Subscribe(func(types.Recipe) {
		count++
		unsubscribe()
	})

	s.PublishCreated(types.Recipe{ID: "1", Title: "A"})
	s.PublishCreated(types.Recipe{ID: "2", Title: "B"})

	// The first event is delivered even though the callback unregistered
	// itself; the second is not.
	assert.Equal(t, 1, count)
}

func TestHydrateReplaysJournalWithoutDuplicates(t *testing.T) {
	journal := &fakeJournal{entries: []types.Recipe{
		{ID: "9", Title: "Newest"},
		{ID: "8", Title: "Older"},
	}}
	s := NewStore(WithJournal(journal))
	s.Load([]types.RawEnvelope{rawEnv("8", "Older from service"), rawEnv("1", "Pad Thai")})

	require.NoError(t, s.Hydrate())

	all := s.All()
	require.Len(t, all, 3, "a record seen via both paths must not duplicate")
	assert.Equal(t, "9", all[0].ID)
	r, err := s.Get("8")
	require.NoError(t, err)
	assert.Equal(t, "Older", r.Title, "journal copy replaces the fetched one")
}

func TestHydrateWithoutJournalIsNoop(t *testing.T) {
	s := NewStore()
	assert.NoError(t, s.Hydrate())
}
