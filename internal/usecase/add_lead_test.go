package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atobones/google-sheets-automation/internal/entity"
)

func newAddLeadFixture() (*fakeStore, *AddLeadUseCase) {
	store := newFakeStore()
	schema := NewSchemaManager(store, DefaultSettings())
	return store, NewAddLeadUseCase(schema, NewActivityLog(schema))
}

func TestAddLeadAppendsRow(t *testing.T) {
	store, uc := newAddLeadFixture()
	now := time.Date(2026, 8, 31, 10, 0, 0, 0, time.UTC)
	uc.Now = func() time.Time { return now }

	out, err := uc.Execute(context.Background(), AddLeadInput{
		Name:     "Ada",
		Phone:    "+1555",
		Message:  "call me",
		Assignee: "bob",
	})

	require.NoError(t, err)
	assert.Regexp(t, leadIDPattern, out.ID)

	leads := store.get("Leads")
	require.Len(t, leads.rows, 2)
	header, row := leads.rows[0], leads.rows[1]
	lead := entity.LeadFromRow(header, row)
	assert.Equal(t, out.ID, lead.ID)
	assert.Equal(t, "Ada", lead.Name)
	assert.Equal(t, entity.StatusNew, lead.Status)
	assert.Equal(t, entity.DefaultSource, lead.Source, "empty source defaults to manual")
	assert.True(t, lead.CreatedAt.Equal(lead.LastUpdate), "createdAt and lastUpdate start identical")
	assert.True(t, lead.CreatedAt.Equal(now))
}

func TestAddLeadKeepsExplicitSource(t *testing.T) {
	store, uc := newAddLeadFixture()

	_, err := uc.Execute(context.Background(), AddLeadInput{Source: "webform"})

	require.NoError(t, err)
	row := store.get("Leads").rows[1]
	lead := entity.LeadFromRow(entity.LeadColumns(), row)
	assert.Equal(t, "webform", lead.Source)
}

func TestAddLeadWritesActivityLog(t *testing.T) {
	store, uc := newAddLeadFixture()

	out, err := uc.Execute(context.Background(), AddLeadInput{})

	require.NoError(t, err)
	logs := store.get("Logs")
	require.Len(t, logs.rows, 2)
	assert.Equal(t, entity.ActionAddLead, logs.rows[1][1])
	assert.Contains(t, logs.rows[1][2], out.ID)
}

func TestAddLeadAcceptsEverythingEmpty(t *testing.T) {
	store, uc := newAddLeadFixture()

	out, err := uc.Execute(context.Background(), AddLeadInput{})

	require.NoError(t, err)
	assert.Regexp(t, leadIDPattern, out.ID)
	require.Len(t, store.get("Leads").rows, 2)
}
