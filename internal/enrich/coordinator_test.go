package enrich

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tablewise/backend/internal/business"
	"github.com/tablewise/backend/internal/hours"
	"github.com/tablewise/backend/internal/provider"
)

type fakeChat struct {
	resp  *business.ChatResponse
	err   error
	calls int
	last  provider.ChatRequest
}

func (f *fakeChat) Chat(_ context.Context, req provider.ChatRequest) (*business.ChatResponse, error) {
	f.calls++
	f.last = req
	return f.resp, f.err
}

func withHours(id, name, addr string) business.Record {
	return business.Record{
		ID:       id,
		Name:     name,
		Location: &business.Location{FormattedAddress: addr},
		Contextual: &business.Contextual{
			BusinessHours: []hours.ProviderDay{{DayOfWeek: "Monday"}},
		},
	}
}

func withoutHours(id, name, addr string) business.Record {
	return business.Record{
		ID:       id,
		Name:     name,
		Location: &business.Location{FormattedAddress: addr},
	}
}

func hoursResponseFor(name, addr string) *business.ChatResponse {
	return &business.ChatResponse{
		Businesses: []business.Record{
			{
				ID:       "enriched",
				Name:     name,
				Location: &business.Location{FormattedAddress: addr},
				Contextual: &business.Contextual{
					BusinessHours: []hours.ProviderDay{
						{DayOfWeek: "Tuesday", Slots: []hours.ProviderSlot{{OpenTime: "2026-03-03 09:00:00", CloseTime: "2026-03-03 17:00:00"}}},
					},
				},
			},
		},
	}
}

func TestFillMissingHoursSkipsWhenAllHaveHours(t *testing.T) {
	chat := &fakeChat{}
	c := NewCoordinator(chat)

	records := []business.Record{withHours("a", "Alpha", "1 St")}
	out := c.FillMissingHours(context.Background(), records, "chat-1", nil, nil)

	assert.Equal(t, 0, chat.calls)
	assert.Equal(t, records, out)
}

func TestFillMissingHoursSkipsWithoutSession(t *testing.T) {
	chat := &fakeChat{}
	c := NewCoordinator(chat)

	records := []business.Record{withoutHours("a", "Alpha", "1 St")}
	out := c.FillMissingHours(context.Background(), records, "", nil, nil)

	assert.Equal(t, 0, chat.calls)
	assert.Equal(t, records, out)
}

func TestFillMissingHoursFillsOnlyMissing(t *testing.T) {
	chat := &fakeChat{resp: hoursResponseFor("Beta", "2 St")}
	c := NewCoordinator(chat)

	already := withHours("a", "Alpha", "1 St")
	missing := withoutHours("b", "Beta", "2 St")

	out := c.FillMissingHours(context.Background(), []business.Record{already, missing}, "chat-1", nil, nil)

	require.Len(t, out, 2)
	assert.Equal(t, 1, chat.calls)
	assert.Equal(t, "chat-1", chat.last.ChatID)

	// the record that already had hours is untouched
	assert.Equal(t, "Monday", out[0].Contextual.BusinessHours[0].DayOfWeek)

	require.NotNil(t, out[1].Contextual)
	require.Len(t, out[1].Contextual.BusinessHours, 1)
	assert.Equal(t, "Tuesday", out[1].Contextual.BusinessHours[0].DayOfWeek)
}

func TestFillMissingHoursNeverOverwritesExisting(t *testing.T) {
	chat := &fakeChat{resp: hoursResponseFor("Alpha", "1 St")}
	c := NewCoordinator(chat)

	already := withHours("a", "Alpha", "1 St")
	missing := withoutHours("b", "Beta", "2 St")

	out := c.FillMissingHours(context.Background(), []business.Record{already, missing}, "chat-1", nil, nil)

	assert.Equal(t, "Monday", out[0].Contextual.BusinessHours[0].DayOfWeek)
	assert.Nil(t, out[1].Contextual)
}

func TestFillMissingHoursMatchToleratesFormattingDrift(t *testing.T) {
	chat := &fakeChat{resp: hoursResponseFor("  BETA  ", "2 st")}
	c := NewCoordinator(chat)

	out := c.FillMissingHours(context.Background(), []business.Record{withoutHours("b", "Beta", "2 St")}, "chat-1", nil, nil)

	require.NotNil(t, out[0].Contextual)
	assert.NotEmpty(t, out[0].Contextual.BusinessHours)
}

func TestFillMissingHoursFailsSilently(t *testing.T) {
	chat := &fakeChat{err: errors.New("upstream down")}
	c := NewCoordinator(chat)

	records := []business.Record{withoutHours("a", "Alpha", "1 St")}
	out := c.FillMissingHours(context.Background(), records, "chat-1", nil, nil)

	assert.Equal(t, records, out)
}

func TestFillMissingHoursQueryListsEveryMissingBusiness(t *testing.T) {
	chat := &fakeChat{resp: &business.ChatResponse{}}
	c := NewCoordinator(chat)

	c.FillMissingHours(context.Background(), []business.Record{
		withoutHours("a", "Alpha", "1 St"),
		withoutHours("b", "Beta", "2 St"),
	}, "chat-1", nil, nil)

	assert.Contains(t, chat.last.Query, "1. Alpha — 1 St")
	assert.Contains(t, chat.last.Query, "2. Beta — 2 St")
	assert.Contains(t, chat.last.Query, "business_hours")
}
