package services

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hotel-inventory/models"
	"hotel-inventory/store"
)

func counterIDs() func() string {
	n := 0
	return func() string {
		n++
		return "id-" + strconv.Itoa(n)
	}
}

func price(v float64) *float64 { return &v }

func roomNames(rooms []models.Room) []string {
	out := []string{}
	for _, r := range rooms {
		out = append(out, r.Name)
	}
	return out
}

func list(t *testing.T, svc *RoomService, f RoomFilter) []models.Room {
	t.Helper()
	rooms, err := svc.List(f)
	require.NoError(t, err)
	return rooms
}

func newFilterFixture(t *testing.T) *RoomService {
	t.Helper()
	svc := NewRoomService(store.NewMemory(), counterIDs(), true, false)
	for _, in := range []models.CreateRoomInput{
		{Name: "Ocean View", RoomType: "t1", Price: price(50)},
		{Name: "Ocean Cove", RoomType: "t2", Price: price(200)},
		{Name: "Mountain", RoomType: "t1", Price: price(150)},
	} {
		_, err := svc.Create(in)
		require.NoError(t, err)
	}
	return svc
}

func TestRoomServiceList(t *testing.T) {
	svc := newFilterFixture(t)

	cases := []struct {
		name   string
		filter RoomFilter
		want   []string
	}{
		{"no filter", RoomFilter{}, []string{"Ocean View", "Ocean Cove", "Mountain"}},
		{"search", RoomFilter{Search: "Ocean"}, []string{"Ocean View", "Ocean Cove"}},
		{"search is case sensitive", RoomFilter{Search: "OCEAN"}, []string{}},
		{"search and max", RoomFilter{Search: "Ocean", MaxPrice: price(100)}, []string{"Ocean View"}},
		{"min alone ignored", RoomFilter{MinPrice: price(60)}, []string{"Ocean View", "Ocean Cove", "Mountain"}},
		{"range inclusive", RoomFilter{MinPrice: price(50), MaxPrice: price(150)}, []string{"Ocean View", "Mountain"}},
		{"room type", RoomFilter{RoomType: "t2"}, []string{"Ocean Cove"}},
		{"unknown room type", RoomFilter{RoomType: "t9"}, []string{}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, roomNames(list(t, svc, tc.filter)))
		})
	}
}

func TestRoomServiceListMinPriceAlone(t *testing.T) {
	svc := NewRoomService(store.NewMemory(), counterIDs(), true, true)
	for _, in := range []models.CreateRoomInput{
		{Name: "Ocean View", RoomType: "t1", Price: price(50)},
		{Name: "Ocean Cove", RoomType: "t2", Price: price(200)},
		{Name: "Mountain", RoomType: "t1", Price: price(150)},
	} {
		_, err := svc.Create(in)
		require.NoError(t, err)
	}

	assert.Equal(t, []string{"Ocean Cove", "Mountain"}, roomNames(list(t, svc, RoomFilter{MinPrice: price(60)})))
}

func TestRoomServiceListSkipsUnpricedRoomsUnderPriceFilter(t *testing.T) {
	svc := NewRoomService(store.NewMemory(), counterIDs(), false, false)
	_, err := svc.Create(models.CreateRoomInput{Name: "Draft"})
	require.NoError(t, err)

	assert.Len(t, list(t, svc, RoomFilter{}), 1)
	assert.Empty(t, list(t, svc, RoomFilter{MaxPrice: price(1000)}))
}

func TestRoomServiceCreate(t *testing.T) {
	svc := NewRoomService(store.NewMemory(), counterIDs(), true, false)

	_, err := svc.Create(models.CreateRoomInput{Name: "A", RoomType: "t1"})
	assert.ErrorIs(t, err, ErrInvalidPayload)

	room, err := svc.Create(models.CreateRoomInput{Name: "A", RoomType: "t1", Price: price(0)})
	require.NoError(t, err)
	assert.Equal(t, "id-1", room.ID)

	got, err := svc.GetByID("id-1")
	require.NoError(t, err)
	assert.Equal(t, room, got)
}

func TestRoomServiceUpdateAndDelete(t *testing.T) {
	svc := newFilterFixture(t)

	require.NoError(t, svc.Update("id-1", models.UpdateRoomInput{Price: price(75)}))
	got, err := svc.GetByID("id-1")
	require.NoError(t, err)
	assert.Equal(t, "Ocean View", got.Name)
	assert.Equal(t, "t1", got.RoomType)
	assert.Equal(t, 75.0, *got.Price)

	assert.ErrorIs(t, svc.Update("missing", models.UpdateRoomInput{}), store.ErrNotFound)

	require.NoError(t, svc.Delete("id-2"))
	assert.ErrorIs(t, svc.Delete("id-2"), store.ErrNotFound)
	_, err = svc.GetByID("id-2")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestRoomTypeService(t *testing.T) {
	svc := NewRoomTypeService(store.NewMemory(), counterIDs(), true)

	_, err := svc.Create(models.CreateRoomTypeInput{})
	assert.ErrorIs(t, err, ErrInvalidPayload)

	a, err := svc.Create(models.CreateRoomTypeInput{Name: "Suite"})
	require.NoError(t, err)
	b, err := svc.Create(models.CreateRoomTypeInput{Name: "Suite"})
	require.NoError(t, err)
	assert.NotEqual(t, a.ID, b.ID)
	all, err := svc.GetAll()
	require.NoError(t, err)
	assert.Equal(t, []models.RoomType{a, b}, all)
}

func TestSeedRoomTypes(t *testing.T) {
	svc := NewRoomTypeService(store.NewMemory(), counterIDs(), true)

	SeedRoomTypes(svc)
	SeedRoomTypes(svc)

	all, err := svc.GetAll()
	require.NoError(t, err)
	var names []string
	for _, rt := range all {
		names = append(names, rt.Name)
	}
	assert.Equal(t, defaultRoomTypes, names)
}

func TestRoomServiceNeverReusesDeletedIDs(t *testing.T) {
	svc := NewRoomService(store.NewMemory(), counterIDs(), true, false)

	first, err := svc.Create(models.CreateRoomInput{Name: "A", RoomType: "t1", Price: price(1)})
	require.NoError(t, err)
	require.NoError(t, svc.Delete(first.ID))

	for i := 0; i < 10; i++ {
		room, err := svc.Create(models.CreateRoomInput{Name: "B", RoomType: "t1", Price: price(1)})
		require.NoError(t, err)
		assert.NotEqual(t, first.ID, room.ID)
	}
	_, err = svc.GetByID(first.ID)
	assert.ErrorIs(t, err, store.ErrNotFound)
}
