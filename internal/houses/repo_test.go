package houses

import (
	"context"
	"testing"

	"github.com/hurricanehousing/hhh-backend/pkg/db/dbtest"
	"github.com/hurricanehousing/hhh-backend/pkg/db/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seedHouse(t *testing.T, db *gorm.DB, street string, available int, destroyed bool, guardian *string) *models.House {
	t.Helper()
	house := &models.House{
		Street:              street,
		City:                "Tampa",
		State:               "FL",
		ZipCode:             "33601",
		HouseTotalSpace:     available,
		HouseSpaceAvailable: available,
		GuardianSSN:         guardian,
		IsDestroyed:         destroyed,
	}
	require.NoError(t, db.Create(house).Error)
	return house
}

func strPtr(s string) *string { return &s }

func TestListAvailableSkipsDestroyedAndOrdersByID(t *testing.T) {
	db := dbtest.Open(t)
	repo := NewRepository(db)

	first := seedHouse(t, db, "1 Bay St", 3, false, nil)
	seedHouse(t, db, "2 Gulf Ave", 5, true, nil)
	third := seedHouse(t, db, "3 Palm Rd", 0, false, nil)

	houses, err := repo.ListAvailable(context.Background())
	require.NoError(t, err)
	require.Len(t, houses, 2)
	assert.Equal(t, first.HouseID, houses[0].HouseID)
	assert.Equal(t, third.HouseID, houses[1].HouseID)
}

func TestReserveSpaceWithTx(t *testing.T) {
	db := dbtest.Open(t)
	repo := NewRepository(db)
	house := seedHouse(t, db, "1 Bay St", 2, false, nil)

	ok, err := repo.ReserveSpaceWithTx(db, house.HouseID, 3)
	require.NoError(t, err)
	assert.False(t, ok, "over-capacity reservation must not apply")

	ok, err = repo.ReserveSpaceWithTx(db, house.HouseID, 2)
	require.NoError(t, err)
	assert.True(t, ok)

	reloaded, err := repo.FindByID(context.Background(), house.HouseID)
	require.NoError(t, err)
	assert.Equal(t, 0, reloaded.HouseSpaceAvailable)

	ok, err = repo.ReserveSpaceWithTx(db, house.HouseID, 1)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestReserveSpaceRejectsDestroyedHouse(t *testing.T) {
	db := dbtest.Open(t)
	repo := NewRepository(db)
	house := seedHouse(t, db, "1 Bay St", 6, true, nil)

	ok, err := repo.ReserveSpaceWithTx(db, house.HouseID, 1)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSetGuardianAndDestroyedByGuardian(t *testing.T) {
	db := dbtest.Open(t)
	repo := NewRepository(db)
	house := seedHouse(t, db, "1 Bay St", 4, false, nil)

	require.NoError(t, repo.SetGuardianWithTx(db, house.HouseID, "123-45-6789"))
	require.ErrorIs(t, repo.SetGuardianWithTx(db, 9999, "123-45-6789"), gorm.ErrRecordNotFound)

	rows, err := repo.SetDestroyedByGuardianWithTx(db, "123-45-6789", true)
	require.NoError(t, err)
	assert.EqualValues(t, 1, rows)

	reloaded, err := repo.FindByID(context.Background(), house.HouseID)
	require.NoError(t, err)
	assert.True(t, reloaded.IsDestroyed)
	require.NotNil(t, reloaded.GuardianSSN)
	assert.Equal(t, "123-45-6789", *reloaded.GuardianSSN)
}

func TestUpdateDetailsWithTx(t *testing.T) {
	db := dbtest.Open(t)
	repo := NewRepository(db)
	house := seedHouse(t, db, "1 Bay St", 4, false, nil)

	require.NoError(t, repo.UpdateDetailsWithTx(db, house.HouseID, DetailsUpdate{
		Street: "9 Dune Ln", City: "Naples", State: "FL", ZipCode: "34102",
		HouseTotalSpace: 8, HouseSpaceAvailable: 5,
	}))
	reloaded, err := repo.FindByID(context.Background(), house.HouseID)
	require.NoError(t, err)
	assert.Equal(t, "9 Dune Ln, Naples, FL 34102", reloaded.FormattedAddress())
	assert.Equal(t, 8, reloaded.HouseTotalSpace)
	assert.Equal(t, 5, reloaded.HouseSpaceAvailable)

	require.ErrorIs(t, repo.UpdateDetailsWithTx(db, 4242, DetailsUpdate{}), gorm.ErrRecordNotFound)
}

func TestDeleteGuardedWithTx(t *testing.T) {
	db := dbtest.Open(t)
	repo := NewRepository(db)
	house := seedHouse(t, db, "1 Bay St", 4, false, strPtr("111-11-1111"))
	other := seedHouse(t, db, "2 Gulf Ave", 4, false, strPtr("222-22-2222"))

	wrongID := other.HouseID
	rows, err := repo.DeleteGuardedWithTx(db, "111-11-1111", &wrongID)
	require.NoError(t, err)
	assert.EqualValues(t, 0, rows, "house id constraint must be honoured")

	rows, err = repo.DeleteGuardedWithTx(db, "111-11-1111", nil)
	require.NoError(t, err)
	assert.EqualValues(t, 1, rows)

	_, err = repo.FindByID(context.Background(), house.HouseID)
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)
	_, err = repo.FindByID(context.Background(), other.HouseID)
	require.NoError(t, err)
}

func TestWithTxMethodsRequireTransaction(t *testing.T) {
	repo := NewRepository(dbtest.Open(t))
	require.ErrorIs(t, repo.CreateWithTx(nil, &models.House{}), gorm.ErrInvalidTransaction)
	_, err := repo.ReserveSpaceWithTx(nil, 1, 1)
	require.ErrorIs(t, err, gorm.ErrInvalidTransaction)
}
