package postgres

import (
	"context"
	"testing"

	"petfeeder/internal/domain/entity"
	"petfeeder/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScheduleRepository_FindActiveMealsJoinsPetAndTiming(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	owner := seedOwner(t, db)

	pet := &entity.Pet{UserID: owner.UserID, Name: "Tom"}
	require.NoError(t, NewPetRepository(db).CreatePet(ctx, pet))
	timing := &entity.MotorTiming{FeedAmount: entity.Portion{Num: 1, Den: 4}, MotorDuration: 1200, InterrupterCount: 7}
	require.NoError(t, NewMotorTimingRepository(db).CreateMotorTiming(ctx, timing))

	repo := NewScheduleRepository(db)
	for _, s := range []*entity.FeedingSchedule{
		{Label: "dinner", UTCTime: 18 * 3600, Active: true},
		{Label: "breakfast", UTCTime: 7 * 3600, Active: true},
		{Label: "disabled", UTCTime: 12 * 3600, Active: false},
	} {
		s.DeviceOwnerID = owner.ID
		s.PetID = pet.ID
		s.MotorTimingID = timing.ID
		s.Days = entity.AllDays
		require.NoError(t, repo.CreateSchedule(ctx, s))
	}

	meals, err := repo.FindActiveMeals(ctx, owner.ID)

	require.NoError(t, err)
	require.Len(t, meals, 2)
	assert.Equal(t, "breakfast", meals[0].Schedule.Label)
	assert.Equal(t, "Tom", meals[0].PetName)
	assert.Equal(t, "1/4", meals[0].Timing.FeedAmount.String())
	assert.Equal(t, 1200, meals[0].Timing.MotorDuration)
	assert.Equal(t, entity.AllDays, meals[1].Schedule.Days)
}

func TestScheduleRepository_UpdateAndDelete(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	owner := seedOwner(t, db)
	repo := NewScheduleRepository(db)

	s := &entity.FeedingSchedule{DeviceOwnerID: owner.ID, Label: "lunch", Days: entity.DayBit(3), UTCTime: 12 * 3600, Active: true}
	require.NoError(t, repo.CreateSchedule(ctx, s))

	s.Label = "late lunch"
	s.Active = false
	require.NoError(t, repo.UpdateSchedule(ctx, s))

	found, err := repo.FindScheduleByID(ctx, s.ID)
	require.NoError(t, err)
	assert.Equal(t, "late lunch", found.Label)
	assert.False(t, found.Active)

	require.NoError(t, repo.DeleteSchedulesByOwner(ctx, owner.ID))
	_, err = repo.FindScheduleByID(ctx, s.ID)
	assert.ErrorIs(t, err, repository.ErrScheduleNotFound)
}
