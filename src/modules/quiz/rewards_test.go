package quiz

import (
	"testing"

	"LibraryHub/src/core/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm/clause"
)

func TestGrantEligibleRewards_AscendingThresholds(t *testing.T) {
	db := newTestDB(t)
	student := seedStudent(t, db)
	seedReward(t, db, "Bronze", 1)
	seedReward(t, db, "Silver", 3)
	seedReward(t, db, "Gold", 10)

	outcome, err := GrantEligibleRewards(db, student.UserID, 3)
	require.NoError(t, err)

	assert.Equal(t, []string{"Bronze", "Silver"}, outcome.NewRewards)
	assert.Equal(t, []string{"Bronze", "Silver"}, outcome.EligibleRewards)
	assert.Equal(t, 2, outcome.TotalRewards)
}

func TestGrantEligibleRewards_Idempotent(t *testing.T) {
	db := newTestDB(t)
	student := seedStudent(t, db)
	seedReward(t, db, "Bronze", 1)

	first, err := GrantEligibleRewards(db, student.UserID, 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"Bronze"}, first.NewRewards)

	// Re-running with the same count must change nothing
	second, err := GrantEligibleRewards(db, student.UserID, 2)
	require.NoError(t, err)
	assert.Empty(t, second.NewRewards)
	assert.Equal(t, []string{"Bronze"}, second.EligibleRewards)
	assert.Equal(t, 1, second.TotalRewards)

	var grants int64
	require.NoError(t, db.Model(&models.UserReward{}).Where("user_id = ?", student.UserID).Count(&grants).Error)
	assert.Equal(t, int64(1), grants)
}

func TestGrantEligibleRewards_InactiveSkipped(t *testing.T) {
	db := newTestDB(t)
	student := seedStudent(t, db)
	retired := seedReward(t, db, "Retired", 1)
	require.NoError(t, db.Model(&models.Reward{}).
		Where("reward_id = ?", retired.RewardID).
		Update("is_active", false).Error)

	outcome, err := GrantEligibleRewards(db, student.UserID, 5)
	require.NoError(t, err)
	assert.Empty(t, outcome.NewRewards)
	assert.Equal(t, 0, outcome.TotalRewards)
}

func TestGrantEligibleRewards_CoincidingThresholdsBothGrant(t *testing.T) {
	db := newTestDB(t)
	student := seedStudent(t, db)
	seedReward(t, db, "Sticker", 2)
	seedReward(t, db, "Bookmark", 2)

	outcome, err := GrantEligibleRewards(db, student.UserID, 2)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"Sticker", "Bookmark"}, outcome.NewRewards)
	assert.Equal(t, 2, outcome.TotalRewards)
}

func TestGrantEligibleRewards_ThresholdNotMet(t *testing.T) {
	db := newTestDB(t)
	student := seedStudent(t, db)
	seedReward(t, db, "Gold", 10)

	outcome, err := GrantEligibleRewards(db, student.UserID, 9)
	require.NoError(t, err)
	assert.Empty(t, outcome.NewRewards)
	assert.Empty(t, outcome.EligibleRewards)
}

// A duplicate insert racing past the existence check must be swallowed by
// the unique index, not turn into a second grant or an error.
func TestGrantInsert_ConflictDoesNothing(t *testing.T) {
	db := newTestDB(t)
	student := seedStudent(t, db)
	reward := seedReward(t, db, "Bronze", 1)

	grant := models.UserReward{UserID: student.UserID, RewardID: reward.RewardID}
	result := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "reward_id"}},
		DoNothing: true,
	}).Create(&grant)
	require.NoError(t, result.Error)
	assert.Equal(t, int64(1), result.RowsAffected)

	duplicate := models.UserReward{UserID: student.UserID, RewardID: reward.RewardID}
	result = db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "reward_id"}},
		DoNothing: true,
	}).Create(&duplicate)
	require.NoError(t, result.Error)
	assert.Equal(t, int64(0), result.RowsAffected)

	var grants int64
	require.NoError(t, db.Model(&models.UserReward{}).Where("user_id = ?", student.UserID).Count(&grants).Error)
	assert.Equal(t, int64(1), grants)
}
