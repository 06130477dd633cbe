package quiz

import (
	"LibraryHub/src/core/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GrantOutcome reports what the reward pass did for one submission.
type GrantOutcome struct {
	// NewRewards are the reward names granted by this invocation only.
	NewRewards []string
	// EligibleRewards are all reward names whose threshold the student meets,
	// whether granted now or on an earlier submission.
	EligibleRewards []string
	// TotalRewards is the count of distinct rewards the student holds after
	// this pass.
	TotalRewards int
}

// GrantEligibleRewards walks the active reward definitions in ascending
// threshold order and grants every reward the student now qualifies for but
// does not hold yet. The insert goes through ON CONFLICT DO NOTHING on the
// (user_id, reward_id) unique index, so two concurrent submissions crossing
// the same threshold produce exactly one grant row; the loser's insert
// affects zero rows and reports nothing new. Re-running the pass with an
// unchanged books count is a no-op.
func GrantEligibleRewards(tx *gorm.DB, userID, booksCompleted int) (*GrantOutcome, error) {
	var rewards []models.Reward
	err := tx.Where("is_active = ?", true).
		Order("books_required ASC").
		Find(&rewards).Error
	if err != nil {
		return nil, err
	}

	outcome := &GrantOutcome{
		NewRewards:      []string{},
		EligibleRewards: []string{},
	}

	for _, reward := range rewards {
		if booksCompleted < reward.BooksRequired {
			// Thresholds are sorted ascending, nothing further qualifies
			break
		}

		grant := models.UserReward{
			UserID:   userID,
			RewardID: reward.RewardID,
		}
		result := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "reward_id"}},
			DoNothing: true,
		}).Create(&grant)
		if result.Error != nil {
			return nil, result.Error
		}

		if result.RowsAffected > 0 {
			outcome.NewRewards = append(outcome.NewRewards, reward.RewardName)
		}
		outcome.EligibleRewards = append(outcome.EligibleRewards, reward.RewardName)
	}

	var total int64
	err = tx.Model(&models.UserReward{}).
		Where("user_id = ?", userID).
		Distinct("reward_id").
		Count(&total).Error
	if err != nil {
		return nil, err
	}
	outcome.TotalRewards = int(total)

	return outcome, nil
}
