package models

import (
	"time"
)

// UserReward is the grant ledger. The unique index over (user_id, reward_id)
// is what makes reward granting safe under concurrent submissions: inserts
// race through ON CONFLICT DO NOTHING instead of double-granting.
type UserReward struct {
	UserRewardID int       `gorm:"column:user_reward_id;primaryKey;autoIncrement" json:"user_reward_id"`
	UserID       int       `gorm:"column:user_id;type:int;not null;uniqueIndex:idx_user_rewards_user_reward" json:"user_id"`
	RewardID     int       `gorm:"column:reward_id;type:int;not null;uniqueIndex:idx_user_rewards_user_reward" json:"reward_id"`
	EarnedDate   time.Time `gorm:"column:earned_date;autoCreateTime" json:"earned_date"`
}

func (UserReward) TableName() string {
	return "user_rewards"
}
