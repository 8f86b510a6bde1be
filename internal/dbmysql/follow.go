package dbmysql

import "time"

// Follow is a directed edge: follower -> following. Unfollow removes the
// edge outright so re-following never collides with the unique index.
type Follow struct {
	ID          int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	FollowerID  int64     `gorm:"column:follower_id;not null;index:idx_follower_following,unique" json:"follower_id"`
	FollowingID int64     `gorm:"column:following_id;not null;index:idx_follower_following,unique" json:"following_id"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

// Block is a directed edge: blocker -> blocked. Blocked creators' content is
// excluded from every feed candidate source. Removed outright on unblock.
type Block struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	BlockerID int64     `gorm:"column:blocker_id;not null;index:idx_blocker_blocked,unique" json:"blocker_id"`
	BlockedID int64     `gorm:"column:blocked_id;not null;index:idx_blocker_blocked,unique" json:"blocked_id"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}
