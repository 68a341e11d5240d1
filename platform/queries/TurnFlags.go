package queries

import (
	"fmt"

	"github.com/gomodule/redigo/redis"

	"github.com/maxwharris/monop/platform/cache"
)

// Per-turn volatile flags live in Redis, keyed per user. They exist
// only between a turn starting and ending, so they never touch the
// relational tables.
func turnKey(userId string) string {
	return fmt.Sprintf("turn.%s", userId)
}

func HasRolledDice(userId string, conn *redis.Conn) bool {
	val, err := cache.HGET(turnKey(userId), "hasRolled", conn)
	if err != nil {
		return false
	}
	return val == "true"
}

func SetRolledDice(userId string, conn *redis.Conn) error {
	return cache.HSET(turnKey(userId), "hasRolled", "true", conn)
}

// IncrDoublesStreak counts consecutive doubles within one turn; the
// third sends the roller to jail.
func IncrDoublesStreak(userId string, conn *redis.Conn) (int, error) {
	return cache.HINCRBY(turnKey(userId), "doubles", 1, conn)
}

// ResetTurnFlags drops all volatile state for a user, called when
// their turn ends (or the game resets).
func ResetTurnFlags(userId string, conn *redis.Conn) error {
	return cache.Del(turnKey(userId), conn)
}
