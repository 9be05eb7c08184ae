package cache

import (
	"fmt"
	"strconv"

	"github.com/gomodule/redigo/redis"
	"github.com/sirupsen/logrus"

	"github.com/poblenou/monopoly-backend/platform/game"
)

const roomSetKey = "rooms.open"

func roomKey(id string) string {
	return fmt.Sprintf("room.%s", id)
}

// Directory mirrors live rooms into Redis so the lobby HTTP endpoints
// can list and verify them. It is advisory only; the in-memory registry
// stays authoritative, so write failures are logged and dropped.
type Directory struct {
	Pool *redis.Pool
}

func NewDirectory(pool *redis.Pool) *Directory {
	return &Directory{Pool: pool}
}

func (d *Directory) Upsert(info game.RoomInfo) {
	conn := d.Pool.Get()
	defer conn.Close()
	started := 0
	if info.Started {
		started = 1
	}
	err := HSET(roomKey(info.ID), conn, map[string]interface{}{
		"host":    info.Host,
		"players": info.Players,
		"started": started,
	})
	if err == nil {
		err = SADD(roomSetKey, info.ID, conn)
	}
	if err != nil {
		logrus.WithError(err).WithField("room", info.ID).Warn("directory upsert failed")
	}
}

func (d *Directory) Remove(id string) {
	conn := d.Pool.Get()
	defer conn.Close()
	if err := Del(roomKey(id), conn); err != nil {
		logrus.WithError(err).WithField("room", id).Warn("directory delete failed")
	}
	if err := SREM(roomSetKey, id, conn); err != nil {
		logrus.WithError(err).WithField("room", id).Warn("directory delete failed")
	}
}

// ListRooms returns every directory entry on the given connection.
func ListRooms(conn redis.Conn) ([]game.RoomInfo, error) {
	ids, err := SMEMBERS(roomSetKey, conn)
	if err != nil {
		return nil, err
	}
	rooms := make([]game.RoomInfo, 0, len(ids))
	for _, id := range ids {
		fields, err := HGETALL(roomKey(id), conn)
		if err != nil || len(fields) == 0 {
			continue
		}
		players, _ := strconv.Atoi(fields["players"])
		rooms = append(rooms, game.RoomInfo{
			ID:      id,
			Host:    fields["host"],
			Players: players,
			Started: fields["started"] == "1",
		})
	}
	return rooms, nil
}

// GetRoom returns a single directory entry, reporting existence.
func GetRoom(id string, conn redis.Conn) (game.RoomInfo, bool, error) {
	fields, err := HGETALL(roomKey(id), conn)
	if err != nil {
		return game.RoomInfo{}, false, err
	}
	if len(fields) == 0 {
		return game.RoomInfo{}, false, nil
	}
	players, _ := strconv.Atoi(fields["players"])
	return game.RoomInfo{
		ID:      id,
		Host:    fields["host"],
		Players: players,
		Started: fields["started"] == "1",
	}, true, nil
}
