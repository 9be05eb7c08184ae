package cache

import "github.com/gomodule/redigo/redis"

// Thin wrappers over the redis commands the directory uses.

func Del(key string, conn redis.Conn) error {
	_, err := conn.Do("DEL", key)
	return err
}

func HSET(key string, conn redis.Conn, fields map[string]interface{}) error {
	args := redis.Args{}.Add(key)
	for field, value := range fields {
		args = args.Add(field, value)
	}
	_, err := conn.Do("HSET", args...)
	return err
}

func HGETALL(key string, conn redis.Conn) (map[string]string, error) {
	return redis.StringMap(conn.Do("HGETALL", key))
}

func SADD(key, member string, conn redis.Conn) error {
	_, err := conn.Do("SADD", key, member)
	return err
}

func SREM(key, member string, conn redis.Conn) error {
	_, err := conn.Do("SREM", key, member)
	return err
}

func SMEMBERS(key string, conn redis.Conn) ([]string, error) {
	return redis.Strings(conn.Do("SMEMBERS", key))
}
