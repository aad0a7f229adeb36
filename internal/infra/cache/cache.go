// Package cache keeps provider responses in Redis so repeated lookups skip the network
// and a failed provider can still be answered with the last good data.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/mmcloughlin/geohash"
	"github.com/redis/go-redis/v9"

	"github.com/aliskhannn/nurul-islam-bot/internal/domain/entities"
)

const (
	// cellPrecision of 6 characters is a cell of roughly 1.2 x 0.6 km,
	// well below the resolution at which prayer times change.
	cellPrecision = 6

	keyPrayer     = "prayer:%s:%d:%s"
	keyPrayerLast = "prayer:last:%s:%d"
	keySurahs     = "quran:surahs"
)

// Options configures a Cache.
type Options struct {
	Addr      string
	Password  string
	DB        int
	PrayerTTL time.Duration
	QuranTTL  time.Duration
}

// Cache stores prayer schedules and the Quran catalogue.
type Cache struct {
	rdb       *redis.Client
	prayerTTL time.Duration
	quranTTL  time.Duration
}

// NewClient opens a Redis client and checks the connection.
func NewClient(ctx context.Context, opts Options) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     opts.Addr,
		Password: opts.Password,
		DB:       opts.DB,
	})

	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}

	return rdb, nil
}

func New(rdb *redis.Client, prayerTTL, quranTTL time.Duration) *Cache {
	return &Cache{rdb: rdb, prayerTTL: prayerTTL, quranTTL: quranTTL}
}

// Cell returns the geohash cell that coord falls in.
func Cell(coord entities.GeoCoordinate) string {
	return geohash.EncodeWithPrecision(coord.Latitude, coord.Longitude, cellPrecision)
}

// Schedule returns the cached schedule for coord, method and date (yyyy-mm-dd).
func (c *Cache) Schedule(ctx context.Context, coord entities.GeoCoordinate, method int, date string) (entities.DailySchedule, bool, error) {
	var s entities.DailySchedule
	found, err := c.getJSON(ctx, fmt.Sprintf(keyPrayer, Cell(coord), method, date), &s)
	return s, found, err
}

// LastSchedule returns the most recent schedule ever stored for coord and method, whatever its date.
func (c *Cache) LastSchedule(ctx context.Context, coord entities.GeoCoordinate, method int) (entities.DailySchedule, bool, error) {
	var s entities.DailySchedule
	found, err := c.getJSON(ctx, fmt.Sprintf(keyPrayerLast, Cell(coord), method), &s)
	return s, found, err
}

// StoreSchedule writes the dated entry with TTL and replaces the last-known-good entry.
func (c *Cache) StoreSchedule(ctx context.Context, coord entities.GeoCoordinate, method int, s entities.DailySchedule) error {
	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("marshal schedule: %w", err)
	}

	cell := Cell(coord)
	_, err = c.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, fmt.Sprintf(keyPrayer, cell, method, s.Date), data, c.prayerTTL)
		pipe.Set(ctx, fmt.Sprintf(keyPrayerLast, cell, method), data, 0)
		return nil
	})
	if err != nil {
		return fmt.Errorf("store schedule: %w", err)
	}
	return nil
}

// Surahs returns the cached chapter catalogue.
func (c *Cache) Surahs(ctx context.Context) ([]entities.Surah, bool, error) {
	var surahs []entities.Surah
	found, err := c.getJSON(ctx, keySurahs, &surahs)
	return surahs, found, err
}

func (c *Cache) StoreSurahs(ctx context.Context, surahs []entities.Surah) error {
	data, err := json.Marshal(surahs)
	if err != nil {
		return fmt.Errorf("marshal surahs: %w", err)
	}
	if err := c.rdb.Set(ctx, keySurahs, data, c.quranTTL).Err(); err != nil {
		return fmt.Errorf("store surahs: %w", err)
	}
	return nil
}

func (c *Cache) getJSON(ctx context.Context, key string, dest any) (bool, error) {
	data, err := c.rdb.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("get %s: %w", key, err)
	}
	if err := json.Unmarshal(data, dest); err != nil {
		return false, fmt.Errorf("decode %s: %w", key, err)
	}
	return true, nil
}
