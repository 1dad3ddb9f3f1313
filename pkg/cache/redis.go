package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"movie-booking/internal/data/entity"

	"github.com/redis/go-redis/v9"
)

// Generation tags a cache read. A value loaded from the store after a miss must be
// written back with the generation that miss reported, so a write racing an
// invalidation lands under a key no reader looks at any more.
type Generation int64

// MovieCache is a read-through cache for movie reads. The store stays the
// source of truth; every booking bumps the generation of the movie it touched.
type MovieCache interface {
	GetMovies(ctx context.Context) ([]*entity.Movie, Generation, bool, error)
	SetMovies(ctx context.Context, gen Generation, movies []*entity.Movie) error
	GetMovie(ctx context.Context, id int64) (*entity.Movie, Generation, bool, error)
	SetMovie(ctx context.Context, gen Generation, movie *entity.Movie) error
	InvalidateMovie(ctx context.Context, id int64) error
}

type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
	prefix string
}

func NewRedisCache(client *redis.Client, ttl time.Duration) *RedisCache {
	return &RedisCache{
		client: client,
		ttl:    ttl,
		prefix: "movie-booking",
	}
}

// NewRedisClient connects to addr and pings it.
func NewRedisClient(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{Addr: addr, Password: password, DB: db})

	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("ping redis %s: %w", addr, err)
	}
	return client, nil
}

func (c *RedisCache) GetMovies(ctx context.Context) ([]*entity.Movie, Generation, bool, error) {
	gen, err := c.generation(ctx, c.moviesGenKey())
	if err != nil {
		return nil, 0, false, err
	}

	var movies []*entity.Movie
	ok, err := c.get(ctx, c.moviesKey(gen), &movies)
	if !ok || err != nil {
		return nil, gen, false, err
	}
	return movies, gen, true, nil
}

func (c *RedisCache) SetMovies(ctx context.Context, gen Generation, movies []*entity.Movie) error {
	return c.set(ctx, c.moviesKey(gen), movies)
}

func (c *RedisCache) GetMovie(ctx context.Context, id int64) (*entity.Movie, Generation, bool, error) {
	gen, err := c.generation(ctx, c.movieGenKey(id))
	if err != nil {
		return nil, 0, false, err
	}

	var movie entity.Movie
	ok, err := c.get(ctx, c.movieKey(id, gen), &movie)
	if !ok || err != nil {
		return nil, gen, false, err
	}
	return &movie, gen, true, nil
}

func (c *RedisCache) SetMovie(ctx context.Context, gen Generation, movie *entity.Movie) error {
	return c.set(ctx, c.movieKey(movie.ID, gen), movie)
}

// InvalidateMovie moves the movie and the list that contains it to a new
// generation. Entries under the old generation age out with their TTL.
func (c *RedisCache) InvalidateMovie(ctx context.Context, id int64) error {
	_, err := c.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Incr(ctx, c.movieGenKey(id))
		pipe.Incr(ctx, c.moviesGenKey())
		return nil
	})
	if err != nil {
		return fmt.Errorf("bump generation for movie %d: %w", id, err)
	}
	return nil
}

func (c *RedisCache) generation(ctx context.Context, key string) (Generation, error) {
	n, err := c.client.Get(ctx, key).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("redis get %s: %w", key, err)
	}
	return Generation(n), nil
}

func (c *RedisCache) get(ctx context.Context, key string, dest any) (bool, error) {
	data, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("redis get %s: %w", key, err)
	}

	if err := json.Unmarshal(data, dest); err != nil {
		return false, fmt.Errorf("decode cached %s: %w", key, err)
	}
	return true, nil
}

func (c *RedisCache) set(ctx context.Context, key string, v any) error {
	payload, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	return c.client.Set(ctx, key, payload, c.ttl).Err()
}

func (c *RedisCache) moviesGenKey() string {
	return c.prefix + ":gen:movies"
}

func (c *RedisCache) movieGenKey(id int64) string {
	return fmt.Sprintf("%s:gen:movie:%d", c.prefix, id)
}

func (c *RedisCache) moviesKey(gen Generation) string {
	return fmt.Sprintf("%s:movies:v%d", c.prefix, gen)
}

func (c *RedisCache) movieKey(id int64, gen Generation) string {
	return fmt.Sprintf("%s:movie:%d:v%d", c.prefix, id, gen)
}

// Noop is used when no redis address is configured.
type Noop struct{}

func (Noop) GetMovies(context.Context) ([]*entity.Movie, Generation, bool, error) {
	return nil, 0, false, nil
}
func (Noop) SetMovies(context.Context, Generation, []*entity.Movie) error { return nil }
func (Noop) GetMovie(context.Context, int64) (*entity.Movie, Generation, bool, error) {
	return nil, 0, false, nil
}
func (Noop) SetMovie(context.Context, Generation, *entity.Movie) error { return nil }
func (Noop) InvalidateMovie(context.Context, int64) error { return nil }
