package identity

import (
	"context"
	"fmt"
	"time"

	"github.com/izuamadi/Fitness-Club-Management-System/internal/member"
	"github.com/izuamadi/Fitness-Club-Management-System/internal/room"
	"github.com/izuamadi/Fitness-Club-Management-System/internal/trainer"

	"github.com/patrickmn/go-cache"
)

// Directory answers "does this room/trainer/member exist?" for the scheduling
// services. Positive answers are cached for a short TTL since identities are
// created rarely and scheduling requests hit these checks on every call;
// negative answers are never cached so a freshly created entity is usable
// immediately.
type Directory struct {
	rooms    room.Repository
	trainers trainer.Repository
	members  member.Repository
	cache    *cache.Cache
}

func NewDirectory(rooms room.Repository, trainers trainer.Repository, members member.Repository) *Directory {
	return &Directory{
		rooms:    rooms,
		trainers: trainers,
		members:  members,
		cache:    cache.New(time.Minute, 5*time.Minute),
	}
}

func (d *Directory) RoomExists(ctx context.Context, id int) (bool, error) {
	return d.exists(ctx, "room", id, func() (bool, error) { return d.rooms.Exists(ctx, id) })
}

func (d *Directory) TrainerExists(ctx context.Context, id int) (bool, error) {
	return d.exists(ctx, "trainer", id, func() (bool, error) { return d.trainers.Exists(ctx, id) })
}

func (d *Directory) MemberExists(ctx context.Context, id int) (bool, error) {
	return d.exists(ctx, "member", id, func() (bool, error) { return d.members.Exists(ctx, id) })
}

func (d *Directory) exists(_ context.Context, kind string, id int, lookup func() (bool, error)) (bool, error) {
	key := fmt.Sprintf("%s:%d", kind, id)
	if _, found := d.cache.Get(key); found {
		return true, nil
	}

	ok, err := lookup()
	if err != nil {
		return false, err
	}
	if ok {
		d.cache.SetDefault(key, struct{}{})
	}
	return ok, nil
}
