package game

import (
	"github.com/solarlune/resolv"

	"chosenoffset.com/skirmish/internal/geom"
)

// BulletPool is a fixed-capacity set of reusable bullets. A shot taken while
// every bullet is in flight is dropped.
type BulletPool struct {
	bullets []*Bullet
	space   *resolv.Space
}

// NewBulletPool creates size inactive bullets of the given radius. Active
// bullets are registered in space for collision checks.
func NewBulletPool(size int, radius float64, space *resolv.Space) *BulletPool {
	p := &BulletPool{
		bullets: make([]*Bullet, size),
		space:   space,
	}
	for i := range p.bullets {
		b := &Bullet{Radius: radius}
		b.body = resolv.NewObject(0, 0, radius*2, radius*2, tagBullet)
		b.body.Data = b
		p.bullets[i] = b
	}
	return p
}

// Acquire activates a free bullet at pos with the given velocity.
// It returns nil when the pool is exhausted.
func (p *BulletPool) Acquire(pos geom.Point, vx, vy float64) *Bullet {
	for _, b := range p.bullets {
		if b.Active {
			continue
		}
		b.Active = true
		b.Pos = pos
		b.VelX = vx
		b.VelY = vy
		syncBody(b.body, pos, b.Radius)
		p.space.Add(b.body)
		return b
	}
	return nil
}

// Release returns b to the pool
func (p *BulletPool) Release(b *Bullet) {
	if !b.Active {
		return
	}
	b.Active = false
	b.VelX, b.VelY = 0, 0
	p.space.Remove(b.body)
}

// Active returns the bullets currently in flight
func (p *BulletPool) Active() []*Bullet {
	active := make([]*Bullet, 0, len(p.bullets))
	for _, b := range p.bullets {
		if b.Active {
			active = append(active, b)
		}
	}
	return active
}

// Cap returns the pool capacity
func (p *BulletPool) Cap() int {
	return len(p.bullets)
}

// Free returns how many bullets can still be fired
func (p *BulletPool) Free() int {
	free := 0
	for _, b := range p.bullets {
		if !b.Active {
			free++
		}
	}
	return free
}

// syncBody moves a collision body so it is centred on pos
func syncBody(body *resolv.Object, pos geom.Point, radius float64) {
	body.X = pos.X - radius
	body.Y = pos.Y - radius
	body.Update()
}
