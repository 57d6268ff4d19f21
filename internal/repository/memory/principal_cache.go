package memory

import (
	"time"

	"featurevote-be/internal/entity"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
)

// PrincipalCache keeps resolved {id, role} pairs so the auth middleware does
// not hit the user table on every request. Entries expire after five minutes;
// role changes are rare enough that the staleness window is acceptable.
type PrincipalCache struct {
	cache *cache.Cache
}

func NewPrincipalCache() *PrincipalCache {
	c := cache.New(5*time.Minute, 10*time.Minute)
	return &PrincipalCache{
		cache: c,
	}
}

func (r *PrincipalCache) Save(userId uuid.UUID, role entity.UserRole) {
	r.cache.Set(userId.String(), role, cache.DefaultExpiration)
}

func (r *PrincipalCache) Get(userId uuid.UUID) (entity.UserRole, bool) {
	if x, found := r.cache.Get(userId.String()); found {
		return x.(entity.UserRole), true
	}
	return "", false
}

func (r *PrincipalCache) Delete(userId uuid.UUID) {
	r.cache.Delete(userId.String())
}
