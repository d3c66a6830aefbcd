package planner

import (
	"fmt"
	"sort"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/sync/singleflight"

	"github.com/katalvlaran/airroutes/network"
)

// Exclusion is a set of airports a route must not touch.
// The zero value excludes nothing.
type Exclusion struct {
	codes []string
	set   map[string]bool
}

// NewExclusion normalizes codes, dropping blanks and duplicates.
func NewExclusion(codes ...string) Exclusion {
	set := make(map[string]bool, len(codes))
	out := make([]string, 0, len(codes))
	var c string
	for _, c = range codes {
		c = normalize(c)
		if c == "" || set[c] {
			continue
		}
		set[c] = true
		out = append(out, c)
	}
	sort.Strings(out)

	return Exclusion{codes: out, set: set}
}

// Codes returns the excluded airports, sorted.
func (e Exclusion) Codes() []string {
	out := make([]string, len(e.codes))
	copy(out, e.codes)

	return out
}

// Len is the number of excluded airports.
func (e Exclusion) Len() int { return len(e.codes) }

// Key is the canonical form of the set: sorted codes joined by commas.
func (e Exclusion) Key() string { return strings.Join(e.codes, ",") }

// Contains reports whether code is excluded.
func (e Exclusion) Contains(code string) bool { return e.set[code] }

// Rejects reports whether path touches an excluded airport.
func (e Exclusion) Rejects(path []string) bool {
	var code string
	for _, code = range path {
		if e.set[code] {
			return true
		}
	}

	return false
}

// allows is a leg filter for the traversal packages: a leg is allowed
// unless it enters an excluded airport.
func (e Exclusion) allows(_, next string) bool { return !e.set[next] }

// exclusionCache memoizes restricted networks by exclusion key. Concurrent
// requests for the same key share a single build.
type exclusionCache struct {
	networks *lru.Cache[string, *network.Network]
	group    singleflight.Group
}

func newExclusionCache(size int) (*exclusionCache, error) {
	networks, err := lru.New[string, *network.Network](size)
	if err != nil {
		return nil, fmt.Errorf("planner: exclusion cache size %d: %w", size, err)
	}

	return &exclusionCache{networks: networks}, nil
}

// restricted returns primary without the excluded airports. An empty
// exclusion returns primary itself.
func (c *exclusionCache) restricted(primary *network.Network, e Exclusion) *network.Network {
	if e.Len() == 0 {
		return primary
	}

	key := e.Key()
	if n, ok := c.networks.Get(key); ok {
		return n
	}

	v, _, _ := c.group.Do(key, func() (interface{}, error) {
		if n, ok := c.networks.Get(key); ok {
			return n, nil
		}
		n := primary.Restrict(e.set)
		c.networks.Add(key, n)

		return n, nil
	})

	return v.(*network.Network)
}

// cached reports how many restricted networks are held.
func (c *exclusionCache) cached() int { return c.networks.Len() }
