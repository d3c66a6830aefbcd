package planner

// CachedNetworks exposes the number of memoized restricted networks to tests.
func CachedNetworks(p *Planner) int { return p.exclusions.cached() }
