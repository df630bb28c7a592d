package cache

// Stats represents cache statistics.
type Stats struct {
	Hits    uint64  `json:"hits"`
	Misses  uint64  `json:"misses"`
	Size    int     `json:"size"`
	HitRate float64 `json:"hit_rate"`
}

func (s *Stats) updateHitRate() {
	total := s.Hits + s.Misses
	if total == 0 {
		s.HitRate = 0
		return
	}
	s.HitRate = float64(s.Hits) / float64(total) * 100
}
