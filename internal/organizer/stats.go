package organizer

import "sort"

// Stats aggregates the outcome of one organize run.
type Stats struct {
	Moved       int
	MovedBytes  int64
	ByExtension map[string]int
	ByModel     map[string]int
	NoMetadata  int
	Failed      int
	Skipped     int
}

// Count is one labelled counter.
type Count struct {
	Key   string
	Value int
}

func newStats() Stats {
	return Stats{
		ByExtension: make(map[string]int),
		ByModel:     make(map[string]int),
	}
}

func (s *Stats) record(file MediaFile, route Route) {
	s.Moved++
	s.MovedBytes += file.Size
	switch route.Kind {
	case RouteImageWithModel:
		s.ByModel[route.Model]++
	case RouteImageWithoutModel:
		s.NoMetadata++
	default:
		s.ByExtension[file.Ext]++
	}
}

// Extensions returns the per-extension counts sorted by extension.
func (s Stats) Extensions() []Count {
	return sortedCounts(s.ByExtension)
}

// Models returns the per-model counts sorted by model.
func (s Stats) Models() []Count {
	return sortedCounts(s.ByModel)
}

func sortedCounts(m map[string]int) []Count {
	out := make([]Count, 0, len(m))
	for k, v := range m {
		out = append(out, Count{Key: k, Value: v})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out
}
